package core

import (
	"encoding/json"
	"fmt"
	"sort"
)

const ManifestVersion = 1

type ManifestPage struct {
	Path string `json:"path"`
	File string `json:"file"`
	Hash string `json:"hash"`
}

type ManifestAsset struct {
	Path        string `json:"path"`
	File        string `json:"file"`
	Hash        string `json:"hash"`
	ContentType string `json:"contentType"`
}

type Manifest struct {
	Version int             `json:"version"`
	Pages   []ManifestPage  `json:"pages"`
	Assets  []ManifestAsset `json:"assets"`
}

func NewManifest() *Manifest {
	return &Manifest{
		Version: ManifestVersion,
		Pages:   make([]ManifestPage, 0),
		Assets:  make([]ManifestAsset, 0),
	}
}

// Sort orders pages and assets by path so the encoded manifest is stable.
func (m *Manifest) Sort() {
	sort.Slice(m.Pages, func(i, j int) bool { return m.Pages[i].Path < m.Pages[j].Path })
	sort.Slice(m.Assets, func(i, j int) bool { return m.Assets[i].Path < m.Assets[j].Path })
}

func (m *Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Version != ManifestVersion {
		return nil, fmt.Errorf("unsupported manifest version %d", m.Version)
	}
	return &m, nil
}

func (m *Manifest) Page(routePath string) (ManifestPage, bool) {
	if m == nil {
		return ManifestPage{}, false
	}
	normalized := NormalizePath(routePath)
	for _, p := range m.Pages {
		if p.Path == normalized {
			return p, true
		}
	}
	return ManifestPage{}, false
}
