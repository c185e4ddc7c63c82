package http

import (
	"encoding/json"
	"net/http"

	"github.com/3-lines-studio/vibe-landing/internal/core"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Mode    string `json:"mode"`
}

func HealthHandler(version string, mode core.Mode) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "ok",
			Version: version,
			Mode:    mode.String(),
		})
	})
}
