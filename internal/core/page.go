package core

type PageConfig struct {
	Pattern     string
	Title       string
	Description string
}

type RenderedPage struct {
	Path string
	HTML []byte
	ETag string
}
