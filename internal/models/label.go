package models

// Label is one printable unit for a container. Type is either "asset"
// (QR holds the base64 PNG of the container URL) or "content" (Text holds
// free text entered on the selection page).
type Label struct {
	Type string `json:"type"`
	Code string `json:"code"`
	QR   string `json:"qr,omitempty"`
	Text string `json:"text,omitempty"`
}

// LabelPreset describes one supported label stock, loaded from the preset
// catalog. Dimensions are millimetres and only drive the print stylesheet.
type LabelPreset struct {
	ID       string  `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	WidthMM  float64 `yaml:"width_mm" json:"width_mm"`
	HeightMM float64 `yaml:"height_mm" json:"height_mm"`
}
