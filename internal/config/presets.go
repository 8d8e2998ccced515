package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"parts-inventory/internal/models"
)

// defaultPresets matches configs/labels.yaml and is used when no catalog
// file is present, so the server runs without any on-disk configuration.
const defaultPresets = `
presets:
  - id: "3348"
    name: "Dymo 3348 (25x54mm)"
    width_mm: 54
    height_mm: 25
  - id: "3425"
    name: "Dymo 3425 (54x70mm)"
    width_mm: 70
    height_mm: 54
  - id: "3666"
    name: "Dymo 3666 (25x38mm)"
    width_mm: 38
    height_mm: 25
`

type presetCatalog struct {
	Presets []models.LabelPreset `yaml:"presets"`
}

// LoadPresets reads the label preset catalog from path, falling back to the
// built-in catalog when the file does not exist.
func LoadPresets(path string) ([]models.LabelPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			data = []byte(defaultPresets)
		} else {
			return nil, fmt.Errorf("read label presets %s: %w", path, err)
		}
	}

	var cat presetCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse label presets: %w", err)
	}
	if len(cat.Presets) == 0 {
		return nil, fmt.Errorf("label preset catalog is empty")
	}
	for i, p := range cat.Presets {
		if p.ID == "" {
			return nil, fmt.Errorf("label preset %d has no id", i)
		}
	}
	return cat.Presets, nil
}
