package model

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed palette.yaml
var paletteYAML []byte

// FurnitureTemplate is a palette entry new items are created from.
type FurnitureTemplate struct {
	Type        string  `yaml:"type" json:"type"`
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description" json:"description"`
	Icon        string  `yaml:"icon" json:"icon"`
	Price       float64 `yaml:"price" json:"price"`
}

type paletteFile struct {
	Templates []FurnitureTemplate `yaml:"templates"`
}

var (
	paletteOnce sync.Once
	palette     []FurnitureTemplate
)

// ParsePalette decodes a YAML palette document.
func ParsePalette(data []byte) ([]FurnitureTemplate, error) {
	var pf paletteFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	for i, t := range pf.Templates {
		if t.Type == "" {
			return nil, fmt.Errorf("palette entry %d has no type", i+1)
		}
	}
	return pf.Templates, nil
}

// Palette returns the built-in furniture palette in display order.
func Palette() []FurnitureTemplate {
	paletteOnce.Do(func() {
		p, err := ParsePalette(paletteYAML)
		if err != nil {
			// The palette is compiled in; a parse failure is a build defect.
			panic(err)
		}
		palette = p
	})
	out := make([]FurnitureTemplate, len(palette))
	copy(out, palette)
	return out
}

// FindTemplate returns the palette entry for a furniture type.
func FindTemplate(furnitureType string) (FurnitureTemplate, bool) {
	for _, t := range Palette() {
		if t.Type == furnitureType {
			return t, true
		}
	}
	return FurnitureTemplate{}, false
}

// DisplayName returns the palette name for a type, or the type itself.
func DisplayName(furnitureType string) string {
	if t, ok := FindTemplate(furnitureType); ok {
		return t.Name
	}
	return furnitureType
}

// ItemLabel is the short human label used in lists, e.g. "Chair-024511".
func ItemLabel(item FurnitureItem) string {
	id := []rune(item.ID)
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return DisplayName(item.Type) + "-" + string(id)
}
