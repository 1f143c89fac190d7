package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/piwi3910/RoomFit/internal/model"
)

// LayoutExt is the file extension used for saved layouts.
const LayoutExt = ".json"

// ErrInvalidLayout is returned when a document is not a room layout.
var ErrInvalidLayout = errors.New("invalid layout file")

// EncodeLayout writes layout as indented JSON.
func EncodeLayout(w io.Writer, layout model.Layout) error {
	if layout.FurnitureItems == nil {
		layout.FurnitureItems = []model.FurnitureItem{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(layout)
}

// DecodeLayout reads a layout document from r.
func DecodeLayout(r io.Reader) (model.Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Layout{}, err
	}
	return ParseLayout(data)
}

// ParseLayout validates and decodes a layout document. The document must be
// an object whose roomDimensions.width is a number and whose furnitureItems
// is an array.
func ParseLayout(data []byte) (model.Layout, error) {
	var probe struct {
		RoomDimensions *struct {
			Width json.RawMessage `json:"width"`
		} `json:"roomDimensions"`
		FurnitureItems json.RawMessage `json:"furnitureItems"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return model.Layout{}, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if probe.RoomDimensions == nil {
		return model.Layout{}, fmt.Errorf("%w: missing roomDimensions", ErrInvalidLayout)
	}
	if !isJSONNumber(probe.RoomDimensions.Width) {
		return model.Layout{}, fmt.Errorf("%w: roomDimensions.width is not a number", ErrInvalidLayout)
	}
	if !isJSONArray(probe.FurnitureItems) {
		return model.Layout{}, fmt.Errorf("%w: furnitureItems is not an array", ErrInvalidLayout)
	}

	var layout model.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return model.Layout{}, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return layout, nil
}

func isJSONNumber(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	c := raw[0]
	return c == '-' || (c >= '0' && c <= '9')
}

func isJSONArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

// SaveLayout writes a layout to path, creating parent directories.
func SaveLayout(path string, layout model.Layout) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create layout file: %w", err)
	}
	if err := EncodeLayout(f, layout); err != nil {
		f.Close()
		return fmt.Errorf("failed to write layout: %w", err)
	}
	return f.Close()
}

// LoadLayout reads and validates a layout file.
func LoadLayout(path string) (model.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	return ParseLayout(data)
}
