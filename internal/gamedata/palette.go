package gamedata

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteFile is the embedded palette used by the preview and the minimap.
const PaletteFile = "palette.json"

// PaletteDef is the JSON form of a palette: tile names mapped to hex colors.
type PaletteDef struct {
	Tiles      map[string]string `json:"tiles"`
	Player     string            `json:"player"`
	Background string            `json:"background"`
	Status     string            `json:"status"`
}

// Palette holds parsed colors keyed by tile name.
type Palette struct {
	tiles      map[string]colorful.Color
	fallback   colorful.Color
	Player     colorful.Color
	Background colorful.Color
	Status     colorful.Color
}

// LoadPalette loads and parses the embedded palette.
func LoadPalette() (*Palette, error) {
	def, err := Load[PaletteDef](PaletteFile)
	if err != nil {
		return nil, err
	}
	return NewPalette(def)
}

// NewPalette parses every color in def.
func NewPalette(def PaletteDef) (*Palette, error) {
	p := &Palette{tiles: make(map[string]colorful.Color, len(def.Tiles))}
	for name, hex := range def.Tiles {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", name, err)
		}
		p.tiles[name] = c
	}

	fields := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"player", def.Player, &p.Player},
		{"background", def.Background, &p.Background},
		{"status", def.Status, &p.Status},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = c
	}
	p.fallback = p.Background
	return p, nil
}

// Tile returns the color for a tile name, or the background color when the
// palette has no entry for it.
func (p *Palette) Tile(name string) colorful.Color {
	if c, ok := p.tiles[name]; ok {
		return c
	}
	return p.fallback
}
