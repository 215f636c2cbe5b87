package colour

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Palette maps semantic names ("urgent", "muted") to colours, so bar
// definitions can reference a theme instead of hard-coded hex values.
type Palette map[string]RGB

// DefaultPalette is the palette used when no theme file is configured.
func DefaultPalette() Palette {
	return Palette{
		"normal": MustHex("#dcdccc"),
		"muted":  MustHex("#709080"),
		"good":   MustHex("#7f9f7f"),
		"warn":   MustHex("#f0dfaf"),
		"urgent": MustHex("#cc9393"),
		"accent": MustHex("#8cd0d3"),
	}
}

// Get looks a name up, falling back to fallback when absent.
func (p Palette) Get(name string, fallback RGB) RGB {
	if c, ok := p[name]; ok {
		return c
	}
	return fallback
}

// LoadPalette reads a YAML theme file of the form
//
//	urgent: "#cc9393"
//	muted:  "#709080"
//
// Unknown names are fine; values must parse as hex colours.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette: %w", err)
	}
	return ParsePalette(data)
}

// ParsePalette decodes a YAML name-to-hex map.
func ParsePalette(data []byte) (Palette, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing palette: %w", err)
	}
	p := make(Palette, len(raw))
	for name, hex := range raw {
		c, err := Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", name, err)
		}
		p[name] = c
	}
	return p, nil
}
