package theme

import (
	"encoding/json"
	"fmt"
	"io"

	"git.home.luguber.info/inful/folio/internal/foundation/normalization"
	"gopkg.in/yaml.v3"
)

// Format selects the Export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var formats = normalization.NewEnum("export format", map[string]Format{
	"json": FormatJSON,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
})

// ParseFormat accepts json, yaml or yml in any case.
func ParseFormat(s string) (Format, error) {
	return formats.Parse(s)
}

// Document is what Export writes: everything the CSS build needs.
type Document struct {
	DarkMode   string           `json:"darkMode" yaml:"darkMode"`
	Tokens     []string         `json:"tokens" yaml:"tokens"`
	Colors     map[string]Color `json:"colors" yaml:"colors"`
	Typography map[string]Style `json:"typography" yaml:"typography"`
}

// Document assembles the export document of p.
func (p *Palette) Document() Document {
	return Document{
		DarkMode:   "class",
		Tokens:     p.Tokens(),
		Colors:     p.Colors(),
		Typography: Typography(),
	}
}

// Export writes the palette document to w in format f.
func (p *Palette) Export(w io.Writer, f Format) error {
	doc := p.Document()
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}
