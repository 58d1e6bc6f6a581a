// Package theme maps semantic message kinds to panel colors.
package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/simnotify/simnotify/internal/model"
)

// Message kinds the feeds can tag lines with.
const (
	KindInfo    = "info"
	KindSuccess = "success"
	KindWarning = "warning"
	KindError   = "error"
	KindRadio   = "radio"
	KindPrivate = "private"
	KindSystem  = "system"
)

// ErrUnknownPalette is returned when a named built-in does not exist.
var ErrUnknownPalette = errors.New("unknown palette")

// Palette maps message kinds to colors. Unknown kinds fall back to the
// info color.
type Palette struct {
	Name   string               `toml:"name"`
	Colors map[string]model.RGB `toml:"colors"`
}

// builtins are the compiled-in palettes.
var builtins = map[string]*Palette{
	"default": {
		Name: "default",
		Colors: map[string]model.RGB{
			KindInfo:    model.White,
			KindSuccess: model.Green,
			KindWarning: model.Orange,
			KindError:   model.Red,
			KindRadio:   model.Cyan,
			KindPrivate: model.Yellow,
			KindSystem:  model.Gray,
		},
	},
	"mono": {
		Name: "mono",
		Colors: map[string]model.RGB{
			KindInfo: model.White,
		},
	},
}

// Builtin returns a compiled-in palette by name.
func Builtin(name string) (*Palette, error) {
	p, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return p.clone(), nil
}

// BuiltinNames lists the compiled-in palette names.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	return names
}

// LoadFile reads a palette from a TOML file. Colors present in the file
// override the default palette; kinds it leaves out keep their defaults.
func LoadFile(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette: %w", err)
	}

	p, _ := Builtin("default")
	var loaded Palette
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}

	if loaded.Name != "" {
		p.Name = loaded.Name
	}
	for kind, c := range loaded.Colors {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("palette %q kind %q: %w", p.Name, kind, err)
		}
		p.Colors[kind] = c
	}
	return p, nil
}

// Load resolves a palette from the theme config: an explicit file path
// wins, otherwise the named built-in.
func Load(name, path string) (*Palette, error) {
	if path != "" {
		return LoadFile(path)
	}
	if name == "" {
		name = "default"
	}
	return Builtin(name)
}

// Color returns the color for a message kind, falling back to the info
// color, then white.
func (p *Palette) Color(kind string) model.RGB {
	if c, ok := p.Colors[kind]; ok {
		return c
	}
	if c, ok := p.Colors[KindInfo]; ok {
		return c
	}
	return model.White
}

func (p *Palette) clone() *Palette {
	colors := make(map[string]model.RGB, len(p.Colors))
	for k, v := range p.Colors {
		colors[k] = v
	}
	return &Palette{Name: p.Name, Colors: colors}
}
