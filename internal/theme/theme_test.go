package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simnotify/simnotify/internal/model"
)

func TestBuiltin_Default(t *testing.T) {
	p, err := Builtin("default")
	require.NoError(t, err)

	assert.Equal(t, model.White, p.Color(KindInfo))
	assert.Equal(t, model.Red, p.Color(KindError))
	assert.Equal(t, model.Cyan, p.Color(KindRadio))
}

func TestBuiltin_Unknown(t *testing.T) {
	_, err := Builtin("neon")
	assert.ErrorIs(t, err, ErrUnknownPalette)
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	a, err := Builtin("default")
	require.NoError(t, err)
	a.Colors[KindInfo] = model.Red

	b, err := Builtin("default")
	require.NoError(t, err)
	assert.Equal(t, model.White, b.Color(KindInfo))
}

func TestColor_Fallbacks(t *testing.T) {
	p, err := Builtin("mono")
	require.NoError(t, err)

	// Unknown kind falls back to info.
	assert.Equal(t, model.White, p.Color("radio"))

	// No info color at all falls back to white.
	empty := &Palette{Colors: map[string]model.RGB{}}
	assert.Equal(t, model.White, empty.Color("anything"))
}

func TestLoadFile_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.toml")
	content := `
name = "night"

[colors.error]
r = 200
g = 40
b = 40
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "night", p.Name)
	assert.Equal(t, model.RGB{R: 200, G: 40, B: 40}, p.Color(KindError))
	// Untouched kinds keep the defaults.
	assert.Equal(t, model.Cyan, p.Color(KindRadio))
}

func TestLoadFile_RejectsBadChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.toml")
	content := `
[colors.error]
r = 300
g = 0
b = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, model.ErrInvalidColor)
}

func TestLoad(t *testing.T) {
	p, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, "default", p.Name)

	_, err = Load("missing", "")
	assert.ErrorIs(t, err, ErrUnknownPalette)

	_, err = Load("", filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
