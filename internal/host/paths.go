package host

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths is an owned handle for the host install layout, resolved once at
// startup rather than re-queried on every call.
type Paths struct {
	systemRoot string
	pluginDir  string
}

// NewPaths resolves the system root and the directory holding the running
// binary. An empty systemRoot falls back to the user home directory.
func NewPaths(systemRoot string) (*Paths, error) {
	if systemRoot == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		systemRoot = home
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}

	return &Paths{
		systemRoot: filepath.Clean(systemRoot),
		pluginDir:  filepath.Dir(exe),
	}, nil
}

// SystemRoot returns the host system root path.
func (p *Paths) SystemRoot() string { return p.systemRoot }

// PluginDir returns the directory the running binary lives in.
func (p *Paths) PluginDir() string { return p.pluginDir }

// StripSystemRoot removes the system root prefix from path, leaving a
// path relative to the install. Paths outside the root come back as-is.
func (p *Paths) StripSystemRoot(path string) string {
	root := p.systemRoot + string(filepath.Separator)
	if strings.HasPrefix(path, root) {
		return strings.TrimPrefix(path, root)
	}
	return path
}

// CountFiles returns the number of entries in dir.
func (p *Paths) CountFiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
