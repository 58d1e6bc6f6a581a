package host

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// ErrUnknownCommand is returned when invoking a command nobody registered.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a named, described action the host can invoke on behalf of
// the user (key binding, menu entry, scripted trigger).
type Command struct {
	Name        string
	Description string
	Handler     func()
}

// Commands is the host command registry.
type Commands struct {
	mu     sync.RWMutex
	logger *slog.Logger
	byName map[string]Command
}

// NewCommands creates an empty command registry.
func NewCommands(logger *slog.Logger) *Commands {
	if logger == nil {
		logger = slog.Default()
	}
	return &Commands{
		logger: logger,
		byName: make(map[string]Command),
	}
}

// Register binds a handler to a command name, replacing any previous
// binding for that name.
func (c *Commands) Register(name, description string, handler func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byName[name] = Command{Name: name, Description: description, Handler: handler}
	c.logger.Debug("command registered", "name", name)
}

// Invoke runs the handler bound to name.
func (c *Commands) Invoke(name string) error {
	c.mu.RLock()
	cmd, ok := c.byName[name]
	c.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	cmd.Handler()
	return nil
}

// List returns all registered commands sorted by name.
func (c *Commands) List() []Command {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Command, 0, len(c.byName))
	for _, cmd := range c.byName {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
