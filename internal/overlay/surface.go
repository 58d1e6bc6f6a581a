package overlay

import (
	"strings"

	"github.com/simnotify/simnotify/internal/model"
)

// drawSurface collects one render pass of the panel's build-interface
// hook into viewport content.
type drawSurface struct {
	lines  []string
	scroll bool

	checkboxLabel string
	checked       bool
}

func (s *drawSurface) Line(text string, color model.RGB) {
	s.lines = append(s.lines, lineStyle(color).Render(text))
}

func (s *drawSurface) Checkbox(label string, checked bool) bool {
	s.checkboxLabel = label
	s.checked = checked
	// Pin changes arrive through the command registry, not the widget,
	// so the checkbox only mirrors state here.
	return checked
}

func (s *drawSurface) ScrollToBottom() {
	s.scroll = true
}

func (s *drawSurface) content() string {
	return strings.Join(s.lines, "\n")
}

func (s *drawSurface) checkboxView(st styles) string {
	if s.checkboxLabel == "" {
		return ""
	}
	box := "[ ]"
	if s.checked {
		box = "[x]"
	}
	return st.checkbox.Render(box + " " + s.checkboxLabel)
}
