package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/simnotify/simnotify/internal/model"
)

// styles holds the fixed lipgloss styles for the overlay chrome.
type styles struct {
	title    lipgloss.Style
	frame    lipgloss.Style
	status   lipgloss.Style
	checkbox lipgloss.Style
	hidden   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		checkbox: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		hidden: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true),
	}
}

// lineStyle returns a style rendering text in the message's stored color.
func lineStyle(c model.RGB) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}
