package panel

import "github.com/simnotify/simnotify/internal/model"

// Surface is the minimal drawable capability the panel renders onto.
// The host's draw layer implements it; the panel never touches window
// chrome or input dispatch.
type Surface interface {
	// Line appends one text line in the given color.
	Line(text string, color model.RGB)

	// Checkbox draws a toggle control and returns its (possibly changed)
	// state, immediate-mode style.
	Checkbox(label string, checked bool) bool

	// ScrollToBottom scrolls the view to the newest line.
	ScrollToBottom()
}
