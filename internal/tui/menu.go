package tui

// Menu glyphs for the header toggle control.
const (
	glyphMenuClosed = "☰"
	glyphMenuOpen   = "✕"
)

// Menu is the collapsible command menu in the header. A nil Menu is
// inert: Toggle does nothing and the menu reads as closed, so screens
// without a menu can share the same key handling.
type Menu struct {
	open bool
}

// Toggle flips the menu between open and closed.
func (m *Menu) Toggle() {
	if m == nil {
		return
	}
	m.open = !m.open
}

// IsOpen reports whether the menu is expanded.
func (m *Menu) IsOpen() bool {
	return m != nil && m.open
}

// Glyph returns the toggle indicator for the current state.
func (m *Menu) Glyph() string {
	if m.IsOpen() {
		return glyphMenuOpen
	}
	return glyphMenuClosed
}
