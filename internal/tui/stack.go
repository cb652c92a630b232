package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pmeadley/toaster/internal/config"
	"github.com/pmeadley/toaster/internal/surface"
	"github.com/pmeadley/toaster/internal/theme"
)

// visibleViews trims the stack to the newest max entries and reports
// how many older toasts were collapsed.
func visibleViews(views []surface.ToastView, max int) ([]surface.ToastView, int) {
	if max <= 0 || len(views) <= max {
		return views, 0
	}
	return views[len(views)-max:], len(views) - max
}

// anchoredBottom reports whether the stack grows upward from the
// bottom of the screen.
func anchoredBottom(position string) bool {
	return position == string(config.PositionBottomLeft) ||
		position == string(config.PositionBottomRight)
}

// renderToast renders a single toast in its kind's style, with the
// glyph prefix and an action hint when one is attached.
func renderToast(v surface.ToastView, th *theme.Theme) string {
	line := th.Glyph(v.Kind) + " " + v.Text
	if v.ActionLabel != "" {
		line += "  " + lipgloss.NewStyle().Underline(true).Render("["+v.ActionLabel+"]")
	}
	return th.Style(v.Kind).Render(line)
}

// renderStack renders the toast stack in insertion order. Newest
// toasts sit closest to the anchor edge; older ones beyond max_visible
// collapse into a "+N more" line.
func renderStack(views []surface.ToastView, th *theme.Theme, cfg *config.SurfaceConfig) string {
	visible, hidden := visibleViews(views, cfg.MaxVisible)
	if len(visible) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(visible)+1)
	if hidden > 0 {
		blocks = append(blocks, lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("+%d more", hidden)))
	}
	for _, v := range visible {
		blocks = append(blocks, renderToast(v, th))
	}

	if anchoredBottom(cfg.Position) {
		// Bottom-anchored stacks read oldest-at-top already; nothing to
		// reorder, the anchor edge just changes the collapsed line side
		if hidden > 0 {
			blocks = append(blocks[1:], blocks[0])
		}
	}

	gap := strings.Repeat("\n", cfg.Gap+1)
	return strings.Join(blocks, gap)
}
