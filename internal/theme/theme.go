// Package theme provides per-kind styling for toast rendering.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/pmeadley/toaster/internal/model"
)

// KindStyle describes how toasts of one kind are drawn.
type KindStyle struct {
	Foreground string `yaml:"foreground"` // terminal color, e.g. "15" or "#ffffff"
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Glyph      string `yaml:"glyph"` // leading indicator, e.g. "✓"
}

// Theme maps toast kinds to styles.
type Theme struct {
	Name  string               `yaml:"name"`
	Kinds map[string]KindStyle `yaml:"kinds"`

	// IsDefault is true for the embedded default theme.
	IsDefault bool `yaml:"-"`
}

// Parse decodes a YAML theme document.
func Parse(name string, data []byte) (*Theme, error) {
	t := &Theme{Name: name}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse theme %q: %w", name, err)
	}
	if len(t.Kinds) == 0 {
		return nil, fmt.Errorf("theme %q defines no kinds", name)
	}
	if _, ok := t.Kinds[string(model.KindInfo)]; !ok {
		return nil, fmt.Errorf("theme %q is missing the info kind", name)
	}
	return t, nil
}

// Resolve returns the style for a kind. Kinds outside the closed set
// resolve to the info style.
func (t *Theme) Resolve(kind model.Kind) KindStyle {
	if ks, ok := t.Kinds[string(kind)]; ok {
		return ks
	}
	return t.Kinds[string(model.KindInfo)]
}

// Style builds the lipgloss style for a kind.
func (t *Theme) Style(kind model.Kind) lipgloss.Style {
	ks := t.Resolve(kind)

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	if ks.Foreground != "" {
		style = style.Foreground(lipgloss.Color(ks.Foreground))
	}
	if ks.Background != "" {
		style = style.Background(lipgloss.Color(ks.Background))
	}
	if ks.Border != "" {
		style = style.BorderForeground(lipgloss.Color(ks.Border))
	}

	return style
}

// Glyph returns the leading indicator for a kind.
func (t *Theme) Glyph(kind model.Kind) string {
	return t.Resolve(kind).Glyph
}
