package theme

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

// EmbeddedThemes contains all bundled theme files.
//
//go:embed themes/*.yaml
var EmbeddedThemes embed.FS

// DefaultThemeName is the name of the built-in default theme.
const DefaultThemeName = "default"

// GetEmbedded retrieves a bundled theme by name.
func GetEmbedded(name string) (*Theme, bool) {
	data, err := EmbeddedThemes.ReadFile("themes/" + name + ".yaml")
	if err != nil {
		return nil, false
	}
	t, err := Parse(name, data)
	if err != nil {
		return nil, false
	}
	t.IsDefault = name == DefaultThemeName
	return t, true
}

// Default returns the embedded default theme. The bundled file is part
// of the binary, so this cannot fail.
func Default() *Theme {
	t, _ := GetEmbedded(DefaultThemeName)
	return t
}

// ListEmbedded returns the names of all bundled themes.
func ListEmbedded() []string {
	var names []string
	entries, err := fs.ReadDir(EmbeddedThemes, "themes")
	if err != nil {
		return []string{DefaultThemeName}
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ext := filepath.Ext(entry.Name()); ext == ".yaml" {
			names = append(names, strings.TrimSuffix(entry.Name(), ext))
		}
	}
	return names
}
