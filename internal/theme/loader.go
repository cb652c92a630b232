package theme

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Load resolves a theme by name.
// Resolution order:
//  1. User themes directory (themesDir/<name>.yaml)
//  2. Embedded/bundled themes
//
// Users can override a bundled theme by placing a file with the same
// name in their themes directory. Any failure falls back to the
// embedded default; theming never aborts the caller.
func Load(name, themesDir string, logger *slog.Logger) *Theme {
	if logger == nil {
		logger = slog.Default()
	}
	if name == "" {
		name = DefaultThemeName
	}

	if themesDir != "" {
		path := filepath.Join(themesDir, name+".yaml")
		if data, err := os.ReadFile(path); err == nil {
			t, err := Parse(name, data)
			if err != nil {
				logger.Warn("failed to parse user theme, trying bundled", "theme", name, "error", err)
			} else {
				logger.Debug("loaded user theme", "name", name, "path", path)
				return t
			}
		}
	}

	if t, found := GetEmbedded(name); found {
		logger.Debug("loaded bundled theme", "name", name)
		return t
	}

	logger.Warn("theme not found, using default", "theme", name)
	return Default()
}

// List returns the available theme names: bundled themes plus any user
// themes, duplicates removed.
func List(themesDir string) []string {
	seen := make(map[string]bool)
	var names []string

	for _, name := range ListEmbedded() {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	if themesDir != "" {
		entries, err := os.ReadDir(themesDir)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				if ext := filepath.Ext(entry.Name()); ext == ".yaml" {
					name := entry.Name()[:len(entry.Name())-len(ext)]
					if !seen[name] {
						seen[name] = true
						names = append(names, name)
					}
				}
			}
		}
	}

	return names
}
