package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pmeadley/toaster/internal/config"
	"github.com/pmeadley/toaster/internal/theme"
	"github.com/pmeadley/toaster/internal/tzreport"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration, theme, and timezone status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	path := configFilePath()
	fmt.Printf("config:   %s", path)
	if info, err := os.Stat(path); err == nil {
		fmt.Printf(" (modified %s)", humanize.Time(info.ModTime()))
	} else {
		fmt.Print(" (not present, using defaults)")
	}
	fmt.Println()

	themeDir := config.ThemeDir()
	th := theme.Load(cfg.Theme.Name, themeDir, logger)
	source := "bundled"
	if themeDir != "" {
		if _, err := os.Stat(filepath.Join(themeDir, th.Name+".yaml")); err == nil {
			source = "user"
		}
	}
	fmt.Printf("theme:    %s (%s)\n", th.Name, source)
	fmt.Printf("themes:   %s\n", strings.Join(theme.List(themeDir), ", "))

	fmt.Printf("surface:  position=%s max_visible=%d default_duration=%s\n",
		cfg.Surface.Position, cfg.Surface.MaxVisible, cfg.Surface.DefaultDuration.Duration())

	report := tzreport.Detect(logger)
	fmt.Printf("timezone: %s\n", report)
	for _, c := range report.Cookies() {
		fmt.Printf("cookie:   %s\n", c.String())
	}

	return nil
}
