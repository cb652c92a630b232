package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pmeadley/toaster/internal/config"
	"github.com/pmeadley/toaster/internal/surface"
	"github.com/pmeadley/toaster/internal/theme"
	"github.com/pmeadley/toaster/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive toast demo",
	Long: `Launch the interactive terminal demo.

Key bindings:
  1-3         Show an info/success/error toast
  4           Show a countdown toast
  5           Show a deletable item with an Undo action
  n           Compose a custom toast
  u           Trigger the newest action control
  c           Copy the newest toast text to the clipboard
  d           Dismiss all toasts
  m           Toggle the menu
  ?           Show help
  q           Quit

Edits to the config file are picked up while the demo runs.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	s := surface.Acquire(&cfg.Surface, logger)
	defer surface.ShutdownDefault()

	th := theme.Load(cfg.Theme.Name, config.ThemeDir(), logger)

	m := tui.New(cfg, s, th, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Hot-reload the config while the demo runs
	watcher, err := config.NewWatcher(configFilePath(), cfg, logger)
	if err != nil {
		logger.Warn("config watching unavailable", "error", err)
	} else {
		watcher.SetReloadCallback(func(c *config.Config) {
			p.Send(tui.ConfigReloadedMsg{
				Cfg:   c,
				Theme: theme.Load(c.Theme.Name, config.ThemeDir(), logger),
			})
			s.Show("Configuration reloaded", "success", surface.Options{})
		})
		watcher.SetErrorCallback(func(err error) {
			s.Show("Config reload failed: "+err.Error(), "error", surface.Options{})
		})
		if err := watcher.Start(); err != nil {
			logger.Warn("failed to start config watcher", "error", err)
		} else {
			defer watcher.Stop()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}
