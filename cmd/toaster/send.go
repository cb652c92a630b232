package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pmeadley/toaster/internal/model"
	"github.com/pmeadley/toaster/internal/surface"
)

var sendOpts struct {
	kind      string
	duration  string
	countdown float64
	action    string
}

var sendCmd = &cobra.Command{
	Use:   "send <message>",
	Short: "Show a single toast and print its lifecycle",
	Long: `Show a single toast and print each render to stdout until the
toast is removed.

With --action, pressing enter on stdin triggers the action before the
toast expires. The exit line reports why the toast went away.

Examples:
  toaster send "Build finished" --kind success
  toaster send "Deploying in {s}s" --countdown 5 --duration 5s
  toaster send "File deleted" --action Undo --duration 10s`,
	Args: cobra.ExactArgs(1),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().StringVarP(&sendOpts.kind, "kind", "k", "info",
		"Toast kind (info, success, error; unknown kinds show as info)")
	sendCmd.Flags().StringVarP(&sendOpts.duration, "duration", "d", "",
		"Lifetime before removal, e.g. '5s' or milliseconds (default: configured)")
	sendCmd.Flags().Float64VarP(&sendOpts.countdown, "countdown", "c", 0,
		"Live countdown seconds rendered into the message")
	sendCmd.Flags().StringVarP(&sendOpts.action, "action", "a", "",
		"Action label; enter on stdin triggers it")
}

func runSend(cmd *cobra.Command, args []string) error {
	message := args[0]

	opts := surface.Options{CountdownSeconds: sendOpts.countdown}
	if sendOpts.duration != "" {
		d, err := parseDuration(sendOpts.duration)
		if err != nil {
			return err
		}
		opts.Duration = d
	}

	s := surface.Acquire(&cfg.Surface, logger)
	defer surface.ShutdownDefault()

	events := s.Subscribe()

	acted := make(chan struct{})
	if sendOpts.action != "" {
		opts.ActionLabel = sendOpts.action
		opts.OnAction = func() { close(acted) }
	}

	h := s.Show(message, model.ParseKind(sendOpts.kind), opts)

	if sendOpts.action != "" {
		fmt.Fprintf(os.Stderr, "press enter to trigger %q\n", sendOpts.action)
		go func() {
			reader := bufio.NewReader(os.Stdin)
			if _, err := reader.ReadString('\n'); err == nil {
				h.Invoke()
			}
		}()
	}

	for ev := range events {
		if ev.ToastID != h.ID() {
			continue
		}
		switch ev.Type {
		case surface.EventShown, surface.EventTick:
			fmt.Println(ev.Text)
		case surface.EventRemoved:
			fmt.Printf("removed (%s)\n", ev.Reason)
			if ev.Reason == surface.ReasonAction {
				<-acted
				fmt.Println("action triggered")
			}
			return nil
		}
	}
	return nil
}

// parseDuration accepts Go duration strings or bare milliseconds.
func parseDuration(s string) (time.Duration, error) {
	if !strings.ContainsAny(s, "nsuµmh") {
		s += "ms"
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d, nil
}
