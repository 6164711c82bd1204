package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/script"
)

var flagScript string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay scripted input without a terminal",
	Long: `Runs a game driven by a YAML input script on a simulated clock, then
prints the final frame and a status line. The run ends when the script
is exhausted or every brick is cleared.

Script format:
  segments:
    - ticks: 30
      right: true
    - ticks: 600
    - ticks: 1
      quit: true

Examples:
  arcade demo --script ./scripts/idle.yaml
  arcade demo --script ./scripts/idle.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&flagScript, "script", "", "Path to input script YAML")
	//nolint:errcheck // Flag is defined above
	demoCmd.MarkFlagRequired("script")
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	sc, err := script.Load(flagScript)
	if err != nil {
		return err
	}
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	game, err := breakout.New(cfg)
	if err != nil {
		return err
	}

	clock := engine.NewManualClock(time.Unix(0, 0))
	driver, err := engine.New(game, sc, engine.Options{
		Tick:   cfg.Timing.Tick(),
		Clock:  clock,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	logger.Info("replaying script", "path", flagScript, "ticks", sc.Len())

	out := &finalFrame{w: cmd.OutOrStdout()}
	if err := driver.Run(context.Background(), out); err != nil {
		return err
	}

	snap := game.Snapshot()
	logger.Info("replay finished", "status", snap.Status, "ticks", snap.Tick, "hash", snap.Hash())
	_, err = fmt.Fprintln(cmd.OutOrStdout(), statusLine(snap))
	return err
}

// finalFrame is a renderer that keeps only the latest frame and writes it
// out when closed.
type finalFrame struct {
	w    io.Writer
	last string
}

func (f *finalFrame) Draw(s *core.Screen) error {
	f.last = s.String()
	return nil
}

func (f *finalFrame) Close() error {
	_, err := fmt.Fprintln(f.w, f.last)
	return err
}
