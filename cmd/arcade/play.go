package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tcellterm"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Breakout",
	Long: `Start a game of Breakout.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Q/Esc      - Quit

Backends:
  tea    - Bubble Tea program (default)
  tcell  - Direct tcell screen, driven by the engine's own frame loop

Examples:
  arcade play
  arcade play --backend tcell
  arcade play --config ./wide.yaml --log-file breakout.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Terminal backend: tea or tcell")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagBackend != backendTea && flagBackend != backendTcell {
		return fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendTea, backendTcell)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	game, err := breakout.New(cfg)
	if err != nil {
		return err
	}

	// One extra row for the help line under the frame
	needW, needH := game.Size()
	needH++
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && (w < needW || h < needH) {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, needW, needH)
	}

	logger.Info("starting game", "backend", flagBackend, "tick", cfg.Timing.Tick())

	var res core.StepResult
	switch flagBackend {
	case backendTcell:
		res, err = playTcell(game, cfg, logger)
	default:
		res, err = playTea(game, cfg, logger, needW, needH)
	}
	if err != nil {
		return err
	}

	snap := game.Snapshot()
	logger.Info("game over", "status", res.Status, "ticks", res.Tick, "remaining", snap.Remaining)
	fmt.Println(statusLine(snap))
	return nil
}

func playTea(game *breakout.Game, cfg config.BreakoutConfig, logger *log.Logger, minW, minH int) (core.StepResult, error) {
	latch := &core.Latch{}
	driver, err := engine.New(game, latch, engine.Options{Tick: cfg.Timing.Tick(), Logger: logger})
	if err != nil {
		return core.StepResult{}, err
	}
	return tui.Run(driver, latch, logger, minW, minH)
}

func playTcell(game *breakout.Game, cfg config.BreakoutConfig, logger *log.Logger) (core.StepResult, error) {
	t, err := tcellterm.New(logger)
	if err != nil {
		return core.StepResult{}, err
	}

	driver, err := engine.New(game, t, engine.Options{Tick: cfg.Timing.Tick(), Logger: logger})
	if err != nil {
		t.Close() //nolint:errcheck // Already failing
		return core.StepResult{}, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := driver.Run(ctx, t); err != nil {
		return driver.Result(), err
	}
	return driver.Result(), nil
}

// statusLine summarises a finished game for the shell.
func statusLine(snap breakout.Snapshot) string {
	total := snap.Layout.Columns * snap.Layout.Rows
	switch snap.Status {
	case core.StatusWon:
		return fmt.Sprintf("You cleared all %d bricks in %d ticks.", total, snap.Tick)
	default:
		return fmt.Sprintf("Game %s after %d ticks with %d/%d bricks left.", snap.Status, snap.Tick, snap.Remaining, total)
	}
}
