package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
)

// Model is the Bubble Tea model for a running game.
// The driver and latch are shared pointers, so copies of the model made
// by Bubble Tea all advance the same game.
type Model struct {
	driver *engine.Driver
	latch  *core.Latch
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	width     int
	height    int
	minWidth  int
	minHeight int
	quitting  bool
}

// NewModel creates a model around a driver whose input source is latch.
func NewModel(driver *engine.Driver, latch *core.Latch, logger *log.Logger, minWidth, minHeight int) Model {
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		driver:    driver,
		latch:     latch,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
		minWidth:  minWidth,
		minHeight: minHeight,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.driver.Tick())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if action := m.keys.MapKey(msg); action != core.ActionNone {
			m.latch.Press(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleTick feeds elapsed time to the driver and schedules the next tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	m.driver.Advance(msg.Time())
	if m.driver.State() == engine.StateStopped {
		res := m.driver.Result()
		m.logger.Debug("game finished", "status", res.Status, "ticks", res.Tick)
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.driver.Tick())
}

// View renders the current frame followed by the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall() {
		return noticeStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			m.minWidth, m.minHeight, m.width, m.height,
		))
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.driver.Frame()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tooSmall reports whether the last known window cannot fit the frame.
// Before the first size message the window is assumed to fit.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < m.minWidth || m.height < m.minHeight
}

// Run plays the game in an alternate-screen Bubble Tea program and returns
// the outcome of the last simulated tick.
func Run(driver *engine.Driver, latch *core.Latch, logger *log.Logger, minWidth, minHeight int) (core.StepResult, error) {
	model := NewModel(driver, latch, logger, minWidth, minHeight)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return driver.Result(), fmt.Errorf("tui: run program: %w", err)
	}

	// Bubble Tea can exit on its own (e.g. SIGINT) before the driver stops.
	driver.Stop()
	if err := writeFinalFrame(os.Stdout, driver); err != nil {
		return driver.Result(), fmt.Errorf("tui: write final frame: %w", err)
	}
	return driver.Result(), nil
}

// writeFinalFrame prints the last frame to the normal screen, so the outcome
// stays visible once the alternate screen is gone.
func writeFinalFrame(w io.Writer, driver *engine.Driver) error {
	_, err := fmt.Fprintln(w, RenderScreen(driver.Frame()))
	return err
}
