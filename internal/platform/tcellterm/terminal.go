// Package tcellterm hosts the game directly on a tcell screen. It provides
// both the input source and the renderer for engine.Driver.Run.
package tcellterm

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// colors maps core.Color to the same 256-colour palette the Bubble Tea host uses.
var colors = map[core.Color]tcell.Color{
	core.ColorRed:         tcell.PaletteColor(1),
	core.ColorGreen:       tcell.PaletteColor(2),
	core.ColorYellow:      tcell.PaletteColor(3),
	core.ColorBlue:        tcell.PaletteColor(4),
	core.ColorMagenta:     tcell.PaletteColor(5),
	core.ColorCyan:        tcell.PaletteColor(6),
	core.ColorBrightWhite: tcell.PaletteColor(15),
	core.ColorOrange:      tcell.PaletteColor(208),
	core.ColorGray:        tcell.PaletteColor(245),
}

// Terminal owns a tcell screen. Key events are read on a background
// goroutine and latched until the driver polls them.
type Terminal struct {
	screen tcell.Screen
	latch  core.Latch
	logger *log.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// New initialises the process terminal.
func New(logger *log.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellterm: create screen: %w", err)
	}
	return Open(screen, logger)
}

// Open initialises screen and starts reading its events.
func Open(screen tcell.Screen, logger *log.Logger) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcellterm: init screen: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		logger: logger,
		done:   make(chan struct{}),
	}
	go t.pollEvents()
	return t, nil
}

// pollEvents runs until the screen is finalised.
func (t *Terminal) pollEvents() {
	defer close(t.done)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if a := MapKey(ev); a != core.ActionNone {
				t.latch.Press(a)
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			t.logger.Debug("terminal resized", "width", w, "height", h)
			t.screen.Sync()
		}
	}
}

// Size returns the terminal size in cells.
func (t *Terminal) Size() (width, height int) {
	return t.screen.Size()
}

// Poll returns the intents latched since the previous poll.
func (t *Terminal) Poll() core.Intents {
	return t.latch.Poll()
}

// Draw copies the frame to the terminal and shows it.
func (t *Terminal) Draw(s *core.Screen) error {
	t.screen.Clear()
	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			t.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	t.screen.Show()
	return nil
}

// Close restores the terminal. It waits for the event goroutine to exit
// and is safe to call more than once.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		t.screen.Fini()
		<-t.done
	})
	return nil
}

func styleFor(c core.Color) tcell.Style {
	fg, ok := colors[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg)
}

// MapKey translates a tcell key event to a game action.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return core.ActionLeft
		case 'd', 'D', 'l':
			return core.ActionRight
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
