package ui

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"termtac/types"
)

var (
	ErrTerminalClosed = errors.New("terminal closed")
	ErrInterrupted    = errors.New("interrupted")
)

// Terminal owns a tcell screen and delivers its key presses with a bounded wait.
type Terminal struct {
	screen  tcell.Screen
	surface Surface
	events  chan tcell.Event
	quit    chan struct{}
	once    sync.Once
}

// NewTerminal initialises the screen and starts reading its events.
func NewTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	t := &Terminal{
		screen:  screen,
		surface: NewSurface(screen),
		events:  make(chan tcell.Event),
		quit:    make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

func (t *Terminal) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Draw clears the screen, lets fn paint a frame and shows it.
func (t *Terminal) Draw(fn func(Surface)) error {
	select {
	case <-t.quit:
		return ErrTerminalClosed
	default:
	}
	t.screen.Clear()
	fn(t.surface)
	t.screen.Show()
	return nil
}

// PollKey waits at most timeout for the next event. It reports false when no
// key arrived. Resize events redraw from scratch and count as no key.
// Ctrl-C returns ErrInterrupted.
func (t *Terminal) PollKey(timeout time.Duration) (types.Key, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-t.events:
		if !ok {
			return types.KeyOther, false, ErrTerminalClosed
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return types.KeyOther, false, ErrInterrupted
			}
			return KeyFromEvent(ev), true, nil
		case *tcell.EventResize:
			t.screen.Sync()
		}
		return types.KeyOther, false, nil
	case <-timer.C:
		return types.KeyOther, false, nil
	case <-t.quit:
		return types.KeyOther, false, ErrTerminalClosed
	}
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.quit)
		t.screen.Fini()
	})
}
