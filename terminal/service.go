// Package terminal manages the tcell screen lifecycle and input polling.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/constant"
)

// Service owns the screen and a poll goroutine feeding key events to the
// input actor. Stop is safe to invoke from either actor and more than
// once: the quit key path and the death path both restore the terminal.
type Service struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool
	stopped bool
}

// NewService creates an unstarted terminal service.
func NewService() *Service {
	return &Service{
		eventCh: make(chan tcell.Event, constant.EventChannelSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Init enters raw mode and hides the cursor.
func (s *Service) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal create: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()
	s.screen = screen
	return nil
}

// Start launches the input polling goroutine.
func (s *Service) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go s.pollLoop()
}

// pollLoop reads events until the screen is finalized. PollEvent returns
// nil once Fini has run, which is what unblocks a Stop from either actor.
func (s *Service) pollLoop() {
	defer close(s.doneCh)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop restores the terminal and drains the poll goroutine. Re-entrant;
// later calls are no-ops.
func (s *Service) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	wasRunning := s.running
	s.mu.Unlock()

	close(s.stopCh)
	if s.screen != nil {
		s.screen.Fini()
	}
	if wasRunning {
		<-s.doneCh
	}
}

// Screen returns the underlying screen.
func (s *Service) Screen() tcell.Screen {
	return s.screen
}

// Events returns the input event channel.
func (s *Service) Events() <-chan tcell.Event {
	return s.eventCh
}
