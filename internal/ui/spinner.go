package ui

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

const frameInterval = 100 * time.Millisecond

// brailleSpinner selects the 10-frame braille cycle ⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏.
const brailleSpinner = 14

// Spinner renders a self-erasing spinner line while a blocking call is in
// flight. Start launches the render goroutine; Stop signals it, waits for it
// to exit, and clears the line, so no frame is written after Stop returns.
// Stop without a prior Start is a no-op.
type Spinner struct {
	message string
	out     io.Writer

	mu      sync.Mutex
	started bool
	stopped bool
	stop    chan struct{}
	done    chan struct{}
}

// NewSpinner creates a spinner writing to stdout.
func NewSpinner(message string) *Spinner {
	return &Spinner{message: message, out: os.Stdout}
}

// Start begins the background animation. Calling Start on a running spinner
// has no effect.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(s.out),
		progressbar.OptionSetDescription(s.message),
		progressbar.OptionSpinnerType(brailleSpinner),
		progressbar.OptionClearOnFinish(),
	)

	go func(stop <-chan struct{}, done chan<- struct{}) {
		defer close(done)
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				_ = bar.Finish()
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}(s.stop, s.done)
}

// Stop ends the animation and blocks until the render goroutine has exited
// and the line has been cleared. Safe to call repeatedly and before Start.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	if !s.stopped {
		s.stopped = true
		close(s.stop)
	}
	done := s.done
	s.mu.Unlock()

	<-done

	s.mu.Lock()
	s.started = false
	s.stopped = false
	s.mu.Unlock()
}
