package render

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// SpinnerFrames contains the braille spinner animation frames
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinnerInterval is the delay between animation frames.
const spinnerInterval = 80 * time.Millisecond

// Spinner animates a single-line status indicator with an optional message.
// The line is redrawn in place and cleared when the spinner stops.
type Spinner struct {
	writer io.Writer

	mu      sync.Mutex
	message string
	running bool
}

// NewSpinner creates a spinner that draws on writer.
func NewSpinner(writer io.Writer) *Spinner {
	return &Spinner{writer: writer}
}

// SetMessage sets the text shown after the spinner frame.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// Start begins the animation on its own goroutine and returns a stop
// function. The stop function blocks until the line has been cleared, so
// callers can print immediately after it returns.
func (s *Spinner) Start(ctx context.Context) func() {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return func() { cancel() }
	}
	s.running = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)

		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		frame := 0
		s.draw(frame)
		for {
			select {
			case <-ctx.Done():
				fmt.Fprint(s.writer, "\r\033[K")
				s.mu.Lock()
				s.running = false
				s.mu.Unlock()
				return
			case <-ticker.C:
				frame = (frame + 1) % len(SpinnerFrames)
				s.draw(frame)
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// draw repaints the spinner line with the given frame and the current
// message.
func (s *Spinner) draw(frame int) {
	s.mu.Lock()
	message := s.message
	s.mu.Unlock()

	styled := ToolPendingStyle.Render(SpinnerFrames[frame])
	if message == "" {
		fmt.Fprintf(s.writer, "\r\033[K%s", styled)
	} else {
		fmt.Fprintf(s.writer, "\r\033[K%s %s", styled, message)
	}
}
