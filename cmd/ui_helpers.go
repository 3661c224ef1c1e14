package cmd

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// inlineSpinner animates a single status line while a sequence of network
// calls runs, updating the same terminal line. The text can be swapped
// mid-flight to reflect the current step.
type inlineSpinner struct {
	w      io.Writer
	frames []string

	mu   sync.Mutex
	text string

	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// startInlineSpinner starts the spinner on its own goroutine. Callers must
// Stop it before printing anything else to the same writer.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) *inlineSpinner {
	s := &inlineSpinner{w: w, frames: frames, text: text, stop: make(chan struct{})}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		width := 0
		for {
			select {
			case <-s.stop:
				// Clear the spinner line completely, then return
				fmt.Fprintf(s.w, "\r%*s\r", width, "")
				return
			case <-ticker.C:
				line := fmt.Sprintf("%s %s", s.frames[i%len(s.frames)], s.current())
				if len(line) > 2000 { // primitive protection against very long lines
					line = line[:2000]
				}
				if len(line) < width {
					fmt.Fprintf(s.w, "\r%*s", width, "")
				}
				fmt.Fprintf(s.w, "\r%s", line)
				width = len(line)
				i++
			}
		}
	}()
	return s
}

func (s *inlineSpinner) current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// SetText replaces the status text shown next to the animation.
func (s *inlineSpinner) SetText(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

// Stop ends the animation and clears the line. Safe to call more than once.
func (s *inlineSpinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})
}
