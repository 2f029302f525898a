package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/vaultscope/yctl/internal/usecase"
)

// SpinnerSink reports progress with a terminal spinner.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// Start begins spinning with the given message
func (s *SpinnerSink) Start(message string) {
	s.spinner.Suffix = " " + message
	if !s.spinner.Active() {
		s.spinner.Start()
	}
}

// Stop halts the spinner
func (s *SpinnerSink) Stop() {
	if s.spinner.Active() {
		s.spinner.Stop()
	}
}

// Info prints an informational line
func (s *SpinnerSink) Info(message string) {
	s.Stop()
	fmt.Fprintf(os.Stderr, "%s %s\n", color.GreenString("✓"), message)
}

// Error prints an error line
func (s *SpinnerSink) Error(message string) {
	s.Stop()
	fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("✗"), message)
}

// Ensure the adapter implements the interface
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
