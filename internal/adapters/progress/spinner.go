package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

// SpinnerSink reports progress with a terminal spinner during long-running
// stages (resolution, journal reset, per-module deploys).
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnProgress updates the spinner with the current stage
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		suffix := " " + event.Message
		if event.Total > 0 && event.Current > 0 {
			suffix = fmt.Sprintf(" [%d/%d] %s", event.Current, event.Total, event.Message)
		}
		r.spinner.Suffix = suffix
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message without garbling the spinner
func (r *SpinnerSink) Info(message string) {
	r.print(func() { color.New(color.FgCyan).Println(message) })
}

// Error prints an error message without garbling the spinner
func (r *SpinnerSink) Error(message string) {
	r.print(func() { color.New(color.FgRed).Println(message) })
}

func (r *SpinnerSink) print(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
