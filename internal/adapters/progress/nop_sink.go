package progress

import (
	"context"

	"github.com/AlephVault/hardhat-deploy-everything/internal/usecase"
)

// NopSink discards all progress events. Used in non-interactive mode and in
// tests.
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() *NopSink {
	return &NopSink{}
}

func (s *NopSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {}
func (s *NopSink) Info(message string)                                         {}
func (s *NopSink) Error(message string)                                        {}

var _ usecase.ProgressSink = (*NopSink)(nil)
