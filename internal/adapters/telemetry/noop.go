// Package telemetry provides tracer adapters for recording configure
// and build operations.
package telemetry

import (
	"context"

	"github.com/tanji-dg/cmt/internal/core/ports"
)

// NoopTracer is a no-op implementation of ports.Tracer.
type NoopTracer struct{}

// NewNoopTracer creates a new NoopTracer.
func NewNoopTracer() *NoopTracer {
	return &NoopTracer{}
}

// Start creates a new no-op span.
func (t *NoopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &NoopSpan{}
}

// Close does nothing.
func (t *NoopTracer) Close() error { return nil }

// NoopSpan is a no-op implementation of ports.Span.
type NoopSpan struct{}

// Write discards p and reports it written.
func (s *NoopSpan) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// End does nothing.
func (s *NoopSpan) End(_ error) {}
