package ports

import (
	"context"
	"io"
)

// Tracer is the entry point for recording long-running operations.
type Tracer interface {
	// Start begins recording a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
	// Close flushes and closes the recording session.
	Close() error
}

// Span represents one recorded operation. Writes carry the operation's
// console output.
type Span interface {
	io.Writer
	// End completes the span. A non-nil error marks it failed.
	End(err error)
}
