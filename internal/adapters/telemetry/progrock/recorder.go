// Package progrock provides the Progrock implementation of the tracer
// adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/tanji-dg/cmt/internal/core/ports"
	"github.com/vito/progrock"
)

// Recorder implements ports.Tracer on a progrock tape: every span
// becomes a vertex whose output streams into the tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start begins recording a new vertex named after the operation.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Span{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
