package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/tanji-dg/cmt/internal/adapters/telemetry/progrock"
	"github.com/tanji-dg/cmt/internal/core/ports"
)

const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Tracer, error) {
			// Progress rendering is opt-in; log output stays the default.
			if os.Getenv("CMT_PROGRESS") != "" {
				return progrock.New(), nil
			}
			return NewNoopTracer(), nil
		},
	})
}
