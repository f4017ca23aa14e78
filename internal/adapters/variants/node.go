package variants

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tanji-dg/cmt/internal/core/ports"
)

const NodeID graft.ID = "adapter.variants"

func init() {
	graft.Register(graft.Node[ports.VariantLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.VariantLoader, error) {
			return &FileVariantLoader{Filename: DefaultFilename}, nil
		},
	})
}
