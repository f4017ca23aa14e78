package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tanji-dg/cmt/internal/adapters/config"
	"github.com/tanji-dg/cmt/internal/core/domain"
	"github.com/tanji-dg/cmt/internal/core/ports"
)

const NodeID graft.ID = "adapter.preflight"

func init() {
	graft.Register(graft.Node[ports.Preflight]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ProjectNodeID},
		Run: func(ctx context.Context) (ports.Preflight, error) {
			cfg, err := graft.Dep[*domain.ProjectConfig](ctx)
			if err != nil {
				return nil, err
			}
			return NewPreflight(cfg), nil
		},
	})
}
