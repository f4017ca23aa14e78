package driver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tanji-dg/cmt/internal/adapters/config"
	fsadapter "github.com/tanji-dg/cmt/internal/adapters/fs"
	"github.com/tanji-dg/cmt/internal/adapters/logger"
	"github.com/tanji-dg/cmt/internal/adapters/proc"
	"github.com/tanji-dg/cmt/internal/core/domain"
	"github.com/tanji-dg/cmt/internal/core/ports"
)

const NodeID graft.ID = "engine.driver"

func init() {
	graft.Register(graft.Node[ports.Driver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ProjectNodeID,
			proc.NodeID,
			fsadapter.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Driver, error) {
			cfg, err := graft.Dep[*domain.ProjectConfig](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			preflight, err := graft.Dep[ports.Preflight](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(ctx, *cfg, runner, preflight, log)
		},
	})
}
