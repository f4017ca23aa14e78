package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tanji-dg/cmt/internal/core/domain"
	"github.com/tanji-dg/cmt/internal/core/ports"
)

const (
	// NodeID identifies the configuration loader node.
	NodeID graft.ID = "adapter.config"
	// ProjectNodeID identifies the resolved project configuration node.
	ProjectNodeID graft.ID = "adapter.config.project"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return &FileConfigLoader{Filename: DefaultFilename}, nil
		},
	})

	graft.Register(graft.Node[*domain.ProjectConfig]{
		ID:        ProjectNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.ProjectConfig, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load(".")
		},
	})
}
