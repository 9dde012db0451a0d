package api

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mwatts/anyctl/internal/adapters/config"
	"github.com/mwatts/anyctl/internal/core/ports"
)

// NodeID is the unique identifier for the directory client Graft node.
const NodeID graft.ID = "adapter.api"

func init() {
	graft.Register(graft.Node[ports.Directory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Directory, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.Endpoint, cfg.APIKey), nil
		},
	})
}
