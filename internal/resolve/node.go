package resolve

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mwatts/anyctl/internal/adapters/api"
	"github.com/mwatts/anyctl/internal/adapters/config"
	"github.com/mwatts/anyctl/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node. The node is
// cacheable: one resolver, and therefore one cache, per session.
const NodeID graft.ID = "core.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{api.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			dir, err := graft.Dep[ports.Directory](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(dir, cfg.CacheTTL), nil
		},
	})
}
