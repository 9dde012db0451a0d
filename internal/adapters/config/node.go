package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mwatts/anyctl/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config Graft node.
	NodeID graft.ID = "adapter.config"
	// DefaultsNodeID is the unique identifier for the persisted-defaults view.
	DefaultsNodeID graft.ID = "adapter.config.defaults"
)

func init() {
	graft.Register(graft.Node[*Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Config, error) {
			return Load()
		},
	})

	// Defaults Node (read-only view consumed by resolution contexts)
	graft.Register(graft.Node[ports.Defaults]{
		ID:        DefaultsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Defaults, error) {
			return graft.Dep[*Config](ctx)
		},
	})
}
