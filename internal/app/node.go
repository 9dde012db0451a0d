package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mwatts/anyctl/internal/adapters/api"
	"github.com/mwatts/anyctl/internal/adapters/config"
	"github.com/mwatts/anyctl/internal/adapters/logger"
	"github.com/mwatts/anyctl/internal/adapters/telemetry"
	"github.com/mwatts/anyctl/internal/core/ports"
	"github.com/mwatts/anyctl/internal/resolve"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolve.NodeID,
			api.NodeID,
			config.DefaultsNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			resolver, err := graft.Dep[*resolve.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			dir, err := graft.Dep[ports.Directory](ctx)
			if err != nil {
				return nil, err
			}

			defaults, err := graft.Dep[ports.Defaults](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(resolver, dir, defaults, log, tracer), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}
