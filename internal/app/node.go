package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reel/internal/adapters/config"    //nolint:depguard // Wired in app wiring
	"go.trai.ch/reel/internal/adapters/logger"    //nolint:depguard // Wired in app wiring
	"go.trai.ch/reel/internal/adapters/telemetry" //nolint:depguard // Wired in app wiring
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/reel/internal/engine/expander"
	"go.trai.ch/reel/internal/engine/solver"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app"

// ComponentsNodeID is the unique identifier for the CLI components Graft node.
const ComponentsNodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			expander.NodeID,
			solver.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.CompositionLoader](ctx)
			if err != nil {
				return nil, err
			}

			exp, err := graft.Dep[*expander.Expander](ctx)
			if err != nil {
				return nil, err
			}

			slv, err := graft.Dep[*solver.Solver](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, exp, slv, tracer, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}
