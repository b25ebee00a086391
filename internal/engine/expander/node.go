package expander

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reel/internal/adapters/cache"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reel/internal/adapters/components" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reel/internal/adapters/easing"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reel/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reel/internal/adapters/telemetry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/reel/internal/engine/solver"
)

// NodeID is the unique identifier for the expander Graft node.
const NodeID graft.ID = "engine.expander"

func init() {
	graft.Register(graft.Node[*Expander]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			components.RegistryNodeID,
			cache.NodeID,
			easing.NodeID,
			solver.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Expander, error) {
			processors, err := graft.Dep[ports.ProcessorRegistry](ctx)
			if err != nil {
				return nil, err
			}

			processorCache, err := graft.Dep[ports.ProcessorCache](ctx)
			if err != nil {
				return nil, err
			}

			easings, err := graft.Dep[ports.EasingRegistry](ctx)
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

			return New(processors, processorCache, easings, slv, tracer, log), nil
		},
	})
}
