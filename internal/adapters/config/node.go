package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reel/internal/adapters/components" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/reel/internal/adapters/logger"     //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/reel/internal/core/ports"
)

// NodeID is the unique identifier for the composition loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.CompositionLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			components.CatalogNodeID,
			components.RegistryNodeID,
		},
		Run: func(ctx context.Context) (ports.CompositionLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			catalog, err := graft.Dep[ports.ClassCatalog](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[ports.ProcessorRegistry](ctx)
			if err != nil {
				return nil, err
			}

			return NewLoader(log, catalog, registry), nil
		},
	})
}
