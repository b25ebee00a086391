package components

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reel/internal/core/ports"
)

// RegistryNodeID is the unique identifier for the processor registry Graft node.
const RegistryNodeID graft.ID = "adapter.components.registry"

// CatalogNodeID is the unique identifier for the class catalog Graft node.
const CatalogNodeID graft.ID = "adapter.components.catalog"

func init() {
	graft.Register(graft.Node[ports.ProcessorRegistry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProcessorRegistry, error) {
			return NewRegistry(), nil
		},
	})

	graft.Register(graft.Node[ports.ClassCatalog]{
		ID:        CatalogNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ClassCatalog, error) {
			return NewCatalog(), nil
		},
	})
}
