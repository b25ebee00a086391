package easing

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reel/internal/core/ports"
)

// NodeID is the unique identifier for the easing registry Graft node.
const NodeID graft.ID = "adapter.easing"

func init() {
	graft.Register(graft.Node[ports.EasingRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EasingRegistry, error) {
			return New(), nil
		},
	})
}
