package solver

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the pin time solver Graft node.
const NodeID graft.ID = "engine.solver"

func init() {
	graft.Register(graft.Node[*Solver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Solver, error) {
			return New(), nil
		},
	})
}
