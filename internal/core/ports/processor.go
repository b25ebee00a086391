// Package ports defines the interfaces between the evaluation core and its
// adapters: processors, the processor cache, easing registry, providers,
// logging, and telemetry.
package ports

import (
	"context"

	"go.trai.ch/reel/internal/core/domain"
)

//go:generate mockgen -source=processor.go -destination=mocks/mock_processor.go -package=mocks

// NativeExecutable is a terminal, non-decomposable computation unit: a
// processor reference bound to concrete parameters, plus the pull providers
// the rendering collaborator consumes. Timing is not set by the processor;
// the expansion engine tags each leaf with the resolved times of its owning
// instance's pins.
type NativeExecutable struct {
	ProcessorRef string
	Parameters   []domain.ParameterValue
	Image        ImageProvider
	Audio        AudioProvider
}

// Expansion is the tagged result of one processor invocation. Exactly one
// arm is meaningful: a terminal leaf list, or a sub-graph of further
// instances and the links placing them. Callers switch on IsLeaf rather
// than dispatching on hidden behavior.
type Expansion struct {
	Leaves   []NativeExecutable
	Children []*domain.ComponentInstance
	Links    []*domain.MarkerLink
}

// IsLeaf reports whether the expansion is terminal.
func (e Expansion) IsLeaf() bool {
	return len(e.Children) == 0
}

// ExpandRequest carries everything a processor may inspect when expanding
// an instance. Start and End are the resolved boundary pin times.
// ResolveEasing maps easing identifiers to implementations so processors
// can sample eased variable parameter segments.
type ExpandRequest struct {
	Instance      *domain.ComponentInstance
	Fixed         []domain.ParameterValue
	Variable      []domain.VariableParameter
	Start         domain.TimeValue
	End           domain.TimeValue
	ResolveEasing func(name string) (domain.EasingFunc, error)
}

// Processor is the behavior bound to a component class. Implementations
// must be safe for concurrent use; the engine may expand sibling instances
// of the same class in parallel.
type Processor interface {
	// FixedParameterTypes declares the fixed parameter slots.
	FixedParameterTypes() []domain.ParameterSpec

	// UpdateVariableParameters lets the processor adjust or declare the
	// variable parameter slots against the current fixed parameters. The
	// engine keeps the result local to the expansion; it never writes it
	// back to the instance.
	UpdateVariableParameters(ctx context.Context, fixed []domain.ParameterValue, current []domain.ParameterSpec) ([]domain.ParameterSpec, error)

	// NaturalLength reports the instance's intrinsic duration for a fixed
	// parameter set, absent further constraints. It must not mutate state.
	NaturalLength(ctx context.Context, fixed []domain.ParameterValue) (domain.TimeValue, error)

	// Expand resolves the instance into a terminal leaf list or a nested
	// sub-graph.
	Expand(ctx context.Context, req ExpandRequest) (Expansion, error)
}

// ProcessorRegistry resolves processor references to implementations.
// Registration happens at wiring time; Lookup of an unknown reference is
// domain.ErrUnknownProcessor.
type ProcessorRegistry interface {
	Register(ref string, p Processor) error
	Lookup(ref string) (Processor, error)
}
