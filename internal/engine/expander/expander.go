// Package expander turns a component instance tree into a flat render plan
// by recursively invoking processors and resolving the pin constraints of
// every expansion level.
package expander

import (
	"context"
	"errors"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/reel/internal/engine/lazy"
	"go.trai.ch/reel/internal/engine/solver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ScheduledLeaf is one terminal executable tagged with its place on the
// timeline. Start and End are the resolved times of the owning instance's
// boundary pins.
type ScheduledLeaf struct {
	InstanceID uuid.UUID
	Executable ports.NativeExecutable
	Start      domain.TimeValue
	End        domain.TimeValue
}

// RenderPlan is the flat, ordered leaf list produced by a full expansion.
// Leaves appear in depth-first child order, so the plan is deterministic
// for a given tree regardless of how siblings were scheduled.
type RenderPlan struct {
	Leaves []ScheduledLeaf
}

// Expander drives the recursive expansion.
type Expander struct {
	processors  ports.ProcessorRegistry
	cache       ports.ProcessorCache
	easings     ports.EasingRegistry
	solver      *solver.Solver
	tracer      ports.Tracer
	logger      ports.Logger
	parallelism int
}

// New creates an Expander. Sibling instances are expanded concurrently up
// to runtime.NumCPU at a time.
func New(
	processors ports.ProcessorRegistry,
	cache ports.ProcessorCache,
	easings ports.EasingRegistry,
	slv *solver.Solver,
	tracer ports.Tracer,
	logger ports.Logger,
) *Expander {
	return &Expander{
		processors:  processors,
		cache:       cache,
		easings:     easings,
		solver:      slv,
		tracer:      tracer,
		logger:      logger,
		parallelism: runtime.NumCPU(),
	}
}

// activePath tracks the instances on the current recursion branch. Each
// branch gets its own copy, so the same class may legitimately appear in
// disjoint subtrees while true self-recursion is still caught.
type activePath struct {
	ids   map[uuid.UUID]struct{}
	trail []string
}

func (p activePath) with(inst *domain.ComponentInstance) activePath {
	ids := make(map[uuid.UUID]struct{}, len(p.ids)+1)
	for id := range p.ids {
		ids[id] = struct{}{}
	}
	ids[inst.ID()] = struct{}{}

	trail := make([]string, len(p.trail), len(p.trail)+1)
	copy(trail, p.trail)
	return activePath{ids: ids, trail: append(trail, inst.Class().Name())}
}

func (p activePath) contains(id uuid.UUID) bool {
	_, ok := p.ids[id]
	return ok
}

// Expand resolves root into a render plan. The monitor is polled at every
// recursion boundary; once the owning controller stops it, expansion
// unwinds with domain.ErrCancelled and whatever leaves completed so far.
func (e *Expander) Expand(ctx context.Context, root *domain.ComponentInstance, monitor lazy.HeartbeatMonitor) (*RenderPlan, error) {
	ctx, span := e.tracer.Start(ctx, "expand "+root.Class().Name())
	defer span.End()

	leaves, err := e.expandInstance(ctx, root, activePath{}, monitor)
	if err != nil {
		span.RecordError(err)
		return &RenderPlan{Leaves: leaves}, err
	}
	span.SetAttribute("reel.leaves", len(leaves))
	return &RenderPlan{Leaves: leaves}, nil
}

// NaturalLength reports the intrinsic duration of a class for a fixed
// parameter set, memoized in the processor cache.
func (e *Expander) NaturalLength(ctx context.Context, class *domain.ComponentClass, fixed []domain.ParameterValue) (domain.TimeValue, error) {
	key := domain.NaturalLengthFingerprint(class, fixed)
	if v, ok := e.cache.Get(ctx, key); ok {
		if t, ok := v.(domain.TimeValue); ok {
			return t, nil
		}
	}

	proc, err := e.processors.Lookup(class.ProcessorRef())
	if err != nil {
		return domain.TimeValue{}, zerr.With(err, "class", class.Name())
	}
	length, err := proc.NaturalLength(ctx, fixed)
	if err != nil {
		return domain.TimeValue{}, zerr.With(zerr.Wrap(err, "natural length query failed"), "class", class.Name())
	}
	e.cache.Insert(ctx, key, length)
	return length, nil
}

func (e *Expander) expandInstance(ctx context.Context, inst *domain.ComponentInstance, path activePath, monitor lazy.HeartbeatMonitor) ([]ScheduledLeaf, error) {
	if !monitor.IsLive() {
		return nil, domain.ErrCancelled
	}
	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(domain.ErrCancelled, err.Error())
	}
	if path.contains(inst.ID()) {
		cycle := strings.Join(append(path.trail, inst.Class().Name()), " -> ")
		return nil, zerr.With(zerr.With(domain.ErrCycleDetected,
			"instance", inst.ID().String()),
			"cycle", cycle,
		)
	}
	path = path.with(inst)

	ctx, span := e.tracer.Start(ctx, inst.Class().Name())
	defer span.End()
	span.SetAttribute("reel.instance", inst.ID().String())

	inst.SetState(domain.StateResolving)

	proc, err := e.processors.Lookup(inst.Class().ProcessorRef())
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.With(err, "instance", inst.ID().String()), "class", inst.Class().Name())
	}

	// The refreshed variable specs stay local to this expansion; the
	// instance itself is never written back.
	if _, err := proc.UpdateVariableParameters(ctx, inst.FixedParameters(), inst.Class().DefaultVariableParameterSpecs()); err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(domain.ErrProcessorFailed, err.Error()), "instance", inst.ID().String())
	}

	expansion, err := e.resolveExpansion(ctx, span, proc, inst)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if expansion.IsLeaf() {
		inst.SetState(domain.StateLeaf)
		start := inst.LeftPin().CachedTime()
		end := inst.RightPin().CachedTime()
		leaves := make([]ScheduledLeaf, 0, len(expansion.Leaves))
		for _, exe := range expansion.Leaves {
			leaves = append(leaves, ScheduledLeaf{
				InstanceID: inst.ID(),
				Executable: exe,
				Start:      start,
				End:        end,
			})
		}
		return leaves, nil
	}

	leaves, err := e.expandChildren(ctx, inst, expansion, path, monitor)
	if err != nil {
		span.RecordError(err)
		return leaves, err
	}
	inst.SetState(domain.StateExpanded)
	return leaves, nil
}

// resolveExpansion returns the processor's expansion for the instance's
// current parameters and pin times, consulting the cache first. A cache
// miss is never an error.
func (e *Expander) resolveExpansion(ctx context.Context, span ports.Span, proc ports.Processor, inst *domain.ComponentInstance) (ports.Expansion, error) {
	pins := inst.Pins()
	pinTimes := make([]domain.TimeValue, len(pins))
	for i, p := range pins {
		pinTimes[i] = p.CachedTime()
	}
	key := domain.ExpansionFingerprint(inst, pinTimes)

	if v, ok := e.cache.Get(ctx, key); ok {
		if cached, ok := v.(ports.Expansion); ok {
			span.SetAttribute("reel.cached", true)
			return cached, nil
		}
	}

	expansion, err := proc.Expand(ctx, ports.ExpandRequest{
		Instance:      inst,
		Fixed:         inst.FixedParameters(),
		Variable:      inst.VariableParameters(),
		Start:         inst.LeftPin().CachedTime(),
		End:           inst.RightPin().CachedTime(),
		ResolveEasing: e.easings.ByName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCancelled) || errors.Is(err, context.Canceled) {
			return ports.Expansion{}, domain.ErrCancelled
		}
		return ports.Expansion{}, zerr.With(zerr.With(zerr.Wrap(domain.ErrProcessorFailed, err.Error()),
			"instance", inst.ID().String()),
			"class", inst.Class().Name(),
		)
	}

	e.cache.Insert(ctx, key, expansion)
	return expansion, nil
}

// expandChildren solves the child pin constraints and then expands every
// child. Siblings run concurrently but in isolation: one sibling's failure
// neither cancels the others nor hides their results, and the aggregated
// leaf order follows child order, not completion order.
func (e *Expander) expandChildren(ctx context.Context, inst *domain.ComponentInstance, expansion ports.Expansion, path activePath, monitor lazy.HeartbeatMonitor) ([]ScheduledLeaf, error) {
	pins := inst.Pins()
	for _, child := range expansion.Children {
		pins = append(pins, child.Pins()...)
	}
	if err := e.solver.Solve(pins, expansion.Links); err != nil {
		return nil, zerr.With(err, "instance", inst.ID().String())
	}

	results := make([][]ScheduledLeaf, len(expansion.Children))
	errs := make([]error, len(expansion.Children))

	var g errgroup.Group
	g.SetLimit(e.parallelism)

	for i, child := range expansion.Children {
		g.Go(func() error {
			leaves, err := e.expandInstance(ctx, child, path, monitor)
			results[i] = leaves
			if err != nil {
				errs[i] = zerr.With(err, "child", child.ID().String())
			}
			return nil
		})
	}
	_ = g.Wait()

	var leaves []ScheduledLeaf
	for _, r := range results {
		leaves = append(leaves, r...)
	}
	if err := errors.Join(errs...); err != nil {
		return leaves, err
	}
	return leaves, nil
}
