// Package app implements the application layer for reel.
package app

import (
	"context"
	"io"
	"time"

	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/reel/internal/engine/expander"
	"go.trai.ch/reel/internal/engine/lazy"
	"go.trai.ch/reel/internal/engine/solver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.CompositionLoader
	expander *expander.Expander
	solver   *solver.Solver
	tracer   ports.Tracer
	logger   ports.Logger
}

// Components bundles everything the CLI entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.CompositionLoader,
	exp *expander.Expander,
	slv *solver.Solver,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		expander: exp,
		solver:   slv,
		tracer:   tracer,
		logger:   log,
	}
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	// Timeout bounds the whole evaluation; zero means no bound.
	Timeout time.Duration
}

type renderResult struct {
	plan *expander.RenderPlan
	err  error
}

// Render evaluates the composition at path and writes the resulting plan
// report to out.
func (a *App) Render(ctx context.Context, path string, out io.Writer, opts RenderOptions) error {
	if path == "" {
		return domain.ErrNoCompositionSpecified
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	comp, err := a.loader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load composition")
	}

	rootNames := make([]string, len(comp.Roots))
	for i, root := range comp.Roots {
		rootNames[i] = root.Class().Name()
	}
	a.tracer.EmitPlan(ctx, rootNames)

	var plans []*expander.RenderPlan
	for _, root := range comp.Roots {
		plan, err := a.renderRoot(ctx, root)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "render failed"), "root", root.Class().Name())
		}
		plans = append(plans, plan)
	}

	if err := writeReport(out, comp.Name, plans); err != nil {
		return zerr.Wrap(domain.ErrRenderFailed, err.Error())
	}
	a.logger.Info("render complete")
	return nil
}

// renderRoot pins down the root's extent from its natural length, then
// expands it under a heartbeat tied to this call. The expansion itself
// runs in a background slot; abandoning it stops the whole subtree.
func (a *App) renderRoot(ctx context.Context, root *domain.ComponentInstance) (*expander.RenderPlan, error) {
	if err := a.placeRoot(ctx, root); err != nil {
		return nil, err
	}

	controller, monitor := lazy.NewHeartbeat()
	defer controller.Stop()

	slot := lazy.Start(ctx, func(ctx context.Context) (renderResult, error) {
		plan, err := a.expander.Expand(ctx, root, monitor)
		return renderResult{plan: plan, err: err}, nil
	})
	defer slot.Close()

	select {
	case <-ctx.Done():
		controller.Stop()
		<-slot.Done()
		return nil, zerr.Wrap(domain.ErrCancelled, ctx.Err().Error())
	case <-slot.Done():
	}

	result, ok := slot.Get()
	if !ok {
		return nil, domain.ErrCancelled
	}
	if result.err != nil {
		return nil, result.err
	}
	return result.plan, nil
}

// placeRoot locks the root's right pin relative to its left pin by the
// class's natural length, then resolves the boundary pin times. A right
// pin the composition already locked is left alone.
func (a *App) placeRoot(ctx context.Context, root *domain.ComponentInstance) error {
	length, err := a.expander.NaturalLength(ctx, root.Class(), root.FixedParameters())
	if err != nil {
		return err
	}

	if _, locked := root.RightPin().LockedTime(); !locked {
		start := root.LeftPin().CachedTime()
		if lockedStart, ok := root.LeftPin().LockedTime(); ok {
			start = lockedStart.Value()
		}
		end, err := start.Add(length)
		if err != nil {
			return err
		}
		endMarker, err := domain.NewMarkerTime(end)
		if err != nil {
			return err
		}
		root.RightPin().SetLockedTime(endMarker)
	}

	span, err := domain.NewMarkerLink(root.LeftPin().ID(), root.RightPin().ID(), length)
	if err != nil {
		return err
	}
	return a.solver.Solve(root.Pins(), []*domain.MarkerLink{span})
}
