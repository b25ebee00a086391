package components

import (
	"context"

	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/zerr"
)

// SequenceStep is one entry of a sequence: a class to instantiate, its
// fixed parameters, and how long it runs.
type SequenceStep struct {
	Class    *domain.ComponentClass
	Fixed    []domain.ParameterValue
	Duration domain.TimeValue
}

// SequenceProcessor expands into its steps laid out back to back. The
// first step starts at the sequence's left pin; each following step starts
// where the previous one ends.
type SequenceProcessor struct {
	steps []SequenceStep
}

var _ ports.Processor = (*SequenceProcessor)(nil)

// NewSequenceProcessor creates a processor for the given steps.
func NewSequenceProcessor(steps []SequenceStep) *SequenceProcessor {
	return &SequenceProcessor{steps: steps}
}

// FixedParameterTypes declares no fixed slots; the steps are baked in.
func (p *SequenceProcessor) FixedParameterTypes() []domain.ParameterSpec {
	return nil
}

// UpdateVariableParameters declares no variable slots.
func (p *SequenceProcessor) UpdateVariableParameters(_ context.Context, _ []domain.ParameterValue, current []domain.ParameterSpec) ([]domain.ParameterSpec, error) {
	return current, nil
}

// NaturalLength is the sum of the step durations.
func (p *SequenceProcessor) NaturalLength(_ context.Context, _ []domain.ParameterValue) (domain.TimeValue, error) {
	total := domain.TimeZero
	for _, step := range p.steps {
		next, err := total.Add(step.Duration)
		if err != nil {
			return domain.TimeValue{}, err
		}
		total = next
	}
	return total, nil
}

// Expand instantiates every step and links them into a chain hanging off
// the sequence's left pin: zero-length links join neighbors, and each
// step's own pins are held apart by its duration.
func (p *SequenceProcessor) Expand(_ context.Context, req ports.ExpandRequest) (ports.Expansion, error) {
	children := make([]*domain.ComponentInstance, 0, len(p.steps))
	links := make([]*domain.MarkerLink, 0, 2*len(p.steps))

	prevRight := req.Instance.LeftPin().ID()
	for i, step := range p.steps {
		child, err := step.Class.Instantiate(step.Fixed)
		if err != nil {
			return ports.Expansion{}, zerr.With(zerr.With(err, "step", i), "class", step.Class.Name())
		}
		children = append(children, child)

		joint, err := domain.NewMarkerLink(prevRight, child.LeftPin().ID(), domain.TimeZero)
		if err != nil {
			return ports.Expansion{}, err
		}
		span, err := domain.NewMarkerLink(child.LeftPin().ID(), child.RightPin().ID(), step.Duration)
		if err != nil {
			return ports.Expansion{}, err
		}
		links = append(links, joint, span)
		prevRight = child.RightPin().ID()
	}

	return ports.Expansion{Children: children, Links: links}, nil
}
