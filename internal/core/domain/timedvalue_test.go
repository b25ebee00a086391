package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reel/internal/core/domain"
)

func TestTimedValue_StepSemantics(t *testing.T) {
	v := domain.NewTimedValue("v0")
	v.SetAt(secs(t, 2), "v1")
	v.SetAt(secs(t, 5), "v2")

	assert.Equal(t, []domain.TimeValue{secs(t, 2), secs(t, 5)}, v.ChangeInstants())

	assert.Equal(t, "v0", v.ValueAt(secs(t, 0)))
	assert.Equal(t, "v1", v.ValueAt(secs(t, 2)))
	assert.Equal(t, "v1", v.ValueAt(secs(t, 3)))
	assert.Equal(t, "v2", v.ValueAt(secs(t, 5)))
	assert.Equal(t, "v2", v.ValueAt(secs(t, 9)))
}

func TestTimedValue_SetAtReplacesExistingInstant(t *testing.T) {
	v := domain.NewTimedValue(0)
	v.SetAt(secs(t, 1), 10)
	v.SetAt(secs(t, 1), 20)

	assert.Len(t, v.ChangeInstants(), 1)
	assert.Equal(t, 20, v.ValueAt(secs(t, 1)))
}

func TestTimedValue_RemoveAt(t *testing.T) {
	v := domain.NewTimedValue("a")
	v.SetAt(secs(t, 1), "b")
	v.SetAt(secs(t, 3), "c")

	v.RemoveAt(secs(t, 1))
	assert.Equal(t, "a", v.ValueAt(secs(t, 2)))

	// Removing a non-instant is a no-op.
	v.RemoveAt(secs(t, 7))
	assert.Equal(t, []domain.TimeValue{secs(t, 3)}, v.ChangeInstants())
}

func TestTimedValue_HasDifferentValue(t *testing.T) {
	v := domain.NewTimedValue(0)
	v.SetAt(secs(t, 2), 1)
	v.SetAt(secs(t, 5), 2)

	// Exclusive on both ends.
	assert.False(t, v.HasDifferentValue(secs(t, 1), secs(t, 2)))
	assert.True(t, v.HasDifferentValue(secs(t, 1), secs(t, 3)))
	assert.True(t, v.HasDifferentValue(secs(t, 1), secs(t, 6)))
	assert.False(t, v.HasDifferentValue(secs(t, 2), secs(t, 5)))

	// Argument order does not matter.
	assert.True(t, v.HasDifferentValue(secs(t, 6), secs(t, 1)))
}

func TestTimedValue_SegmentBounds(t *testing.T) {
	v := domain.NewTimedValue("a")
	v.SetAt(secs(t, 2), "b")
	v.SetAt(secs(t, 5), "c")

	_, end, startOK, endOK := v.SegmentBounds(secs(t, 0))
	assert.False(t, startOK)
	require.True(t, endOK)
	assert.Equal(t, secs(t, 2), end)

	start, end, startOK, endOK := v.SegmentBounds(secs(t, 3))
	require.True(t, startOK)
	require.True(t, endOK)
	assert.Equal(t, secs(t, 2), start)
	assert.Equal(t, secs(t, 5), end)

	start, _, startOK, endOK = v.SegmentBounds(secs(t, 8))
	require.True(t, startOK)
	assert.False(t, endOK)
	assert.Equal(t, secs(t, 5), start)
}

func TestEasingValue_At(t *testing.T) {
	e := domain.EasingValue[float64]{From: 10, To: 20, Easing: "linear"}
	linear := func(p float64) float64 { return p }

	// Endpoints are exact regardless of the function.
	assert.Equal(t, 10.0, e.At(0, linear))
	assert.Equal(t, 20.0, e.At(1, linear))
	assert.Equal(t, 10.0, e.At(-0.5, linear))
	assert.Equal(t, 20.0, e.At(1.5, linear))

	assert.InDelta(t, 15.0, e.At(0.5, linear), 1e-9)
}

func TestVariableParameter_EvaluateSegment(t *testing.T) {
	linear := func(p float64) float64 { return p }
	resolve := func(name string) (domain.EasingFunc, error) {
		if name != "linear" {
			return nil, domain.ErrUnknownEasing
		}
		return linear, nil
	}

	p := domain.NewVariableParameter("opacity", domain.RealValue(0))
	p.Timeline.SetAt(secs(t, 2), domain.EasedSegment(0, 1, "linear"))
	p.Timeline.SetAt(secs(t, 6), domain.ConstantSegment(domain.RealValue(1)))

	// Before the first instant: the constant initial value.
	got, err := p.EvaluateSegment(secs(t, 0), resolve)
	require.NoError(t, err)
	assert.Equal(t, domain.RealValue(0), got)

	// Halfway through the eased segment [2, 6].
	got, err = p.EvaluateSegment(secs(t, 4), resolve)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got.Real, 1e-9)

	// After the transition: constant again.
	got, err = p.EvaluateSegment(secs(t, 7), resolve)
	require.NoError(t, err)
	assert.Equal(t, domain.RealValue(1), got)
}

func TestVariableParameter_UnknownEasing(t *testing.T) {
	resolve := func(string) (domain.EasingFunc, error) {
		return nil, domain.ErrUnknownEasing
	}

	p := domain.NewVariableParameter("opacity", domain.RealValue(0))
	p.Timeline.SetAt(secs(t, 1), domain.EasedSegment(0, 1, "mystery"))
	p.Timeline.SetAt(secs(t, 3), domain.ConstantSegment(domain.RealValue(1)))

	_, err := p.EvaluateSegment(secs(t, 2), resolve)
	require.ErrorIs(t, err, domain.ErrUnknownEasing)
}

func TestVariableParameter_UnboundedEasedSegment(t *testing.T) {
	linear := func(p float64) float64 { return p }
	resolve := func(string) (domain.EasingFunc, error) { return linear, nil }

	// The eased segment is last, so it has no end bound: it holds From.
	p := domain.NewVariableParameter("opacity", domain.RealValue(0))
	p.Timeline.SetAt(secs(t, 1), domain.EasedSegment(0.25, 1, "linear"))

	got, err := p.EvaluateSegment(secs(t, 5), resolve)
	require.NoError(t, err)
	assert.Equal(t, domain.RealValue(0.25), got)
}
