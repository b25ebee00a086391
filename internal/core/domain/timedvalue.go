package domain

import "sort"

// TimedValue is a value that changes at discrete instants: a step function
// over an ordered, deduplicated set of change instants. The initial value is
// in effect before the first instant; each change instant carries the value
// in effect from that instant (inclusive) until the next.
type TimedValue[T any] struct {
	initial T
	changes []change[T]
}

type change[T any] struct {
	at    TimeValue
	value T
}

// NewTimedValue creates a TimedValue that holds initial everywhere.
func NewTimedValue[T any](initial T) *TimedValue[T] {
	return &TimedValue[T]{initial: initial}
}

// SetAt inserts or replaces the change instant at t. Instants stay sorted
// and deduplicated.
func (v *TimedValue[T]) SetAt(t TimeValue, value T) {
	i := sort.Search(len(v.changes), func(i int) bool {
		return !v.changes[i].at.Less(t)
	})
	if i < len(v.changes) && v.changes[i].at == t {
		v.changes[i].value = value
		return
	}
	v.changes = append(v.changes, change[T]{})
	copy(v.changes[i+1:], v.changes[i:])
	v.changes[i] = change[T]{at: t, value: value}
}

// RemoveAt deletes the change instant at t, if present.
func (v *TimedValue[T]) RemoveAt(t TimeValue) {
	i := sort.Search(len(v.changes), func(i int) bool {
		return !v.changes[i].at.Less(t)
	})
	if i < len(v.changes) && v.changes[i].at == t {
		v.changes = append(v.changes[:i], v.changes[i+1:]...)
	}
}

// ValueAt returns the value in effect at t. Pure: two calls with the same
// instant observe the same value.
func (v *TimedValue[T]) ValueAt(t TimeValue) T {
	// Last change instant <= t.
	i := sort.Search(len(v.changes), func(i int) bool {
		return t.Less(v.changes[i].at)
	})
	if i == 0 {
		return v.initial
	}
	return v.changes[i-1].value
}

// ChangeInstants returns the ordered set of change instants.
func (v *TimedValue[T]) ChangeInstants() []TimeValue {
	out := make([]TimeValue, len(v.changes))
	for i, c := range v.changes {
		out[i] = c.at
	}
	return out
}

// SegmentBounds returns the start and end of the segment containing t.
// The start of the first segment and the end of the last are reported as
// (bounded=false); easing evaluation treats unbounded segments as constant.
func (v *TimedValue[T]) SegmentBounds(t TimeValue) (start, end TimeValue, startBounded, endBounded bool) {
	i := sort.Search(len(v.changes), func(i int) bool {
		return t.Less(v.changes[i].at)
	})
	if i > 0 {
		start, startBounded = v.changes[i-1].at, true
	}
	if i < len(v.changes) {
		end, endBounded = v.changes[i].at, true
	}
	return start, end, startBounded, endBounded
}

// HasDifferentValue reports whether at least one change instant lies
// strictly between a and b (exclusive on both ends; argument order does not
// matter). A cached result derived from this value over [a, b] is reusable
// iff this returns false.
func (v *TimedValue[T]) HasDifferentValue(a, b TimeValue) bool {
	if b.Less(a) {
		a, b = b, a
	}
	for _, c := range v.changes {
		if a.Less(c.at) && c.at.Less(b) {
			return true
		}
		if !c.at.Less(b) {
			break
		}
	}
	return false
}

// EasingFunc maps a normalized progress in [0, 1] to an eased ratio.
// Registered implementations must be deterministic and map 0 to 0 and 1 to 1.
type EasingFunc func(progress float64) float64

// Real constrains easing interpolation to real-valued payloads.
type Real interface {
	~float32 | ~float64
}

// EasingValue interpolates between two endpoints via a named easing
// function. It is not itself time-indexed; it appears as the payload of a
// TimedValue segment, with progress derived from the segment bounds.
type EasingValue[T Real] struct {
	From   T
	To     T
	Easing string
}

// At evaluates the transition at the given progress using fn, which the
// caller resolves from the Easing name. Progress is clamped to [0, 1] and
// the endpoints map exactly to From and To.
func (e EasingValue[T]) At(progress float64, fn EasingFunc) T {
	if progress <= 0 {
		return e.From
	}
	if progress >= 1 {
		return e.To
	}
	return e.From + T(float64(e.To-e.From)*fn(progress))
}
