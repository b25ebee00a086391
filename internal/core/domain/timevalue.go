// Package domain contains the core domain model of the timeline evaluation
// engine: fixed-point timeline time, marker pins and links, time-varying
// values, and the component class/instance model.
package domain

import (
	"math"
	"strconv"
	"sync/atomic"

	"go.trai.ch/zerr"
)

// timeScaleBits is the number of fractional bits in a TimeValue.
// A TimeValue is a signed Q31.32 fixed-point number of seconds, so the
// whole value fits one machine word and can be read and written atomically.
const timeScaleBits = 32

// TimeValue is a point (or length) on the timeline in seconds, stored as a
// signed fixed-point rational with a 2^32 denominator. TimeValues are
// totally ordered and comparable with ==. Arithmetic is checked: overflow
// is reported as ErrTimeOverflow, never wrapped silently.
type TimeValue struct {
	raw int64
}

// TimeZero is the zero point of the timeline.
var TimeZero = TimeValue{}

// TimeFromSeconds converts whole seconds to a TimeValue.
func TimeFromSeconds(s int64) (TimeValue, error) {
	if s > math.MaxInt32 || s < math.MinInt32 {
		return TimeValue{}, zerr.With(ErrTimeOverflow, "seconds", s)
	}
	return TimeValue{raw: s << timeScaleBits}, nil
}

// TimeFromFloat64 converts a floating-point number of seconds to the nearest
// representable TimeValue.
func TimeFromFloat64(s float64) (TimeValue, error) {
	scaled := s * float64(int64(1)<<timeScaleBits)
	if math.IsNaN(scaled) || scaled >= math.MaxInt64 || scaled <= math.MinInt64 {
		return TimeValue{}, zerr.With(ErrTimeOverflow, "seconds", s)
	}
	return TimeValue{raw: int64(math.Round(scaled))}, nil
}

// Float64 returns the value in seconds. Lossy for extreme magnitudes, exact
// for values with short binary fractions; intended for reporting and for
// easing progress ratios, not for constraint arithmetic.
func (t TimeValue) Float64() float64 {
	return float64(t.raw) / float64(int64(1)<<timeScaleBits)
}

// Add returns t + other, or ErrTimeOverflow.
func (t TimeValue) Add(other TimeValue) (TimeValue, error) {
	sum := t.raw + other.raw
	if (t.raw^sum)&(other.raw^sum) < 0 {
		return TimeValue{}, zerr.With(zerr.With(ErrTimeOverflow, "lhs", t.String()), "rhs", other.String())
	}
	return TimeValue{raw: sum}, nil
}

// Sub returns t - other, or ErrTimeOverflow.
func (t TimeValue) Sub(other TimeValue) (TimeValue, error) {
	diff := t.raw - other.raw
	if (t.raw^other.raw) < 0 && (t.raw^diff) < 0 {
		return TimeValue{}, zerr.With(zerr.With(ErrTimeOverflow, "lhs", t.String()), "rhs", other.String())
	}
	return TimeValue{raw: diff}, nil
}

// Neg returns -t, or ErrTimeOverflow for the single unrepresentable value.
func (t TimeValue) Neg() (TimeValue, error) {
	if t.raw == math.MinInt64 {
		return TimeValue{}, zerr.With(ErrTimeOverflow, "value", t.String())
	}
	return TimeValue{raw: -t.raw}, nil
}

// Cmp returns -1, 0, or 1 depending on whether t is less than, equal to, or
// greater than other.
func (t TimeValue) Cmp(other TimeValue) int {
	switch {
	case t.raw < other.raw:
		return -1
	case t.raw > other.raw:
		return 1
	default:
		return 0
	}
}

// Less reports whether t is strictly before other.
func (t TimeValue) Less(other TimeValue) bool {
	return t.raw < other.raw
}

// IsZero reports whether t is the timeline origin.
func (t TimeValue) IsZero() bool {
	return t.raw == 0
}

// IsNegative reports whether t is before the timeline origin.
func (t TimeValue) IsNegative() bool {
	return t.raw < 0
}

// String renders the value as decimal seconds with microsecond-ish precision.
func (t TimeValue) String() string {
	return strconv.FormatFloat(t.Float64(), 'f', 6, 64)
}

// Progress returns (t - start) / (end - start) clamped to [0, 1]. A
// degenerate segment (end <= start) resolves to 0 so easing evaluation
// stays total.
func Progress(t, start, end TimeValue) float64 {
	if end.raw <= start.raw {
		return 0
	}
	p := float64(t.raw-start.raw) / float64(end.raw-start.raw)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// AtomicTimeValue is a TimeValue cell that can be loaded and stored across
// goroutines without a lock, backed by the fixed-point integer encoding.
type AtomicTimeValue struct {
	raw atomic.Int64
}

// Load returns the current value.
func (a *AtomicTimeValue) Load() TimeValue {
	return TimeValue{raw: a.raw.Load()}
}

// Store replaces the current value.
func (a *AtomicTimeValue) Store(t TimeValue) {
	a.raw.Store(t.raw)
}

// CompareAndSwap atomically replaces old with new and reports success.
func (a *AtomicTimeValue) CompareAndSwap(old, new TimeValue) bool {
	return a.raw.CompareAndSwap(old.raw, new.raw)
}
