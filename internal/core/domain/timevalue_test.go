package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reel/internal/core/domain"
)

func secs(t *testing.T, s int64) domain.TimeValue {
	t.Helper()
	v, err := domain.TimeFromSeconds(s)
	require.NoError(t, err)
	return v
}

func TestTimeValue_Roundtrip(t *testing.T) {
	v, err := domain.TimeFromFloat64(2.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, v.Float64(), 1e-9)
	assert.Equal(t, "2.500000", v.String())

	neg, err := domain.TimeFromFloat64(-0.25)
	require.NoError(t, err)
	assert.True(t, neg.IsNegative())
}

func TestTimeValue_ExactArithmetic(t *testing.T) {
	// Repeated addition of a dyadic fraction accumulates no error.
	step, err := domain.TimeFromFloat64(1.0 / 64.0)
	require.NoError(t, err)

	sum := domain.TimeZero
	for range 64 {
		next, err := sum.Add(step)
		require.NoError(t, err)
		sum = next
	}
	assert.Equal(t, secs(t, 1), sum)
}

func TestTimeValue_AddOverflow(t *testing.T) {
	big, err := domain.TimeFromFloat64(math.Ldexp(1, 30))
	require.NoError(t, err)

	acc := big
	var overflowed bool
	for range 4 {
		next, err := acc.Add(big)
		if err != nil {
			overflowed = true
			break
		}
		acc = next
	}
	assert.True(t, overflowed)
}

func TestTimeValue_FromFloatRejectsOutOfRange(t *testing.T) {
	_, err := domain.TimeFromFloat64(math.Ldexp(1, 40))
	require.ErrorIs(t, err, domain.ErrTimeOverflow)

	_, err = domain.TimeFromFloat64(math.NaN())
	require.Error(t, err)
}

func TestTimeValue_SubAndNeg(t *testing.T) {
	a := secs(t, 3)
	b := secs(t, 5)

	d, err := a.Sub(b)
	require.NoError(t, err)
	assert.True(t, d.IsNegative())

	n, err := d.Neg()
	require.NoError(t, err)
	assert.Equal(t, secs(t, 2), n)
}

func TestTimeValue_Ordering(t *testing.T) {
	a := secs(t, 1)
	b := secs(t, 2)

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.True(t, domain.TimeZero.IsZero())
}

func TestProgress(t *testing.T) {
	start := secs(t, 2)
	end := secs(t, 6)

	assert.InDelta(t, 0, domain.Progress(secs(t, 2), start, end), 1e-9)
	assert.InDelta(t, 0.5, domain.Progress(secs(t, 4), start, end), 1e-9)
	assert.InDelta(t, 1, domain.Progress(secs(t, 6), start, end), 1e-9)

	// Clamped outside the segment.
	assert.InDelta(t, 0, domain.Progress(secs(t, 0), start, end), 1e-9)
	assert.InDelta(t, 1, domain.Progress(secs(t, 9), start, end), 1e-9)

	// Degenerate segment resolves to 0.
	assert.InDelta(t, 0, domain.Progress(secs(t, 4), start, start), 1e-9)
}

func TestAtomicTimeValue(t *testing.T) {
	var cell domain.AtomicTimeValue
	assert.True(t, cell.Load().IsZero())

	cell.Store(secs(t, 7))
	assert.Equal(t, secs(t, 7), cell.Load())

	assert.False(t, cell.CompareAndSwap(secs(t, 1), secs(t, 2)))
	assert.True(t, cell.CompareAndSwap(secs(t, 7), secs(t, 2)))
	assert.Equal(t, secs(t, 2), cell.Load())
}
