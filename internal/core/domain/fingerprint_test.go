package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reel/internal/core/domain"
)

func newFadeInstance(t *testing.T) *domain.ComponentInstance {
	t.Helper()
	inst, err := fadeClass().Instantiate([]domain.ParameterValue{
		domain.IntegerValue(1),
		domain.RealValue(0.5),
	})
	require.NoError(t, err)
	return inst
}

func TestExpansionFingerprint_Deterministic(t *testing.T) {
	inst := newFadeInstance(t)
	times := []domain.TimeValue{secs(t, 0), secs(t, 4)}

	a := domain.ExpansionFingerprint(inst, times)
	b := domain.ExpansionFingerprint(inst, times)
	assert.Equal(t, a, b)
}

func TestExpansionFingerprint_SensitiveToInputs(t *testing.T) {
	inst := newFadeInstance(t)
	base := domain.ExpansionFingerprint(inst, []domain.TimeValue{secs(t, 0), secs(t, 4)})

	// Different pin times.
	moved := domain.ExpansionFingerprint(inst, []domain.TimeValue{secs(t, 0), secs(t, 5)})
	assert.NotEqual(t, base, moved)

	// Different instance, same class and parameters.
	other := newFadeInstance(t)
	assert.NotEqual(t, base, domain.ExpansionFingerprint(other, []domain.TimeValue{secs(t, 0), secs(t, 4)}))

	// An epoch bump invalidates the old key.
	inst.BumpParamEpoch()
	assert.NotEqual(t, base, domain.ExpansionFingerprint(inst, []domain.TimeValue{secs(t, 0), secs(t, 4)}))
}

func TestNaturalLengthFingerprint(t *testing.T) {
	class := fadeClass()
	fixed := []domain.ParameterValue{
		domain.IntegerValue(1),
		domain.RealValue(0.5),
	}

	a := domain.NaturalLengthFingerprint(class, fixed)
	b := domain.NaturalLengthFingerprint(class, fixed)
	assert.Equal(t, a, b)

	other := domain.NaturalLengthFingerprint(class, []domain.ParameterValue{
		domain.IntegerValue(2),
		domain.RealValue(0.5),
	})
	assert.NotEqual(t, a, other)
}

func TestFingerprint_String(t *testing.T) {
	assert.Equal(t, "00000000000000ff", domain.Fingerprint(255).String())
	assert.Len(t, domain.Fingerprint(0).String(), 16)
}
