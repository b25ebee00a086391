package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reel/internal/core/domain"
)

func fadeClass() *domain.ComponentClass {
	return domain.NewComponentClass(
		"fade",
		"native.fade",
		[]domain.ParameterSpec{
			{Name: "depth", Type: domain.TypeInteger},
			{Name: "strength", Type: domain.TypeReal},
		},
		[]domain.ParameterSpec{
			{Name: "opacity", Type: domain.TypeReal},
		},
		domain.Capabilities{Image: true},
	)
}

func TestClass_Instantiate(t *testing.T) {
	class := fadeClass()
	inst, err := class.Instantiate([]domain.ParameterValue{
		domain.IntegerValue(2),
		domain.RealValue(0.5),
	})
	require.NoError(t, err)

	assert.Equal(t, class, inst.Class())
	assert.Equal(t, domain.StateUnresolved, inst.State())

	// Boundary pins are fresh and unlocked.
	_, leftLocked := inst.LeftPin().LockedTime()
	_, rightLocked := inst.RightPin().LockedTime()
	assert.False(t, leftLocked)
	assert.False(t, rightLocked)
	assert.NotEqual(t, inst.LeftPin().ID(), inst.RightPin().ID())

	// Variable slots start as constant defaults.
	vars := inst.VariableParameters()
	require.Len(t, vars, 1)
	got, err := vars[0].EvaluateSegment(domain.TimeZero, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RealValue(0), got)
}

func TestClass_InstantiateValidatesFixed(t *testing.T) {
	class := fadeClass()

	_, err := class.Instantiate(nil)
	require.ErrorIs(t, err, domain.ErrParameterMismatch)

	_, err = class.Instantiate([]domain.ParameterValue{
		domain.RealValue(0.5),
		domain.IntegerValue(2),
	})
	require.ErrorIs(t, err, domain.ErrParameterMismatch)
}

func TestInstance_Pins(t *testing.T) {
	class := fadeClass()
	inst, err := class.Instantiate([]domain.ParameterValue{
		domain.IntegerValue(1),
		domain.RealValue(1),
	})
	require.NoError(t, err)

	interior := domain.NewUnlockedMarkerPin()
	inst.AddInteriorPin(interior)

	pins := inst.Pins()
	require.Len(t, pins, 3)
	assert.Equal(t, inst.LeftPin(), pins[0])
	assert.Equal(t, interior, pins[1])
	assert.Equal(t, inst.RightPin(), pins[2])
}

func TestInstance_SetFixedParametersBumpsEpoch(t *testing.T) {
	class := fadeClass()
	inst, err := class.Instantiate([]domain.ParameterValue{
		domain.IntegerValue(1),
		domain.RealValue(1),
	})
	require.NoError(t, err)

	before := inst.ParamEpoch()
	require.NoError(t, inst.SetFixedParameters([]domain.ParameterValue{
		domain.IntegerValue(2),
		domain.RealValue(0.25),
	}))
	assert.Greater(t, inst.ParamEpoch(), before)

	// Invalid values leave the instance untouched.
	err = inst.SetFixedParameters([]domain.ParameterValue{domain.BooleanValue(true)})
	require.ErrorIs(t, err, domain.ErrParameterMismatch)
	assert.Equal(t, domain.IntegerValue(2), inst.FixedParameters()[0])
}

func TestInstance_StateTransitions(t *testing.T) {
	class := fadeClass()
	inst, err := class.Instantiate([]domain.ParameterValue{
		domain.IntegerValue(1),
		domain.RealValue(1),
	})
	require.NoError(t, err)

	inst.SetState(domain.StateResolving)
	assert.Equal(t, domain.StateResolving, inst.State())
	inst.SetState(domain.StateLeaf)
	assert.Equal(t, domain.StateLeaf, inst.State())

	assert.Equal(t, "leaf", domain.StateLeaf.String())
	assert.Equal(t, "unresolved", domain.StateUnresolved.String())
}
