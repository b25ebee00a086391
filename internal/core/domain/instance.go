package domain

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// InstanceState is the expansion state machine position of an instance.
type InstanceState int32

const (
	// StateUnresolved means the instance has not been visited by the engine.
	StateUnresolved InstanceState = iota
	// StateResolving means the engine is updating variable parameters and
	// invoking the processor.
	StateResolving
	// StateLeaf means the processor produced terminal native executables.
	StateLeaf
	// StateExpanded means the processor produced a sub-graph of further
	// instances and links.
	StateExpanded
)

// String returns the state name for spans and error metadata.
func (s InstanceState) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateLeaf:
		return "leaf"
	case StateExpanded:
		return "expanded"
	default:
		return "unresolved"
	}
}

// ComponentInstance is a placed, parameterized occurrence of a component
// class. It owns its boundary pins (left, right) and any interior pins, in
// order; links reference those pins by id only. Parameters are mutated only
// by the editing collaborator; the expansion engine reads them and advances
// the expansion state, nothing else.
type ComponentInstance struct {
	id    uuid.UUID
	class *ComponentClass

	left      *MarkerPin
	right     *MarkerPin
	interiors []*MarkerPin

	fixed    []ParameterValue
	variable []VariableParameter

	// paramEpoch is bumped by the editor on every parameter change and is
	// folded into cache fingerprints, invalidating stale entries.
	paramEpoch atomic.Uint64

	state atomic.Int32
}

func newComponentInstance(class *ComponentClass, fixed []ParameterValue, variable []VariableParameter) *ComponentInstance {
	return &ComponentInstance{
		id:       uuid.New(),
		class:    class,
		left:     NewUnlockedMarkerPin(),
		right:    NewUnlockedMarkerPin(),
		fixed:    fixed,
		variable: variable,
	}
}

// ID returns the instance identity.
func (c *ComponentInstance) ID() uuid.UUID {
	return c.id
}

// Class returns the non-owning reference to the instance's class.
func (c *ComponentInstance) Class() *ComponentClass {
	return c.class
}

// LeftPin returns the left boundary pin.
func (c *ComponentInstance) LeftPin() *MarkerPin {
	return c.left
}

// RightPin returns the right boundary pin.
func (c *ComponentInstance) RightPin() *MarkerPin {
	return c.right
}

// InteriorPins returns the ordered interior pins.
func (c *ComponentInstance) InteriorPins() []*MarkerPin {
	return c.interiors
}

// AddInteriorPin appends an interior pin, keeping ownership with the instance.
func (c *ComponentInstance) AddInteriorPin(p *MarkerPin) {
	c.interiors = append(c.interiors, p)
}

// Pins returns all owned pins in order: left, interiors, right.
func (c *ComponentInstance) Pins() []*MarkerPin {
	out := make([]*MarkerPin, 0, len(c.interiors)+2)
	out = append(out, c.left)
	out = append(out, c.interiors...)
	out = append(out, c.right)
	return out
}

// FixedParameters returns the concrete fixed parameter values.
func (c *ComponentInstance) FixedParameters() []ParameterValue {
	return c.fixed
}

// VariableParameters returns the variable parameter timelines.
func (c *ComponentInstance) VariableParameters() []VariableParameter {
	return c.variable
}

// SetFixedParameters replaces the fixed values and bumps the parameter
// epoch. Editor-only.
func (c *ComponentInstance) SetFixedParameters(values []ParameterValue) error {
	if err := ValidateParameters(c.class.FixedParameterSpecs(), values); err != nil {
		return err
	}
	c.fixed = values
	c.paramEpoch.Add(1)
	return nil
}

// SetVariableParameters replaces the variable timelines and bumps the
// parameter epoch. Editor-only.
func (c *ComponentInstance) SetVariableParameters(params []VariableParameter) {
	c.variable = params
	c.paramEpoch.Add(1)
}

// ParamEpoch returns the current parameter epoch.
func (c *ComponentInstance) ParamEpoch() uint64 {
	return c.paramEpoch.Load()
}

// BumpParamEpoch marks the instance's parameters as changed without
// replacing them, for in-place timeline edits.
func (c *ComponentInstance) BumpParamEpoch() {
	c.paramEpoch.Add(1)
}

// State returns the expansion state.
func (c *ComponentInstance) State() InstanceState {
	return InstanceState(c.state.Load())
}

// SetState advances the expansion state machine.
func (c *ComponentInstance) SetState(s InstanceState) {
	c.state.Store(int32(s))
}
