package domain

import (
	"github.com/google/uuid"
	"go.trai.ch/zerr"
)

// Capabilities flags what a component class can produce.
type Capabilities struct {
	Image bool
	Audio bool
}

// ComponentClass is an immutable template for component instances. It
// declares the fixed-parameter slots, the default variable-parameter slots,
// its output capabilities, and the processor it is bound to. Processors are
// bound by reference and resolved through the processor registry at
// evaluation time, so classes stay plain data.
type ComponentClass struct {
	id           uuid.UUID
	name         string
	processorRef string
	fixed        []ParameterSpec
	variable     []ParameterSpec
	capabilities Capabilities
}

// NewComponentClass builds an immutable class template.
func NewComponentClass(name, processorRef string, fixed, variable []ParameterSpec, caps Capabilities) *ComponentClass {
	return &ComponentClass{
		id:           uuid.New(),
		name:         name,
		processorRef: processorRef,
		fixed:        fixed,
		variable:     variable,
		capabilities: caps,
	}
}

// ID returns the class identity.
func (c *ComponentClass) ID() uuid.UUID {
	return c.id
}

// Name returns the human-readable class name.
func (c *ComponentClass) Name() string {
	return c.name
}

// ProcessorRef returns the registry reference of the bound processor.
func (c *ComponentClass) ProcessorRef() string {
	return c.processorRef
}

// FixedParameterSpecs returns the declared fixed-parameter slots.
func (c *ComponentClass) FixedParameterSpecs() []ParameterSpec {
	return c.fixed
}

// DefaultVariableParameterSpecs returns the declared default
// variable-parameter slots.
func (c *ComponentClass) DefaultVariableParameterSpecs() []ParameterSpec {
	return c.variable
}

// Capabilities returns the class's output capabilities.
func (c *ComponentClass) Capabilities() Capabilities {
	return c.capabilities
}

// Instantiate creates a placed occurrence of the class with fresh boundary
// pins, default variable-parameter timelines, and the given fixed
// parameter values, which are validated against the declared slots.
func (c *ComponentClass) Instantiate(fixed []ParameterValue) (*ComponentInstance, error) {
	if err := ValidateParameters(c.fixed, fixed); err != nil {
		return nil, zerr.With(err, "class", c.name)
	}
	variable := make([]VariableParameter, len(c.variable))
	for i, spec := range c.variable {
		variable[i] = NewVariableParameter(spec.Name, defaultValueFor(spec.Type))
	}
	return newComponentInstance(c, fixed, variable), nil
}

func defaultValueFor(t ParameterType) ParameterValue {
	switch t {
	case TypeInteger:
		return IntegerValue(0)
	case TypeReal:
		return RealValue(0)
	case TypeBoolean:
		return BooleanValue(false)
	default:
		return StringValue("")
	}
}
