package domain

import "go.trai.ch/zerr"

// ParameterType is the declared type of a component parameter.
type ParameterType string

const (
	// TypeInteger is a signed whole-number parameter.
	TypeInteger ParameterType = "integer"
	// TypeReal is a floating-point parameter.
	TypeReal ParameterType = "real"
	// TypeBoolean is a true/false parameter.
	TypeBoolean ParameterType = "boolean"
	// TypeString is a text parameter.
	TypeString ParameterType = "string"
)

// ParameterSpec declares one parameter slot of a component class or
// processor: its name and type.
type ParameterSpec struct {
	Name string
	Type ParameterType
}

// ParameterValue is a concrete parameter value tagged with its type.
// Callers switch on Type rather than reflecting on the payload.
type ParameterValue struct {
	Type ParameterType

	Int  int64
	Real float64
	Bool bool
	Str  string
}

// IntegerValue wraps an int64 as a ParameterValue.
func IntegerValue(v int64) ParameterValue {
	return ParameterValue{Type: TypeInteger, Int: v}
}

// RealValue wraps a float64 as a ParameterValue.
func RealValue(v float64) ParameterValue {
	return ParameterValue{Type: TypeReal, Real: v}
}

// BooleanValue wraps a bool as a ParameterValue.
func BooleanValue(v bool) ParameterValue {
	return ParameterValue{Type: TypeBoolean, Bool: v}
}

// StringValue wraps a string as a ParameterValue.
func StringValue(v string) ParameterValue {
	return ParameterValue{Type: TypeString, Str: v}
}

// Equal reports whether two values have the same type and payload.
func (v ParameterValue) Equal(other ParameterValue) bool {
	return v == other
}

// ValidateParameters checks concrete values against declared specs.
func ValidateParameters(specs []ParameterSpec, values []ParameterValue) error {
	if len(specs) != len(values) {
		return zerr.With(zerr.With(ErrParameterMismatch, "declared", len(specs)), "given", len(values))
	}
	for i, spec := range specs {
		if values[i].Type != spec.Type {
			return zerr.With(zerr.With(zerr.With(ErrParameterMismatch,
				"parameter", spec.Name),
				"declared_type", string(spec.Type)),
				"given_type", string(values[i].Type),
			)
		}
	}
	return nil
}

// ParameterSegment is one segment payload of a variable parameter timeline:
// either a constant value, or an eased transition between two real values.
type ParameterSegment struct {
	Constant ParameterValue
	Eased    *EasingValue[float64]
}

// ConstantSegment builds a constant segment payload.
func ConstantSegment(v ParameterValue) ParameterSegment {
	return ParameterSegment{Constant: v}
}

// EasedSegment builds an eased transition segment payload.
func EasedSegment(from, to float64, easing string) ParameterSegment {
	return ParameterSegment{Eased: &EasingValue[float64]{From: from, To: to, Easing: easing}}
}

// VariableParameter is a named parameter whose value varies over the
// timeline as a step function of segments.
type VariableParameter struct {
	Name     string
	Timeline *TimedValue[ParameterSegment]
}

// NewVariableParameter creates a variable parameter holding a constant
// initial value everywhere.
func NewVariableParameter(name string, initial ParameterValue) VariableParameter {
	return VariableParameter{Name: name, Timeline: NewTimedValue(ConstantSegment(initial))}
}

// EvaluateSegment resolves the parameter's concrete value at t. Constant
// segments return their value directly; eased segments derive progress from
// the segment bounds and delegate to resolve, which maps the easing name to
// a function and fails with ErrUnknownEasing for unregistered names.
func (p VariableParameter) EvaluateSegment(t TimeValue, resolve func(name string) (EasingFunc, error)) (ParameterValue, error) {
	seg := p.Timeline.ValueAt(t)
	if seg.Eased == nil {
		return seg.Constant, nil
	}
	fn, err := resolve(seg.Eased.Easing)
	if err != nil {
		return ParameterValue{}, zerr.With(zerr.With(err, "parameter", p.Name), "easing", seg.Eased.Easing)
	}
	start, end, startOK, endOK := p.Timeline.SegmentBounds(t)
	if !startOK || !endOK {
		// Unbounded segments have no transition to ease through.
		return RealValue(seg.Eased.From), nil
	}
	return RealValue(seg.Eased.At(Progress(t, start, end), fn)), nil
}
