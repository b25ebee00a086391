package domain

import "go.trai.ch/zerr"

var (
	// ErrSelfLink is returned when a marker link is constructed with identical endpoints.
	ErrSelfLink = zerr.New("marker link endpoints must differ")

	// ErrConstraintConflict is returned when two link paths resolve a pin to different times.
	ErrConstraintConflict = zerr.New("conflicting length constraints in pin group")

	// ErrUnknownPin is returned when a link references a pin that is not part of the solve set.
	ErrUnknownPin = zerr.New("link references unknown pin")

	// ErrTimeOverflow is returned when fixed-point time arithmetic overflows.
	ErrTimeOverflow = zerr.New("time value arithmetic overflow")

	// ErrNegativeMarkerTime is returned when a locked marker time is negative.
	ErrNegativeMarkerTime = zerr.New("marker time must be non-negative")

	// ErrCycleDetected is returned when expansion revisits an instance on its active path.
	ErrCycleDetected = zerr.New("cycle detected in component expansion")

	// ErrProcessorFailed is returned when a processor rejects its parameters or cannot compute.
	ErrProcessorFailed = zerr.New("processor invocation failed")

	// ErrUnknownProcessor is returned when a class references a processor that is not registered.
	ErrUnknownProcessor = zerr.New("processor not registered")

	// ErrUnknownClass is returned when a composition references a component class that does not exist.
	ErrUnknownClass = zerr.New("component class not found")

	// ErrUnknownEasing is returned when a referenced easing identifier has no registered implementation.
	ErrUnknownEasing = zerr.New("easing function not registered")

	// ErrParameterMismatch is returned when parameter values do not match the declared types.
	ErrParameterMismatch = zerr.New("parameter values do not match declared types")

	// ErrCancelled is returned when an expansion observed a dead heartbeat and stopped early.
	// It is distinct from failure; partial results may accompany it.
	ErrCancelled = zerr.New("expansion cancelled")

	// ErrCompositionReadFailed is returned when the composition file cannot be read.
	ErrCompositionReadFailed = zerr.New("failed to read composition file")

	// ErrCompositionParseFailed is returned when the composition file cannot be parsed.
	ErrCompositionParseFailed = zerr.New("failed to parse composition file")

	// ErrInvalidComposition is returned when a parsed composition violates structural rules.
	ErrInvalidComposition = zerr.New("invalid composition")

	// ErrNoCompositionSpecified is returned when the render command is invoked without a composition file.
	ErrNoCompositionSpecified = zerr.New("no composition specified")

	// ErrRenderFailed is returned when evaluating a composition fails.
	ErrRenderFailed = zerr.New("render failed")
)
