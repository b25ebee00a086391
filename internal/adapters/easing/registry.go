// Package easing provides the built-in easing function registry.
package easing

import (
	"sort"

	"github.com/fogleman/ease"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry is a fixed table of named easing functions. Lookups of unknown
// names fail loudly rather than falling back to linear, otherwise a typo
// in a composition would silently change motion.
type Registry struct {
	funcs map[string]domain.EasingFunc
}

var _ ports.EasingRegistry = (*Registry)(nil)

// New creates a Registry with the built-in functions.
func New() *Registry {
	return &Registry{funcs: map[string]domain.EasingFunc{
		"linear":         ease.Linear,
		"in-quad":        ease.InQuad,
		"out-quad":       ease.OutQuad,
		"in-out-quad":    ease.InOutQuad,
		"in-cubic":       ease.InCubic,
		"out-cubic":      ease.OutCubic,
		"in-out-cubic":   ease.InOutCubic,
		"in-quart":       ease.InQuart,
		"out-quart":      ease.OutQuart,
		"in-out-quart":   ease.InOutQuart,
		"in-quint":       ease.InQuint,
		"out-quint":      ease.OutQuint,
		"in-out-quint":   ease.InOutQuint,
		"in-sine":        ease.InSine,
		"out-sine":       ease.OutSine,
		"in-out-sine":    ease.InOutSine,
		"in-expo":        ease.InExpo,
		"out-expo":       ease.OutExpo,
		"in-out-expo":    ease.InOutExpo,
		"in-circ":        ease.InCirc,
		"out-circ":       ease.OutCirc,
		"in-out-circ":    ease.InOutCirc,
		"in-elastic":     ease.InElastic,
		"out-elastic":    ease.OutElastic,
		"in-out-elastic": ease.InOutElastic,
		"in-back":        ease.InBack,
		"out-back":       ease.OutBack,
		"in-out-back":    ease.InOutBack,
		"in-bounce":      ease.InBounce,
		"out-bounce":     ease.OutBounce,
		"in-out-bounce":  ease.InOutBounce,
	}}
}

// ByName returns the easing function registered under name.
func (r *Registry) ByName(name string) (domain.EasingFunc, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownEasing, "easing", name)
	}
	return fn, nil
}

// Names returns the registered identifiers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
