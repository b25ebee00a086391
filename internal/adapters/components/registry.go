// Package components provides the built-in component classes and the
// processor registry binding class references to implementations.
package components

import (
	"sync"

	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/zerr"
)

// Processor references of the built-in classes.
const (
	SolidColorRef = "native.solid-color"
	SineToneRef   = "native.sine-tone"
)

// Registry is the process-wide processor table. Built-ins are registered
// at construction; composition loading adds one sequence processor per
// composition on top.
type Registry struct {
	mu    sync.RWMutex
	procs map[string]ports.Processor
}

var _ ports.ProcessorRegistry = (*Registry)(nil)

// NewRegistry creates a Registry with the built-in processors installed.
func NewRegistry() *Registry {
	r := &Registry{procs: make(map[string]ports.Processor)}
	_ = r.Register(SolidColorRef, &SolidColorProcessor{})
	_ = r.Register(SineToneRef, &SineToneProcessor{})
	return r
}

// Register binds ref to p. Re-registering an existing ref is an error so
// a composition cannot shadow a built-in.
func (r *Registry) Register(ref string, p ports.Processor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.procs[ref]; exists {
		return zerr.With(zerr.New("processor reference already registered"), "ref", ref)
	}
	r.procs[ref] = p
	return nil
}

// Lookup resolves ref to its processor.
func (r *Registry) Lookup(ref string) (ports.Processor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.procs[ref]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownProcessor, "ref", ref)
	}
	return p, nil
}

// Catalog resolves class names to the built-in class templates.
type Catalog struct {
	classes map[string]*domain.ComponentClass
}

var _ ports.ClassCatalog = (*Catalog)(nil)

// NewCatalog creates a Catalog of the built-in classes.
func NewCatalog() *Catalog {
	solid := domain.NewComponentClass(
		"solid-color",
		SolidColorRef,
		[]domain.ParameterSpec{
			{Name: "width", Type: domain.TypeInteger},
			{Name: "height", Type: domain.TypeInteger},
			{Name: "red", Type: domain.TypeReal},
			{Name: "green", Type: domain.TypeReal},
			{Name: "blue", Type: domain.TypeReal},
			{Name: "duration", Type: domain.TypeReal},
		},
		[]domain.ParameterSpec{
			{Name: "opacity", Type: domain.TypeReal},
		},
		domain.Capabilities{Image: true},
	)
	sine := domain.NewComponentClass(
		"sine-tone",
		SineToneRef,
		[]domain.ParameterSpec{
			{Name: "frequency", Type: domain.TypeReal},
			{Name: "amplitude", Type: domain.TypeReal},
			{Name: "duration", Type: domain.TypeReal},
		},
		nil,
		domain.Capabilities{Audio: true},
	)

	return &Catalog{classes: map[string]*domain.ComponentClass{
		solid.Name(): solid,
		sine.Name():  sine,
	}}
}

// ClassByName returns the class template registered under name.
func (c *Catalog) ClassByName(name string) (*domain.ComponentClass, error) {
	class, ok := c.classes[name]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownClass, "class", name)
	}
	return class, nil
}
