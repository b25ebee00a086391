package ports

import "go.trai.ch/reel/internal/core/domain"

//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks

// CompositionLoader builds a domain composition from an external
// description (the YAML composition file in the CLI).
type CompositionLoader interface {
	Load(path string) (*domain.Composition, error)
}

// ClassCatalog resolves component class names to class templates. Built-in
// classes come from the components adapter; an unknown name is
// domain.ErrUnknownClass.
type ClassCatalog interface {
	ClassByName(name string) (*domain.ComponentClass, error)
}
