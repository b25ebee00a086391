package ports

import "go.trai.ch/reel/internal/core/domain"

//go:generate mockgen -source=easing.go -destination=mocks/mock_easing.go -package=mocks

// EasingRegistry maps easing identifiers to implementations. An unknown
// identifier is domain.ErrUnknownEasing, never a silent fallback.
type EasingRegistry interface {
	ByName(name string) (domain.EasingFunc, error)
	Names() []string
}
