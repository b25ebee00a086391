package domain

import (
	"sync/atomic"

	"go.trai.ch/zerr"
)

// PinID identifies a marker pin for the lifetime of the process. Links
// reference pins by id only; ownership of the pin stays with the component
// instance that created it. Ids are allocated from a monotonic counter so
// the solver's lowest-id anchor tie-break is stable within a run.
type PinID uint64

var nextPinID atomic.Uint64

// NewPinID allocates a fresh process-unique pin id.
func NewPinID() PinID {
	return PinID(nextPinID.Add(1))
}

// MarkerTime is a locked position of a pin, non-negative by construction.
type MarkerTime struct {
	t TimeValue
}

// NewMarkerTime validates and wraps a TimeValue as a MarkerTime.
func NewMarkerTime(t TimeValue) (MarkerTime, error) {
	if t.IsNegative() {
		return MarkerTime{}, zerr.With(ErrNegativeMarkerTime, "time", t.String())
	}
	return MarkerTime{t: t}, nil
}

// Value returns the underlying TimeValue.
func (m MarkerTime) Value() TimeValue {
	return m.t
}

// MarkerPin is a named point in time owned by a component instance. The
// resolved timeline time is cached in an atomic cell so renderers can read
// it without taking the editor's locks; the optional locked time is only
// mutated by the editing collaborator, which serializes its own access.
type MarkerPin struct {
	id     PinID
	cached AtomicTimeValue

	locked    MarkerTime
	hasLocked bool
}

// NewMarkerPin creates a pin locked at the given marker time. The cached
// timeline time starts at the locked value.
func NewMarkerPin(locked MarkerTime) *MarkerPin {
	p := &MarkerPin{id: NewPinID(), locked: locked, hasLocked: true}
	p.cached.Store(locked.Value())
	return p
}

// NewUnlockedMarkerPin creates a pin with no locked time. Its timeline time
// is determined entirely by link constraints.
func NewUnlockedMarkerPin() *MarkerPin {
	return &MarkerPin{id: NewPinID()}
}

// ID returns the pin's process-unique id.
func (p *MarkerPin) ID() PinID {
	return p.id
}

// CachedTime returns the last resolved timeline time.
func (p *MarkerPin) CachedTime() TimeValue {
	return p.cached.Load()
}

// CacheTime stores a resolved timeline time.
func (p *MarkerPin) CacheTime(t TimeValue) {
	p.cached.Store(t)
}

// LockedTime returns the locked marker time, if any.
func (p *MarkerPin) LockedTime() (MarkerTime, bool) {
	return p.locked, p.hasLocked
}

// SetLockedTime locks the pin at the given marker time.
func (p *MarkerPin) SetLockedTime(t MarkerTime) {
	p.locked = t
	p.hasLocked = true
}

// ClearLockedTime removes the lock.
func (p *MarkerPin) ClearLockedTime() {
	p.locked = MarkerTime{}
	p.hasLocked = false
}

// MarkerLink is a directed length constraint between two pins:
// time(to) - time(from) == Length. Links hold ids, never pins.
type MarkerLink struct {
	from   PinID
	to     PinID
	length TimeValue
}

// NewMarkerLink constructs a link. Identical endpoints are rejected here,
// at construction, so the solver never has to consider self-links.
func NewMarkerLink(from, to PinID, length TimeValue) (*MarkerLink, error) {
	if from == to {
		return nil, zerr.With(ErrSelfLink, "pin", uint64(from))
	}
	return &MarkerLink{from: from, to: to, length: length}, nil
}

// From returns the id of the pin the length is measured from.
func (l *MarkerLink) From() PinID {
	return l.from
}

// To returns the id of the pin the length is measured to.
func (l *MarkerLink) To() PinID {
	return l.to
}

// Length returns the constrained distance from From to To.
func (l *MarkerLink) Length() TimeValue {
	return l.length
}

// SetLength replaces the constrained distance.
func (l *MarkerLink) SetLength(length TimeValue) {
	l.length = length
}

// Flip swaps the link's direction. The length keeps its sign convention:
// after the flip the constraint reads time(old from) - time(old to) == Length.
func (l *MarkerLink) Flip() {
	l.from, l.to = l.to, l.from
}
