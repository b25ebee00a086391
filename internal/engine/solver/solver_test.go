package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/engine/solver"
)

func secs(t *testing.T, s int64) domain.TimeValue {
	t.Helper()
	v, err := domain.TimeFromSeconds(s)
	require.NoError(t, err)
	return v
}

func lockedPin(t *testing.T, s int64) *domain.MarkerPin {
	t.Helper()
	mt, err := domain.NewMarkerTime(secs(t, s))
	require.NoError(t, err)
	return domain.NewMarkerPin(mt)
}

func link(t *testing.T, from, to *domain.MarkerPin, length int64) *domain.MarkerLink {
	t.Helper()
	l, err := domain.NewMarkerLink(from.ID(), to.ID(), secs(t, length))
	require.NoError(t, err)
	return l
}

func TestSolve_Chain(t *testing.T) {
	a := lockedPin(t, 2)
	b := domain.NewUnlockedMarkerPin()
	c := domain.NewUnlockedMarkerPin()

	s := solver.New()
	err := s.Solve(
		[]*domain.MarkerPin{a, b, c},
		[]*domain.MarkerLink{link(t, a, b, 5), link(t, b, c, 3)},
	)
	require.NoError(t, err)

	assert.Equal(t, secs(t, 2), a.CachedTime())
	assert.Equal(t, secs(t, 7), b.CachedTime())
	assert.Equal(t, secs(t, 10), c.CachedTime())
}

func TestSolve_ConsistentCycle(t *testing.T) {
	a := lockedPin(t, 0)
	b := domain.NewUnlockedMarkerPin()
	c := domain.NewUnlockedMarkerPin()

	// A->B 5, B->C 3, A->C 8 agree on C.
	s := solver.New()
	err := s.Solve(
		[]*domain.MarkerPin{a, b, c},
		[]*domain.MarkerLink{
			link(t, a, b, 5),
			link(t, b, c, 3),
			link(t, a, c, 8),
		},
	)
	require.NoError(t, err)

	assert.Equal(t, secs(t, 5), b.CachedTime())
	assert.Equal(t, secs(t, 8), c.CachedTime())
}

func TestSolve_InconsistentCycle_NoPartialUpdate(t *testing.T) {
	a := lockedPin(t, 0)
	b := domain.NewUnlockedMarkerPin()
	c := domain.NewUnlockedMarkerPin()
	b.CacheTime(secs(t, 99))
	c.CacheTime(secs(t, 99))

	s := solver.New()
	err := s.Solve(
		[]*domain.MarkerPin{a, b, c},
		[]*domain.MarkerLink{
			link(t, a, b, 5),
			link(t, b, c, 3),
			link(t, a, c, 9),
		},
	)
	require.ErrorIs(t, err, domain.ErrConstraintConflict)

	// The failing group commits nothing.
	assert.Equal(t, secs(t, 99), b.CachedTime())
	assert.Equal(t, secs(t, 99), c.CachedTime())
}

func TestSolve_DisagreeingLockedPins(t *testing.T) {
	a := lockedPin(t, 0)
	b := lockedPin(t, 4)

	s := solver.New()
	err := s.Solve(
		[]*domain.MarkerPin{a, b},
		[]*domain.MarkerLink{link(t, a, b, 5)},
	)
	require.ErrorIs(t, err, domain.ErrConstraintConflict)

	assert.True(t, b.CachedTime() != secs(t, 5))
}

func TestSolve_IndependentGroups(t *testing.T) {
	a := lockedPin(t, 0)
	b := domain.NewUnlockedMarkerPin()
	c := domain.NewUnlockedMarkerPin()
	d := lockedPin(t, 10)
	e := domain.NewUnlockedMarkerPin()
	e.CacheTime(secs(t, 99))

	s := solver.New()
	err := s.Solve(
		[]*domain.MarkerPin{a, b, c, d, e},
		[]*domain.MarkerLink{
			// Group one is contradictory.
			link(t, a, b, 5),
			link(t, a, b, 6),
			// Group two is fine.
			link(t, d, e, 2),
			// Pin c stays a singleton.
		},
	)
	require.ErrorIs(t, err, domain.ErrConstraintConflict)

	// The healthy group still commits.
	assert.Equal(t, secs(t, 12), e.CachedTime())
	// Singletons keep their anchor time.
	assert.Equal(t, domain.TimeZero, c.CachedTime())
}

func TestSolve_Idempotent(t *testing.T) {
	a := lockedPin(t, 1)
	b := domain.NewUnlockedMarkerPin()

	s := solver.New()
	pins := []*domain.MarkerPin{a, b}
	links := []*domain.MarkerLink{link(t, a, b, 5)}

	require.NoError(t, s.Solve(pins, links))
	first := b.CachedTime()
	require.NoError(t, s.Solve(pins, links))
	assert.Equal(t, first, b.CachedTime())
}

func TestSolve_LinkOrderIndependent(t *testing.T) {
	mk := func(t *testing.T, reversed bool) domain.TimeValue {
		a := lockedPin(t, 0)
		b := domain.NewUnlockedMarkerPin()
		c := domain.NewUnlockedMarkerPin()
		links := []*domain.MarkerLink{link(t, a, b, 5), link(t, b, c, 3)}
		if reversed {
			links[0], links[1] = links[1], links[0]
		}
		require.NoError(t, solver.New().Solve([]*domain.MarkerPin{a, b, c}, links))
		return c.CachedTime()
	}

	assert.Equal(t, mk(t, false), mk(t, true))
}

func TestSolve_FlippedLink(t *testing.T) {
	a := lockedPin(t, 10)
	b := domain.NewUnlockedMarkerPin()

	l := link(t, a, b, 4)
	l.Flip()

	// After flipping, b -> a with length 4, so b sits before a.
	require.NoError(t, solver.New().Solve([]*domain.MarkerPin{a, b}, []*domain.MarkerLink{l}))
	assert.Equal(t, secs(t, 6), b.CachedTime())
}

func TestSolve_UnknownPin(t *testing.T) {
	a := lockedPin(t, 0)
	stray := domain.NewUnlockedMarkerPin()

	l, err := domain.NewMarkerLink(a.ID(), stray.ID(), secs(t, 1))
	require.NoError(t, err)

	err = solver.New().Solve([]*domain.MarkerPin{a}, []*domain.MarkerLink{l})
	require.ErrorIs(t, err, domain.ErrUnknownPin)
}

func TestSolve_UnlockedAnchorKeepsCachedTime(t *testing.T) {
	a := domain.NewUnlockedMarkerPin()
	b := domain.NewUnlockedMarkerPin()
	a.CacheTime(secs(t, 3))

	require.NoError(t, solver.New().Solve(
		[]*domain.MarkerPin{a, b},
		[]*domain.MarkerLink{link(t, a, b, 2)},
	))
	assert.Equal(t, secs(t, 3), a.CachedTime())
	assert.Equal(t, secs(t, 5), b.CachedTime())
}
