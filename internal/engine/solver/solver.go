// Package solver resolves concrete timeline times for marker pins from the
// pairwise length constraints expressed by marker links.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/zerr"
)

// Solver groups transitively-linked pins and propagates consistent
// timestamps across each group.
//
// Anchor rule: within a group the anchor is the locked pin with the lowest
// id if any pin is locked, otherwise the unlocked pin with the lowest id.
// The anchor keeps its locked (or previously cached) time and every other
// pin is placed relative to it. Conflicts are detected with exact
// fixed-point equality; there is no tolerance window.
type Solver struct{}

// New creates a Solver.
func New() *Solver {
	return &Solver{}
}

type edge struct {
	to     int
	length domain.TimeValue
}

// Solve assigns a resolved time to every pin such that for every link with
// length L, time(to) - time(from) == L, or reports a conflict.
//
// Groups are independent: a conflicting group commits nothing (none of its
// pin times change), while every consistent group commits fully. Errors
// from all failing groups are joined. Solving an already-consistent graph
// is a no-op.
func (s *Solver) Solve(pins []*domain.MarkerPin, links []*domain.MarkerLink) error {
	index := make(map[domain.PinID]int, len(pins))
	for i, p := range pins {
		index[p.ID()] = i
	}

	uf := newUnionFind(len(pins))
	adj := make([][]edge, len(pins))

	for _, l := range links {
		from, ok := index[l.From()]
		if !ok {
			return zerr.With(domain.ErrUnknownPin, "pin", uint64(l.From()))
		}
		to, ok := index[l.To()]
		if !ok {
			return zerr.With(domain.ErrUnknownPin, "pin", uint64(l.To()))
		}
		back, err := l.Length().Neg()
		if err != nil {
			return zerr.With(zerr.With(err, "link_from", uint64(l.From())), "link_to", uint64(l.To()))
		}
		uf.union(from, to)
		adj[from] = append(adj[from], edge{to: to, length: l.Length()})
		adj[to] = append(adj[to], edge{to: from, length: back})
	}

	groups := make(map[int][]int)
	for i := range pins {
		root := uf.find(i)
		groups[root] = append(groups[root], i)
	}

	var errs error
	for _, members := range groups {
		if err := s.solveGroup(pins, adj, members); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// solveGroup propagates times across one connected group via breadth-first
// traversal from the anchor, staging assignments and committing them only
// if the whole group is consistent.
func (s *Solver) solveGroup(pins []*domain.MarkerPin, adj [][]edge, members []int) error {
	anchor := pickAnchor(pins, members)

	anchorTime := pins[anchor].CachedTime()
	if locked, ok := pins[anchor].LockedTime(); ok {
		anchorTime = locked.Value()
	}

	staged := make(map[int]domain.TimeValue, len(members))
	parent := make(map[int]int, len(members))
	staged[anchor] = anchorTime

	queue := []int{anchor}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range adj[cur] {
			next, err := staged[cur].Add(e.length)
			if err != nil {
				return zerr.With(err, "pin", uint64(pins[e.to].ID()))
			}
			if have, seen := staged[e.to]; seen {
				if have != next {
					return conflictError(pins, anchor, cur, e.to, have, next, parent)
				}
				continue
			}
			staged[e.to] = next
			parent[e.to] = cur
			queue = append(queue, e.to)
		}
	}

	// Non-anchor locked pins act as additional constraints.
	for _, i := range members {
		locked, ok := pins[i].LockedTime()
		if !ok || i == anchor {
			continue
		}
		if staged[i] != locked.Value() {
			return zerr.With(zerr.With(zerr.With(zerr.With(domain.ErrConstraintConflict,
				"pin", uint64(pins[i].ID())),
				"locked_time", locked.Value().String()),
				"propagated_time", staged[i].String()),
				"path", pathString(pins, anchor, i, parent),
			)
		}
	}

	// All-or-nothing commit per group.
	for i, t := range staged {
		pins[i].CacheTime(t)
	}
	return nil
}

// pickAnchor prefers the lowest-id locked pin, then the lowest-id pin.
func pickAnchor(pins []*domain.MarkerPin, members []int) int {
	anchor := -1
	anchorLocked := false
	for _, i := range members {
		_, locked := pins[i].LockedTime()
		switch {
		case anchor < 0:
			anchor, anchorLocked = i, locked
		case locked && !anchorLocked:
			anchor, anchorLocked = i, true
		case locked == anchorLocked && pins[i].ID() < pins[anchor].ID():
			anchor = i
		}
	}
	return anchor
}

func conflictError(pins []*domain.MarkerPin, anchor, cur, target int, have, next domain.TimeValue, parent map[int]int) error {
	pathA := pathString(pins, anchor, target, parent)
	pathB := pathString(pins, anchor, cur, parent) + fmt.Sprintf(" -> %d", uint64(pins[target].ID()))
	return zerr.With(zerr.With(zerr.With(zerr.With(zerr.With(zerr.With(domain.ErrConstraintConflict,
		"group_anchor", uint64(pins[anchor].ID())),
		"pin", uint64(pins[target].ID())),
		"time_a", have.String()),
		"time_b", next.String()),
		"path_a", pathA),
		"path_b", pathB,
	)
}

// pathString renders the discovered anchor-to-pin path as "1 -> 4 -> 7".
func pathString(pins []*domain.MarkerPin, anchor, target int, parent map[int]int) string {
	var rev []int
	for i := target; i != anchor; i = parent[i] {
		rev = append(rev, i)
	}
	rev = append(rev, anchor)

	var b strings.Builder
	for i := len(rev) - 1; i >= 0; i-- {
		if b.Len() > 0 {
			b.WriteString(" -> ")
		}
		fmt.Fprintf(&b, "%d", uint64(pins[rev[i]].ID()))
	}
	return b.String()
}

// unionFind is a disjoint-set forest with path compression, as used by the
// grouping pass. Union by lower index keeps grouping order-independent.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}
	return root
}

func (u *unionFind) union(x, y int) {
	x, y = u.find(x), u.find(y)
	if x == y {
		return
	}
	if y < x {
		x, y = y, x
	}
	u.parent[y] = x
}
