package graph

import "fmt"

// ExtendedUniverse layers temporary connections on top of a base universe
// without touching it. The typical use is adding scouted wormholes for a
// single pathfinding session and throwing the overlay away afterwards.
//
// The base is only ever read. An ExtendedUniverse itself is not safe for
// concurrent mutation and reads; build it first, then query it.
type ExtendedUniverse struct {
	base    Navigatable
	added   map[SystemID][]Connection
	removed map[[2]SystemID]bool
}

// Extend wraps base in an overlay with no extra connections.
func Extend(base Navigatable) *ExtendedUniverse {
	return &ExtendedUniverse{
		base:    base,
		added:   make(map[SystemID][]Connection),
		removed: make(map[[2]SystemID]bool),
	}
}

// ExtendWith wraps base and adds the given connections. It fails on the
// first connection whose endpoints are unknown to the base.
func ExtendWith(base Navigatable, connections []Connection) (*ExtendedUniverse, error) {
	x := Extend(base)
	for _, c := range connections {
		if err := x.AddConnection(c); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// AddConnection adds a single directed connection to the overlay. Both
// endpoints must exist in the base universe; the overlay never introduces
// systems, only links between existing ones.
func (x *ExtendedUniverse) AddConnection(c Connection) error {
	if _, ok := x.base.GetSystem(c.From); !ok {
		return fmt.Errorf("add connection %d->%d: from: %w", c.From, c.To, ErrUnknownSystem)
	}
	if _, ok := x.base.GetSystem(c.To); !ok {
		return fmt.Errorf("add connection %d->%d: to: %w", c.From, c.To, ErrUnknownSystem)
	}
	x.added[c.From] = append(x.added[c.From], c)
	return nil
}

// RemoveConnection masks every connection from one system to another, base
// and overlay additions alike. Masking a pair that has no connection is a
// no-op.
func (x *ExtendedUniverse) RemoveConnection(from, to SystemID) {
	x.removed[[2]SystemID{from, to}] = true
}

// GetSystem defers to the base universe.
func (x *ExtendedUniverse) GetSystem(id SystemID) (*System, bool) {
	return x.base.GetSystem(id)
}

// Connections returns the base connections plus overlay additions, minus
// removals. The returned slice is freshly allocated when the overlay
// modifies the set, so callers may not rely on identity with the base slice.
func (x *ExtendedUniverse) Connections(id SystemID) []Connection {
	base := x.base.Connections(id)
	extra := x.added[id]
	if len(extra) == 0 && len(x.removed) == 0 {
		return base
	}
	out := make([]Connection, 0, len(base)+len(extra))
	for _, c := range base {
		if !x.removed[[2]SystemID{c.From, c.To}] {
			out = append(out, c)
		}
	}
	for _, c := range extra {
		if !x.removed[[2]SystemID{c.From, c.To}] {
			out = append(out, c)
		}
	}
	return out
}

// Systems defers to the base universe: overlays add connections, never
// systems.
func (x *ExtendedUniverse) Systems() []System {
	return x.base.Systems()
}
