package graph

import (
	"fmt"
	"sort"
)

// Universe holds the full set of solar systems and the adjacency list of
// their connections. It is built once from loaded data and never mutated
// afterwards, so a single instance can serve any number of concurrent
// queries without locking. Temporary connections (wormholes being scouted,
// what-if routes) go through ExtendedUniverse instead.
type Universe struct {
	systems []System // sorted by id
	index   map[SystemID]int
	adj     map[SystemID][]Connection
}

// NewUniverse validates and indexes the given systems and connections.
// It fails on a duplicate system id or a connection endpoint that matches no
// system; callers never receive a partially built universe. Stargate links
// are canonicalized to be bidirectional: if the input carries a→b but not
// b→a, the reverse direction is inserted.
func NewUniverse(systems []System, connections []Connection) (*Universe, error) {
	u := &Universe{
		systems: make([]System, 0, len(systems)),
		index:   make(map[SystemID]int, len(systems)),
		adj:     make(map[SystemID][]Connection, len(systems)),
	}

	for _, s := range systems {
		if _, exists := u.index[s.ID]; exists {
			return nil, fmt.Errorf("system %d (%s): %w", s.ID, s.Name, ErrDuplicateSystem)
		}
		u.systems = append(u.systems, s)
		u.index[s.ID] = len(u.systems) - 1
	}
	sort.Slice(u.systems, func(i, j int) bool { return u.systems[i].ID < u.systems[j].ID })
	for i, s := range u.systems {
		u.index[s.ID] = i
	}

	// Track stargate pairs so the reciprocity pass below only inserts
	// directions genuinely missing from the input.
	type pair struct{ from, to SystemID }
	gates := make(map[pair]bool)

	for _, c := range connections {
		if _, ok := u.index[c.From]; !ok {
			return nil, fmt.Errorf("connection %d->%d: from: %w", c.From, c.To, ErrDanglingConnection)
		}
		if _, ok := u.index[c.To]; !ok {
			return nil, fmt.Errorf("connection %d->%d: to: %w", c.From, c.To, ErrDanglingConnection)
		}
		u.adj[c.From] = append(u.adj[c.From], c)
		if c.Kind == Stargate {
			gates[pair{c.From, c.To}] = true
		}
	}

	for _, c := range connections {
		if c.Kind != Stargate {
			continue
		}
		if !gates[pair{c.To, c.From}] {
			rev := c.reversed()
			u.adj[rev.From] = append(u.adj[rev.From], rev)
			gates[pair{rev.From, rev.To}] = true
		}
	}

	return u, nil
}

// GetSystem returns the system with the given id.
func (u *Universe) GetSystem(id SystemID) (*System, bool) {
	i, ok := u.index[id]
	if !ok {
		return nil, false
	}
	return &u.systems[i], true
}

// Connections returns the outgoing connections of a system. The slice is
// shared with the universe and must not be modified.
func (u *Universe) Connections(id SystemID) []Connection {
	return u.adj[id]
}

// Systems returns all systems in ascending id order. The slice is shared
// with the universe and must not be modified.
func (u *Universe) Systems() []System {
	return u.systems
}

// SystemCount returns the number of systems in the universe.
func (u *Universe) SystemCount() int {
	return len(u.systems)
}

// ConnectionCount returns the number of directed connections, reverse
// stargate directions included.
func (u *Universe) ConnectionCount() int {
	n := 0
	for _, conns := range u.adj {
		n += len(conns)
	}
	return n
}
