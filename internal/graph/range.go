package graph

import (
	"fmt"
	"sort"
)

// Reachable is one hit of a hop-bounded range query: a system and the jump
// count at which the search first reached it.
type Reachable struct {
	System System
	Jumps  int
}

// SystemsWithinJumps returns every system reachable from origin within
// maxJumps admissible jumps, origin included at jump 0. The rule's cost is
// ignored here; only its accept/reject half matters, so a jump either counts
// as one hop or is not taken at all.
//
// Results are ordered by jump count, then ascending system id within a jump.
func SystemsWithinJumps(g Navigatable, origin SystemID, maxJumps int, rule Rule) ([]Reachable, error) {
	start, ok := g.GetSystem(origin)
	if !ok {
		return nil, fmt.Errorf("systems within jumps: origin %d: %w", origin, ErrUnknownSystem)
	}

	visited := map[SystemID]int{origin: 0}
	out := []Reachable{{System: *start, Jumps: 0}}

	frontier := []SystemID{origin}
	for jumps := 1; jumps <= maxJumps && len(frontier) > 0; jumps++ {
		var next []SystemID
		for _, id := range frontier {
			cur, ok := g.GetSystem(id)
			if !ok {
				continue
			}
			for _, conn := range g.Connections(id) {
				if _, seen := visited[conn.To]; seen {
					continue
				}
				to, ok := g.GetSystem(conn.To)
				if !ok {
					continue
				}
				if _, admissible := rule.Apply(cur, to, &conn); !admissible {
					continue
				}
				visited[conn.To] = jumps
				next = append(next, conn.To)
				out = append(out, Reachable{System: *to, Jumps: jumps})
			}
		}
		sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
		frontier = next
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Jumps != out[j].Jumps {
			return out[i].Jumps < out[j].Jumps
		}
		return out[i].System.ID < out[j].System.ID
	})
	return out, nil
}

// Unit scales raw dump coordinates (meters) to the unit a distance threshold
// is expressed in.
type Unit float64

const (
	Meters     Unit = 1
	LightYears Unit = MetersPerLightYear
)

// SystemsWithinRange returns every system whose straight-line distance from
// origin is at most maxDistance, expressed in the given unit. The query is
// purely spatial: graph connectivity plays no part, so two systems with no
// gate between them can still be in range of each other.
//
// The scan is O(V) over all systems, which is fine at universe scale
// (tens of thousands); callers with tight loops can cache results.
// Results are ordered by distance, then ascending system id.
func SystemsWithinRange(g Navigatable, origin Coordinate, maxDistance float64, unit Unit) []System {
	type hit struct {
		system System
		dist   float64
	}
	var hits []hit
	for _, s := range g.Systems() {
		d := origin.DistanceMeters(s.Coordinate) / float64(unit)
		if d <= maxDistance {
			hits = append(hits, hit{system: s, dist: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].system.ID < hits[j].system.ID
	})
	out := make([]System, len(hits))
	for i, h := range hits {
		out[i] = h.system
	}
	return out
}
