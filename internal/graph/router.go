package graph

import (
	"container/heap"
	"fmt"
)

// FindPath returns the cheapest route from one system to another under the
// given rule, using Dijkstra with a lazy decrease-key binary heap.
//
// Unknown endpoints fail with ErrUnknownSystem before any search runs; a
// known but unreachable destination fails with ErrNoRoute. When from == to
// the result is a single-system path and the rule is never consulted.
//
// Ties are broken deterministically: among frontier entries of equal
// accumulated cost the smaller system id is expanded first, and only a
// strict improvement replaces a node's best-known distance and predecessor.
// Repeated calls with the same inputs therefore return the same path.
func FindPath(g Navigatable, from, to SystemID, rule Rule) (Path, error) {
	src, ok := g.GetSystem(from)
	if !ok {
		return nil, fmt.Errorf("find path: source %d: %w", from, ErrUnknownSystem)
	}
	if _, ok := g.GetSystem(to); !ok {
		return nil, fmt.Errorf("find path: destination %d: %w", to, ErrUnknownSystem)
	}
	if from == to {
		return Path{*src}, nil
	}

	dist := map[SystemID]float64{from: 0}
	prev := make(map[SystemID]SystemID)

	pq := &routeQueue{{system: from, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(routeItem)
		if item.system == to {
			return assemblePath(g, from, to, prev), nil
		}
		if d, ok := dist[item.system]; ok && item.cost > d {
			continue // stale heap entry
		}
		cur, ok := g.GetSystem(item.system)
		if !ok {
			continue
		}
		for _, conn := range g.Connections(item.system) {
			next, ok := g.GetSystem(conn.To)
			if !ok {
				continue
			}
			cost, admissible := rule.Apply(cur, next, &conn)
			if !admissible {
				continue
			}
			nd := item.cost + cost
			if d, seen := dist[conn.To]; !seen || nd < d {
				dist[conn.To] = nd
				prev[conn.To] = item.system
				heap.Push(pq, routeItem{system: conn.To, cost: nd})
			}
		}
	}
	return nil, fmt.Errorf("find path: %d -> %d: %w", from, to, ErrNoRoute)
}

func assemblePath(g Navigatable, from, to SystemID, prev map[SystemID]SystemID) Path {
	var ids []SystemID
	for at := to; ; at = prev[at] {
		ids = append(ids, at)
		if at == from {
			break
		}
	}
	path := make(Path, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		s, _ := g.GetSystem(ids[i])
		path = append(path, *s)
	}
	return path
}

// Priority queue for FindPath. Ordered by accumulated cost, then system id
// so equal-cost expansion order is reproducible.
type routeItem struct {
	system SystemID
	cost   float64
}

type routeQueue []routeItem

func (pq routeQueue) Len() int { return len(pq) }
func (pq routeQueue) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].system < pq[j].system
}
func (pq routeQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *routeQueue) Push(x interface{}) { *pq = append(*pq, x.(routeItem)) }
func (pq *routeQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
