package types

import "container/heap"

// routeItem is a heap entry: tag with its tentative cost. seq breaks cost
// ties by discovery order so equal-cost routes resolve identically every run.
type routeItem struct {
	tag  Tag
	cost int64
	seq  int
}

type routeQueue []routeItem

func (q routeQueue) Len() int { return len(q) }
func (q routeQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].seq < q[j].seq
}
func (q routeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *routeQueue) Push(x any)   { *q = append(*q, x.(routeItem)) }
func (q *routeQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}

// shortestRoutes runs Dijkstra from src over edges and returns the cheapest
// route to every reachable tag other than src.
//
// Notes on implementation choices:
//   - Lazy decrease-key: stale heap entries are skipped on pop.
//   - A tag's route is replaced only by a strictly cheaper one, so among
//     equal-cost routes the one that reaches the tag first keeps it. That
//     is not always the first-declared one: a direct edge found while
//     scanning src beats an equal-cost chain through a later-popped tag.
//   - Edges are scanned in declaration order and heap ties pop in
//     discovery order, so the outcome is identical on every run.
func shortestRoutes(src Tag, edges []Conversion) map[Tag]*Route {
	// 1) Adjacency in declaration order
	var adj [tagCount][]Conversion
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e)
	}

	// 2) Distances and predecessor edges
	const unreached = int64(-1)
	var dist [tagCount]int64
	var prev [tagCount]*Conversion
	for i := range dist {
		dist[i] = unreached
	}
	dist[src] = 0

	// 3) Main loop
	seq := 0
	q := &routeQueue{{tag: src, cost: 0, seq: seq}}
	var done [tagCount]bool
	for q.Len() > 0 {
		it := heap.Pop(q).(routeItem)
		if done[it.tag] || it.cost != dist[it.tag] {
			continue // stale entry
		}
		done[it.tag] = true

		for i := range adj[it.tag] {
			e := adj[it.tag][i]
			nd := it.cost + e.Cost
			if dist[e.To] == unreached || nd < dist[e.To] {
				dist[e.To] = nd
				prev[e.To] = &adj[it.tag][i]
				seq++
				heap.Push(q, routeItem{tag: e.To, cost: nd, seq: seq})
			}
		}
	}

	// 4) Rebuild each route by walking predecessors back to src
	out := make(map[Tag]*Route)
	for dst := Boolean; dst < tagCount; dst++ {
		if dst == src || dist[dst] == unreached {
			continue
		}
		var steps []Conversion
		for at := dst; at != src; at = prev[at].From {
			steps = append(steps, *prev[at])
		}
		for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
			steps[i], steps[j] = steps[j], steps[i]
		}
		out[dst] = &Route{From: src, To: dst, Cost: dist[dst], Steps: steps}
	}

	return out
}
