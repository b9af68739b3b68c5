// Package dijkstra implements single-source shortest paths over hydronet
// graphs, with path reconstruction to every reachable reservoir.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - Weights are kilometres and non-negative by construction (core rejects
//     negative weights), so no pre-scan is needed.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
//   - Heap ties are broken by push order so that path choice among equal-length
//     alternatives is reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/hydronet/core"
)

// Route computes shortest distances from sourceID to every reachable node of
// g and reconstructs the path to every reachable reservoir.
//
// The source must be a critical-point node. An unknown ID, or one that names
// a reservoir, is not an error: the result is empty (see RouteResult.Empty).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. sourceID must name a critical-point node (else empty result).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Route(g *core.Graph, sourceID string, opts ...Option) (*RouteResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	src, ok := g.Node(sourceID)
	if !ok || src.Kind != core.KindCriticalPoint {
		return emptyResult(sourceID), nil
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
		visited: make(map[string]bool),
		pq:      make(nodePQ, 0, g.NodeCount()),
	}
	r.init(sourceID)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(sourceID), nil
}

// runner holds the mutable state for a single Route execution.
type runner struct {
	g       *core.Graph        // read-only within Route
	options Options            // resolved options
	dist    map[string]float64 // node ID → best known distance (reached nodes only)
	prev    map[string]string  // node ID → predecessor on the shortest path
	visited map[string]bool    // finalized nodes
	pq      nodePQ             // min-heap, lazy decrease-key
	seq     int                // push counter for deterministic heap ties
}

// init sets the source distance to zero and seeds the heap.
func (r *runner) init(source string) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)
}

// process repeatedly extracts the closest unvisited node and relaxes its edges.
// It stops when the heap is empty or the closest entry exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distances of u's neighbors through u.
// Only strictly shorter paths replace a predecessor.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, e := range edges {
		v := e.Other(u)
		if r.visited[v] {
			continue
		}
		nd := du + e.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[v]; seen && nd >= old {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}

	return nil
}

func (r *runner) push(id string, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// result keeps finalized nodes only and materializes reservoir paths.
func (r *runner) result(source string) *RouteResult {
	res := emptyResult(source)
	for _, n := range r.g.Nodes() {
		if !r.visited[n.ID] {
			continue
		}
		res.Distances[n.ID] = r.dist[n.ID]
		if n.Kind != core.KindReservoir {
			continue
		}

		ids := r.path(source, n.ID)
		coords := make([]core.Coordinate, len(ids))
		for i, id := range ids {
			node, _ := r.g.Node(id)
			coords[i] = node.Coordinate()
		}
		res.NodePaths[n.ID] = ids
		res.Paths[n.ID] = coords
		res.Reservoirs = append(res.Reservoirs, n.ID)
	}
	sort.SliceStable(res.Reservoirs, func(i, j int) bool {
		return res.Distances[res.Reservoirs[i]] < res.Distances[res.Reservoirs[j]]
	})

	return res
}

// path walks predecessors from target back to source and returns the IDs in
// source-to-target order.
func (r *runner) path(source, target string) []string {
	var rev []string
	for at := target; ; at = r.prev[at] {
		rev = append(rev, at)
		if at == source {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// nodeItem is a heap entry: a node and a tentative distance.
type nodeItem struct {
	id   string
	dist float64
	seq  int // push order
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then seq.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
