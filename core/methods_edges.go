// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/Edges/EdgeCount/Neighbors.
//
// Determinism:
//   - Edges() and Neighbors() return insertion order.
//   - Edge IDs are "e1", "e2", ... in insertion order.
//
// Concurrency:
//   - AddEdge under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"math"
	"strconv"
)

// edgeIDPrefix keeps IDs human-readable: "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge joins two existing, distinct nodes with an undirected edge of weight w.
//
// Steps:
//  1. Validate IDs and weight (finite, ≥ 0).
//  2. Reject self-loops.
//  3. Under the write lock, require both endpoints and reject a second edge
//     for the same unordered pair.
//  4. Append the edge and index it from both endpoints.
//
// Errors: ErrEmptyNodeID, ErrBadWeight, ErrLoopNotAllowed, ErrNodeNotFound,
// ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, w float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return "", fmt.Errorf("AddEdge(%s→%s, w=%v): %w", from, to, w, ErrBadWeight)
	}
	if from == to {
		return "", fmt.Errorf("AddEdge(%s→%s): %w", from, to, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[from]; !ok {
		return "", fmt.Errorf("AddEdge(%s→%s): %s: %w", from, to, from, ErrNodeNotFound)
	}
	if _, ok := g.index[to]; !ok {
		return "", fmt.Errorf("AddEdge(%s→%s): %s: %w", from, to, to, ErrNodeNotFound)
	}
	key := newPairKey(from, to)
	if _, dup := g.pairs[key]; dup {
		return "", fmt.Errorf("AddEdge(%s→%s): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	pos := len(g.edges)
	eid := nextEdgeID(pos)
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to, Weight: w})
	g.pairs[key] = pos
	g.adj[from] = append(g.adj[from], pos)
	g.adj[to] = append(g.adj[to], pos)

	return eid, nil
}

// HasEdge reports whether an edge joins a and b (in either order).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.pairs[newPairKey(a, b)]

	return ok
}

// EdgeBetween returns the edge joining a and b (in either order).
func (g *Graph) EdgeBetween(a, b string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos, ok := g.pairs[newPairKey(a, b)]
	if !ok {
		return Edge{}, fmt.Errorf("EdgeBetween(%s, %s): %w", a, b, ErrEdgeNotFound)
	}

	return g.edges[pos], nil
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges incident to id in insertion order.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(d).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[id]; !ok {
		return nil, fmt.Errorf("Neighbors(%s): %w", id, ErrNodeNotFound)
	}
	positions := g.adj[id]
	out := make([]Edge, len(positions))
	for i, pos := range positions {
		out[i] = g.edges[pos]
	}

	return out, nil
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum float64
	for i := range g.edges {
		sum += g.edges[i].Weight
	}

	return sum
}

// nextEdgeID renders the ID of the edge stored at position pos without fmt.
func nextEdgeID(pos int) string {
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendInt(buf, int64(pos+1), 10)

	return string(buf)
}
