// File: methods_nodes.go
// Role: Node arena lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodeIDs() return insertion order.
//
// Concurrency:
//   - AddNode under the write lock; queries under the read lock.

package core

import "fmt"

// AddNode appends n to the arena.
//
// Implementation:
//   - Stage 1: Validate ID, Kind and coordinate.
//   - Stage 2: Under the write lock, reject duplicates, then append and index.
//
// Errors:
//   - ErrEmptyNodeID, ErrBadKind, ErrBadCoordinate: input-contract violations.
//   - ErrDuplicateNode: a node with n.ID already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if !n.Kind.Valid() {
		return fmt.Errorf("AddNode(%s): %w", n.ID, ErrBadKind)
	}
	if err := n.Coordinate().Validate(); err != nil {
		return fmt.Errorf("AddNode(%s): %w", n.ID, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[n.ID]; exists {
		return fmt.Errorf("AddNode(%s): %w", n.ID, ErrDuplicateNode)
	}
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.adj[n.ID] = nil

	return nil
}

// HasNode reports whether id is in the arena (empty ID ⇒ false).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]

	return ok
}

// Node returns a copy of the node stored under id.
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// Nodes returns a copy of the arena in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeIDs returns node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.nodes[i].ID
	}

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[id]; !ok {
		return 0, fmt.Errorf("Degree(%s): %w", id, ErrNodeNotFound)
	}

	return len(g.adj[id]), nil
}
