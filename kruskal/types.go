package kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hydronet/core"
)

var (
	// ErrNilGraph indicates that Kruskal was called without a graph.
	ErrNilGraph = errors.New("kruskal: graph is nil")

	// ErrBadVerdict indicates a verdict text other than "added" or "discarded".
	ErrBadVerdict = errors.New("kruskal: unknown verdict")
)

// Verdict is the outcome of considering one edge.
type Verdict uint8

const (
	// Added means the edge joined two components and is part of the forest.
	Added Verdict = iota + 1

	// Discarded means both endpoints were already connected; the edge would close a cycle.
	Discarded
)

// String returns "added", "discarded" or "unknown".
func (v Verdict) String() string {
	switch v {
	case Added:
		return "added"
	case Discarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// MarshalText encodes the verdict as its String form.
func (v Verdict) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Verdict) UnmarshalText(text []byte) error {
	switch string(text) {
	case "added":
		*v = Added
	case "discarded":
		*v = Discarded
	default:
		return fmt.Errorf("%w: %q", ErrBadVerdict, text)
	}

	return nil
}

// Step records one decision of the algorithm.
//
// Tree is the spanning forest immediately after the decision. It is a copy
// owned by the Step; later steps never mutate it.
type Step struct {
	// Index is the 0-based position of the step in the trace.
	Index int

	// Edge is the edge considered, as stored in the input graph.
	Edge core.Edge

	Verdict Verdict

	Tree []core.Edge
}

// Weight returns the weight of the considered edge.
func (s Step) Weight() float64 { return s.Edge.Weight }

// Description renders the step as one human-readable sentence, e.g.
//
//	Considering edge reservoir:1 - critical:4 with weight 12.34 km. No cycle; edge added to the MST.
func (s Step) Description() string {
	head := fmt.Sprintf("Considering edge %s - %s with weight %.2f km.", s.Edge.From, s.Edge.To, s.Edge.Weight)
	if s.Verdict == Added {
		return head + " No cycle; edge added to the MST."
	}

	return head + " Forms a cycle; edge discarded."
}

// Result is the minimum spanning forest of a graph and the trace that built it.
type Result struct {
	// Edges holds the forest edges in the order they were added.
	Edges []core.Edge

	// TotalWeight is the sum of Edges' weights in kilometres.
	TotalWeight float64

	// Components is the number of trees in the forest: |V| - len(Edges).
	Components int

	// Steps holds one entry per input edge, in processing order.
	Steps []Step
}

// Spanning reports whether the forest is a single tree covering every node.
// A graph with no nodes has no spanning tree.
func (r *Result) Spanning() bool { return r.Components == 1 }

// Discarded returns the number of edges rejected as cycle-forming.
func (r *Result) Discarded() int { return len(r.Steps) - len(r.Edges) }
