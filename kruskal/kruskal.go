// Package kruskal computes minimum spanning forests with Kruskal's algorithm
// and keeps every decision it makes as an auditable trace.
package kruskal

import (
	"sort"

	"github.com/katalvlaran/hydronet/core"
	"github.com/katalvlaran/hydronet/unionfind"
)

// Kruskal computes the minimum spanning forest of an undirected, weighted graph.
//
// A disconnected graph yields one tree per connected component; this is not
// an error. Every edge is considered, so the trace covers the whole edge set.
//
// Steps:
//  1. Validate: graph != nil.
//  2. Initialize a UnionFind over the node IDs (insertion order).
//  3. Sort a copy of the edges by ascending weight with a stable sort, so equal
//     weights keep their insertion order and the trace is reproducible.
//  4. For each edge (u,v): if Union(u,v) succeeds, append it to the forest and
//     record Added; otherwise record Discarded. Each step snapshots the forest.
//
// Complexity: O(E log E + E·α(V)) time for the forest, plus O(E·V) for the
// per-step snapshots. Memory: O(E·V) dominated by the trace.
func Kruskal(graph *core.Graph) (*Result, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}

	nodes := graph.NodeIDs()
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	uf := unionfind.New(nodes)
	res := &Result{
		Edges: make([]core.Edge, 0, max(len(nodes)-1, 0)),
		Steps: make([]Step, 0, len(edges)),
	}

	for i, e := range edges {
		verdict := Discarded
		if uf.Union(e.From, e.To) {
			verdict = Added
			res.Edges = append(res.Edges, e)
			res.TotalWeight += e.Weight
		}

		tree := make([]core.Edge, len(res.Edges))
		copy(tree, res.Edges)
		res.Steps = append(res.Steps, Step{Index: i, Edge: e, Verdict: verdict, Tree: tree})
	}
	res.Components = uf.Sets()

	return res, nil
}
