// Package kruskal builds minimum spanning forests over hydronet graphs.
//
// Kruskal returns the forest edges, their total weight, the number of trees
// and an ordered trace of Steps. The trace is data: every considered edge,
// its verdict (Added or Discarded) and a copy of the forest after the
// decision, ready to be rendered or replayed by a presentation layer.
//
// Determinism: edges are ordered by weight with ties broken by their
// insertion order in the graph, so equal inputs produce identical traces.
//
// Example:
//
//	g, ok, err := builder.CompleteRegion(reservoirs, critical, "META")
//	if err != nil || !ok {
//		// handle
//	}
//	res, err := kruskal.Kruskal(g)
//	for _, s := range res.Steps {
//		fmt.Println(s.Description())
//	}
package kruskal
