// Package dijkstra routes from a critical point to every reservoir reachable
// over a proximity graph.
//
// Route returns the shortest distance to every reached node and, for each
// reached reservoir, the path as node IDs and as coordinates. Routing is by
// node ID; LocateCriticalPoint turns a coordinate into a node ID for callers
// that only know where the point is.
//
// Example:
//
//	g, _ := builder.Proximity(reservoirs, critical, 100, 5)
//	res, err := dijkstra.Route(g, "critical:17")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, r := range res.Reservoirs {
//		fmt.Printf("%s %.2f km via %v\n", r, res.Distances[r], res.NodePaths[r])
//	}
package dijkstra
