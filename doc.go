// Package hydronet links reservoirs to the critical points they can serve
// and answers two questions over the resulting networks: how to wire every
// site of a department with the least total length, and which reservoirs a
// critical point reaches first.
//
// What is inside:
//
//	• Geodesic distance: haversine on the WGS-84 mean radius, in km
//	• Graph builders: sparse proximity network, complete regional graph
//	• Union–Find with path compression and union by rank
//	• Minimum spanning forest: Kruskal with a step-by-step trace
//	• Shortest paths: Dijkstra with path reconstruction to reservoirs
//	• Views: JSON-ready snapshots and GeoJSON export
//
// Packages:
//
//	core/      - Point, Node, Edge and the undirected weighted Graph
//	geodesic/  - great-circle distance and orb conversions
//	builder/   - Proximity and CompleteRegion constructors
//	unionfind/ - disjoint sets over string IDs
//	kruskal/   - MST with MSTStep trace
//	dijkstra/  - single-source routing and coordinate lookup
//	snapshot/  - client views and GeoJSON
//	dataset/   - CSV loading and region normalization
//	planner/   - request orchestration over a loaded dataset
//	config/, logs/, server/, cmd/hydronet/ - the HTTP service
//
// Quick example, three sites of one department:
//
//	   R1 ─── C1
//	     \   /
//	      R2
//
//	g, ok, _ := builder.CompleteRegion(reservoirs, critical, "META")
//	res, _ := kruskal.Kruskal(g) // two edges added, one discarded
//
// Algorithm packages never log and never share state: every request builds
// its own graph from the immutable dataset.
package hydronet
