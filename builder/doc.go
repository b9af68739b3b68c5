// Package builder turns normalized facility records into weighted core.Graph
// values.
//
// Two constructors cover the network shapes the planner needs:
//
//   - ProximityEdges links every critical point to at most k of its nearest
//     reservoirs within a distance cap. All reservoirs become nodes, connected
//     or not; a critical point with no reservoir in range is an isolated node.
//   - RegionComplete keeps the reservoirs and critical points of one region and
//     joins every pair of them, the input Kruskal needs to guarantee minimality.
//
// Constructors are closures of type Constructor and are applied in order by
// BuildGraph, so several of them can be composed into one graph. Proximity and
// CompleteRegion are the one-call wrappers most callers want.
//
// Node IDs are produced by an IDFn so that reservoir and critical-point
// identifiers, unique only within their own kind, never collide inside one
// graph. The default scheme is NamespacedID ("reservoir:7", "critical:7").
//
// Edge weights are geodesic.Distance in kilometres. Edge emission order is
// deterministic and documented per constructor; downstream Kruskal tie-breaks
// depend on it.
//
// Errors: parameter and record violations return the sentinels in errors.go
// (or core sentinels for bad points), wrapped with the constructor name.
// Option constructors panic on meaningless values; constructors never panic.
package builder
