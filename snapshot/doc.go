// Package snapshot turns graphs, MST traces and routes into plain,
// JSON-ready views for a presentation layer, and renders them as GeoJSON.
//
// Views copy everything they need out of the graph; they never alias graph
// internals and stay valid after the graph is discarded. Weights and
// distances in views are rounded to two decimals for display; the
// algorithms themselves always work on full precision.
package snapshot
