// Package core defines the Point, Node, Edge and Graph types shared by every
// hydronet algorithm.
//
// A Graph G = (V,E) here is always undirected, simple and weighted:
//
//   - Nodes live in an insertion-ordered arena keyed by a graph-local string ID.
//   - Edges are stored once, in insertion order, and referenced from a per-node
//     adjacency index. Edges carry endpoint IDs only; endpoints are resolved
//     through the arena, never through back-pointers.
//   - Weights are non-negative, finite kilometres.
//   - Self-loops and parallel edges between the same unordered pair are rejected.
//
// Determinism:
//
//	Nodes(), Edges() and Neighbors() return insertion order. Every algorithm in
//	this module relies on that order for reproducible tie-breaking.
//
// Concurrency:
//
//	A single sync.RWMutex guards the arena, the edge list and the adjacency
//	index. Graphs are cheap, request-local values; the lock only makes
//	concurrent readers safe, it is not a coordination mechanism.
//
// Errors:
//
//	ErrEmptyNodeID          - node ID is the empty string.
//	ErrDuplicateNode        - a node with the same ID already exists.
//	ErrNodeNotFound         - requested node does not exist.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrBadKind              - point kind is neither reservoir nor critical point.
//	ErrBadCoordinate        - latitude/longitude is non-finite or out of range.
//	ErrBadWeight            - edge weight is negative, NaN or infinite.
//	ErrLoopNotAllowed       - both edge endpoints are the same node.
//	ErrMultiEdgeNotAllowed  - an edge already joins the same unordered pair.
package core
