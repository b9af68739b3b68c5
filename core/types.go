// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Point/Node/Edge/Graph declarations, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node or point has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that a node with the same ID is already in the arena.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadKind indicates a point or node whose Kind is not a known facility kind.
	ErrBadKind = errors.New("core: unknown point kind")

	// ErrBadCoordinate indicates a non-finite or out-of-range latitude/longitude.
	ErrBadCoordinate = errors.New("core: invalid coordinate")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: invalid edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same unordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Kind classifies a Point as one of the two facility kinds.
type Kind uint8

const (
	// KindUnknown is the zero value and never valid in a graph.
	KindUnknown Kind = iota

	// KindReservoir marks a water-storage facility.
	KindReservoir

	// KindCriticalPoint marks a location that needs assessment relative to reservoirs.
	KindCriticalPoint
)

const (
	kindReservoirName     = "reservoir"
	kindCriticalPointName = "critical_point"
	kindUnknownName       = "unknown"
)

// String returns the stable textual form used in snapshots and JSON.
func (k Kind) String() string {
	switch k {
	case KindReservoir:
		return kindReservoirName
	case KindCriticalPoint:
		return kindCriticalPointName
	default:
		return kindUnknownName
	}
}

// Valid reports whether k is one of the two facility kinds.
func (k Kind) Valid() bool { return k == KindReservoir || k == KindCriticalPoint }

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case kindReservoirName:
		*k = KindReservoir
	case kindCriticalPointName:
		*k = KindCriticalPoint
	default:
		return fmt.Errorf("%w: %q", ErrBadKind, text)
	}

	return nil
}

// Coordinate is a geographic position in decimal degrees (WGS 84).
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Validate returns ErrBadCoordinate unless both values are finite and in range.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) ||
		math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return fmt.Errorf("%w: (%v, %v) is not finite", ErrBadCoordinate, c.Latitude, c.Longitude)
	}
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: (%v, %v) out of range", ErrBadCoordinate, c.Latitude, c.Longitude)
	}

	return nil
}

// Point is an immutable, geolocated facility record handed to the core by a loader.
//
// ID is unique within its Kind only; graphs that mix kinds namespace it.
// Region is expected to be already case-normalized by the loader.
type Point struct {
	ID        string
	Kind      Kind
	Latitude  float64
	Longitude float64
	Label     string
	Region    string
}

// Coordinate returns the point's position.
func (p Point) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// Validate checks the input contract of a Point: non-empty ID, known Kind and a
// finite in-range coordinate.
func (p Point) Validate() error {
	if p.ID == "" {
		return ErrEmptyNodeID
	}
	if !p.Kind.Valid() {
		return fmt.Errorf("point %q: %w", p.ID, ErrBadKind)
	}
	if err := p.Coordinate().Validate(); err != nil {
		return fmt.Errorf("point %q: %w", p.ID, err)
	}

	return nil
}

// Node is a Point projected into one Graph under a graph-local ID.
// Nodes are stored by value; no two graphs ever share a Node.
type Node struct {
	// ID is unique within its Graph.
	ID string

	// PointID is the identifier of the originating Point within its Kind.
	PointID string

	Kind      Kind
	Latitude  float64
	Longitude float64
	Label     string
	Region    string
}

// NodeFromPoint projects p into a graph under the given node ID.
func NodeFromPoint(id string, p Point) Node {
	return Node{
		ID:        id,
		PointID:   p.ID,
		Kind:      p.Kind,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Label:     p.Label,
		Region:    p.Region,
	}
}

// Coordinate returns the node's position.
func (n Node) Coordinate() Coordinate {
	return Coordinate{Latitude: n.Latitude, Longitude: n.Longitude}
}

// Edge is an undirected, weighted connection between two distinct nodes.
type Edge struct {
	// ID is "e1", "e2", ... in insertion order.
	ID string

	// From and To are the endpoint node IDs, in the order given to AddEdge.
	From string
	To   string

	// Weight is the geodesic length of the edge in kilometres.
	Weight float64
}

// Other returns the endpoint opposite to id, or "" when id is not an endpoint.
func (e Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// pairKey is the order-independent identity of an edge's endpoints.
type pairKey struct{ lo, hi string }

func newPairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// Graph is an undirected, simple, weighted graph over an insertion-ordered node arena.
//
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	index map[string]int // node ID → position in nodes
	nodes []Node         // arena, insertion order

	edges []Edge           // insertion order; edges[i].ID == "e<i+1>"
	pairs map[pairKey]int  // unordered endpoint pair → position in edges
	adj   map[string][]int // node ID → positions in edges, insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
		pairs: make(map[pairKey]int),
		adj:   make(map[string][]int),
	}
}
