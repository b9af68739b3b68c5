// Package dijkstra defines the result types and configuration options of the
// single-source router.
//
// Options:
//
//	– MaxDistance: optional cap in kilometres; nodes farther than this from the
//	  source are left unreached. Default +Inf (explore everything reachable).
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrBadMaxDistance if MaxDistance is negative or NaN (panics in WithMaxDistance).
//	– ErrBadTolerance   if LocateCriticalPoint gets a negative or NaN tolerance.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/hydronet/core"
)

// Sentinel errors returned by the router.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates a negative or NaN distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadTolerance indicates a negative or NaN lookup tolerance.
	ErrBadTolerance = errors.New("dijkstra: tolerance must be non-negative")
)

// Options configures Route.
type Options struct {
	MaxDistance float64 // kilometres; +Inf means no cap
}

// Option represents a functional option for configuring Route.
type Option func(*Options)

// WithMaxDistance caps exploration at km kilometres from the source.
// Panics on a negative or NaN value.
func WithMaxDistance(km float64) Option {
	if math.IsNaN(km) || km < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = km
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// RouteResult holds shortest distances and reservoir paths from one source.
//
// A zero-value-like result (no distances) means the source did not resolve to
// a critical-point node; see Empty.
type RouteResult struct {
	// Source is the requested source node ID.
	Source string

	// Distances maps every reached node ID, the source included, to its
	// shortest distance in kilometres. Unreached nodes are absent.
	Distances map[string]float64

	// Paths maps each reached reservoir node ID to the coordinates of the
	// nodes along the shortest path, source first, reservoir last.
	Paths map[string][]core.Coordinate

	// NodePaths is Paths expressed as node IDs.
	NodePaths map[string][]string

	// Reservoirs lists the reached reservoir node IDs by ascending distance,
	// ties in graph insertion order.
	Reservoirs []string
}

// Empty reports whether the source did not resolve to any node.
func (r *RouteResult) Empty() bool { return len(r.Distances) == 0 }

// emptyResult is the "source not found" outcome.
func emptyResult(source string) *RouteResult {
	return &RouteResult{
		Source:     source,
		Distances:  map[string]float64{},
		Paths:      map[string][]core.Coordinate{},
		NodePaths:  map[string][]string{},
		Reservoirs: []string{},
	}
}
