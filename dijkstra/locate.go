package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydronet/core"
	"github.com/katalvlaran/hydronet/geodesic"
)

// LocateCriticalPoint resolves a coordinate to the ID of the critical-point
// node nearest to it, provided that node lies within toleranceKm.
//
// It returns ok=false when no critical point is within tolerance, or when two
// different critical points are equally nearest: the coordinate must resolve
// to exactly one node.
//
// Complexity: O(V).
func LocateCriticalPoint(g *core.Graph, at core.Coordinate, toleranceKm float64) (string, bool, error) {
	if g == nil {
		return "", false, ErrNilGraph
	}
	if math.IsNaN(toleranceKm) || toleranceKm < 0 {
		return "", false, fmt.Errorf("LocateCriticalPoint(tol=%v): %w", toleranceKm, ErrBadTolerance)
	}
	if err := at.Validate(); err != nil {
		return "", false, fmt.Errorf("LocateCriticalPoint: %w", err)
	}

	var (
		best      string
		bestDist  = math.Inf(1)
		ambiguous bool
	)
	for _, n := range g.Nodes() {
		if n.Kind != core.KindCriticalPoint {
			continue
		}
		d := geodesic.Between(at, n.Coordinate())
		switch {
		case d > toleranceKm:
		case d < bestDist:
			best, bestDist, ambiguous = n.ID, d, false
		case d == bestDist:
			ambiguous = true
		}
	}
	if best == "" || ambiguous {
		return "", false, nil
	}

	return best, true, nil
}
