// SPDX-License-Identifier: MIT
// Package: hydronet/builder
//
// impl_proximity.go - implementation of the ProximityEdges constructor.
//
// Contract:
//   • maxDistanceKm finite and > 0 (else ErrBadMaxDistance);
//     maxNeighbors ≥ 1 (else ErrBadMaxNeighbors).
//   • Every point is validated; reservoirs must be KindReservoir and critical
//     points KindCriticalPoint (else ErrKindMismatch).
//   • Adds all reservoir nodes (input order), then all critical nodes (input order).
//   • For each critical point: distance to every reservoir, keep d ≤ maxDistanceKm,
//     stable sort ascending (equal distances keep reservoir input order),
//     keep the first maxNeighbors, one edge per survivor weighted by d.
//   • Critical points with no survivor stay isolated.
//
// Complexity:
//   • Time: O(P·R·log R) for P critical points and R reservoirs.
//   • Space: O(P·min(R, k)) for the ranked candidates.
//
// Determinism:
//   • Edges are emitted by critical point in input order, then by rank.
//   • The ranking of each critical point is independent of all others, so it is
//     computed by up to cfg.workers goroutines without changing the result.

package builder

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hydronet/core"
	"github.com/katalvlaran/hydronet/geodesic"
)

const methodProximity = "ProximityEdges"

// candidate is one reservoir within range of a critical point.
type candidate struct {
	reservoir int // index into the reservoir slice
	distance  float64
}

// ProximityEdges returns a Constructor linking each critical point to at most
// maxNeighbors of its nearest reservoirs within maxDistanceKm.
func ProximityEdges(reservoirs, critical []core.Point, maxDistanceKm float64, maxNeighbors int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMaxDistance(methodProximity, maxDistanceKm); err != nil {
			return err
		}
		if err := validateMaxNeighbors(methodProximity, maxNeighbors); err != nil {
			return err
		}
		if err := validatePoints(methodProximity, core.KindReservoir, reservoirs); err != nil {
			return err
		}
		if err := validatePoints(methodProximity, core.KindCriticalPoint, critical); err != nil {
			return err
		}

		resIDs, err := addPointNodes(methodProximity, g, cfg, reservoirs)
		if err != nil {
			return err
		}
		critIDs, err := addPointNodes(methodProximity, g, cfg, critical)
		if err != nil {
			return err
		}

		ranked, err := rankReservoirs(reservoirs, critical, maxDistanceKm, maxNeighbors, cfg.workers)
		if err != nil {
			return fmt.Errorf("%s: %w", methodProximity, err)
		}

		for i, cands := range ranked {
			for _, c := range cands {
				u, v := critIDs[i], resIDs[c.reservoir]
				if _, err = g.AddEdge(u, v, c.distance); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%v): %w", methodProximity, u, v, c.distance, err)
				}
			}
		}

		return nil
	}
}

// rankReservoirs returns, per critical point, its nearest in-range reservoirs.
// Each goroutine owns one slot of the result; nothing else is shared.
func rankReservoirs(
	reservoirs, critical []core.Point,
	maxDistanceKm float64,
	maxNeighbors, workers int,
) ([][]candidate, error) {
	ranked := make([][]candidate, len(critical))

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := range critical {
		eg.Go(func() error {
			ranked[i] = nearest(critical[i], reservoirs, maxDistanceKm, maxNeighbors)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return ranked, nil
}

// nearest ranks reservoirs by distance to p and applies the cap and limit.
func nearest(p core.Point, reservoirs []core.Point, maxDistanceKm float64, maxNeighbors int) []candidate {
	cands := make([]candidate, 0, len(reservoirs))
	for j := range reservoirs {
		d := geodesic.Distance(p, reservoirs[j])
		if d <= maxDistanceKm {
			cands = append(cands, candidate{reservoir: j, distance: d})
		}
	}
	sort.SliceStable(cands, func(a, b int) bool {
		return cands[a].distance < cands[b].distance
	})
	if len(cands) > maxNeighbors {
		cands = cands[:maxNeighbors]
	}

	return cands
}
