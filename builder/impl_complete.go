// SPDX-License-Identifier: MIT
// Package: hydronet/builder
//
// impl_complete.go - implementation of the RegionComplete constructor.
//
// Contract:
//   • region must be non-blank (else ErrEmptyRegion).
//   • Every point is validated and must sit in the matching set (else ErrKindMismatch).
//   • Keeps points whose Region equals region case-insensitively (surrounding
//     blanks ignored).
//   • Fewer than two kept points ⇒ ErrInsufficientNodes and no nodes are added.
//   • Adds kept reservoirs (input order), then kept critical points (input order).
//   • Emits each unordered pair {i,j}, i<j in node order, weighted by geodesic distance.
//
// Complexity:
//   • Time: O(R + P) filtering + O(n²) edges for n kept points.
//   • Space: O(n) for the kept IDs.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hydronet/core"
	"github.com/katalvlaran/hydronet/geodesic"
)

const (
	methodRegionComplete = "RegionComplete"
	minRegionNodes       = 2
)

// RegionComplete returns a Constructor that builds the complete graph over the
// reservoirs and critical points of one region.
func RegionComplete(reservoirs, critical []core.Point, region string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		want := strings.TrimSpace(region)
		if want == "" {
			return fmt.Errorf("%s: %w", methodRegionComplete, ErrEmptyRegion)
		}
		if err := validatePoints(methodRegionComplete, core.KindReservoir, reservoirs); err != nil {
			return err
		}
		if err := validatePoints(methodRegionComplete, core.KindCriticalPoint, critical); err != nil {
			return err
		}

		kept := append(inRegion(reservoirs, want), inRegion(critical, want)...)
		if len(kept) < minRegionNodes {
			return fmt.Errorf("%s: region %q has %d node(s), need %d: %w",
				methodRegionComplete, want, len(kept), minRegionNodes, ErrInsufficientNodes)
		}

		ids, err := addPointNodes(methodRegionComplete, g, cfg, kept)
		if err != nil {
			return err
		}

		for i := 0; i < len(kept); i++ {
			for j := i + 1; j < len(kept); j++ {
				w := geodesic.Distance(kept[i], kept[j])
				if _, err = g.AddEdge(ids[i], ids[j], w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%v): %w", methodRegionComplete, ids[i], ids[j], w, err)
				}
			}
		}

		return nil
	}
}

// inRegion filters ps by region, preserving order. The result never aliases ps.
func inRegion(ps []core.Point, region string) []core.Point {
	out := make([]core.Point, 0, len(ps))
	for _, p := range ps {
		if strings.EqualFold(strings.TrimSpace(p.Region), region) {
			out = append(out, p)
		}
	}

	return out
}
