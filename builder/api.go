// SPDX-License-Identifier: MIT
// Package: hydronet/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   • Proximity and CompleteRegion are thin wrappers over BuildGraph for the
//     two network shapes; constructors live in impl_*.go.
//   • Determinism: same inputs, options and constructor order ⇒ identical graphs.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hydronet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts and applies all constructors in order. The first constructor
// error is wrapped with "BuildGraph: %w" and returned; the partial graph is
// discarded.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Proximity builds the sparse reservoir/critical-point graph described by
// ProximityEdges.
func Proximity(
	reservoirs, critical []core.Point,
	maxDistanceKm float64,
	maxNeighbors int,
	opts ...BuilderOption,
) (*core.Graph, error) {
	return BuildGraph(opts, ProximityEdges(reservoirs, critical, maxDistanceKm, maxNeighbors))
}

// CompleteRegion builds the complete graph over the records of one region.
//
// Fewer than two matching records is an expected outcome, not a failure: the
// result is (nil, false, nil). Any other problem (blank region, invalid
// point) is returned as an error with ok=false.
func CompleteRegion(reservoirs, critical []core.Point, region string, opts ...BuilderOption) (*core.Graph, bool, error) {
	g, err := BuildGraph(opts, RegionComplete(reservoirs, critical, region))
	switch {
	case errors.Is(err, ErrInsufficientNodes):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}

	return g, true, nil
}
