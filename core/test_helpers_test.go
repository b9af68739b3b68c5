// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for hydronet/core.

package core_test

import (
	"testing"

	"github.com/katalvlaran/hydronet/core"
	"github.com/stretchr/testify/require"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
)

// Common weights used across core tests.
const (
	Weight0 = 0.0
	Weight1 = 1.5
	Weight2 = 2.25
	Weight3 = 3.0
)

// reservoirNode returns a reservoir node at (lat, lon) with the given ID.
func reservoirNode(id string, lat, lon float64) core.Node {
	return core.Node{ID: id, PointID: id, Kind: core.KindReservoir, Latitude: lat, Longitude: lon, Label: "R " + id}
}

// criticalNode returns a critical-point node at (lat, lon) with the given ID.
func criticalNode(id string, lat, lon float64) core.Node {
	return core.Node{ID: id, PointID: id, Kind: core.KindCriticalPoint, Latitude: lat, Longitude: lon, Label: "P " + id}
}

// mustSquare builds A,B,C,D with edges A–B, B–C, C–D and returns the graph.
func mustSquare(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	require.NoError(t, g.AddNode(reservoirNode(NodeA, 0, 0)))
	require.NoError(t, g.AddNode(reservoirNode(NodeB, 0, 1)))
	require.NoError(t, g.AddNode(criticalNode(NodeC, 1, 1)))
	require.NoError(t, g.AddNode(criticalNode(NodeD, 1, 0)))

	_, err := g.AddEdge(NodeA, NodeB, Weight1)
	require.NoError(t, err)
	_, err = g.AddEdge(NodeB, NodeC, Weight2)
	require.NoError(t, err)
	_, err = g.AddEdge(NodeC, NodeD, Weight3)
	require.NoError(t, err)

	return g
}
