// Package dijkstra_test contains unit tests for the router: validation,
// scenario checks, and shortest-path properties on generated proximity graphs.
package dijkstra_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronet/builder"
	"github.com/katalvlaran/hydronet/core"
	"github.com/katalvlaran/hydronet/dijkstra"
)

func point(k core.Kind, id string, lat, lon float64) core.Point {
	return core.Point{ID: id, Kind: k, Latitude: lat, Longitude: lon, Region: "R"}
}

// scatter returns n points of kind k uniformly in [lat0, lat0+span]×[lon0, lon0+span].
func scatter(r *rand.Rand, k core.Kind, n int, lat0, lon0, span float64) []core.Point {
	ps := make([]core.Point, n)
	for i := range ps {
		ps[i] = point(k, strconv.Itoa(i+1), lat0+r.Float64()*span, lon0+r.Float64()*span)
	}

	return ps
}

// ------------------------------------------------------------------------
// 1. Validation and empty outcomes.
// ------------------------------------------------------------------------

func TestRoute_NilGraph(t *testing.T) {
	_, err := dijkstra.Route(nil, "critical:1")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestRoute_UnknownSourceIsEmpty(t *testing.T) {
	g, err := builder.Proximity(
		[]core.Point{point(core.KindReservoir, "1", 0, 0)},
		[]core.Point{point(core.KindCriticalPoint, "1", 0, 0.1)},
		100, 5)
	require.NoError(t, err)

	for _, src := range []string{"critical:404", "", "reservoir:1"} {
		res, err := dijkstra.Route(g, src)
		require.NoError(t, err, src)
		assert.True(t, res.Empty(), src)
		assert.Equal(t, src, res.Source)
		assert.Empty(t, res.Paths)
		assert.Empty(t, res.Reservoirs)
	}
}

func TestWithMaxDistance_Panics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

// ------------------------------------------------------------------------
// 2. Scenarios.
// ------------------------------------------------------------------------

// TestRoute_ThreeReservoirs: R1=(0,0), R2=(0,1), R3=(1,0), P=(0.5,0.5),
// cap 200 km, k=2. P links to R3 and R1; one-hop distances equal edge weights.
func TestRoute_ThreeReservoirs(t *testing.T) {
	res := []core.Point{
		point(core.KindReservoir, "R1", 0, 0),
		point(core.KindReservoir, "R2", 0, 1),
		point(core.KindReservoir, "R3", 1, 0),
	}
	crit := []core.Point{point(core.KindCriticalPoint, "P", 0.5, 0.5)}
	g, err := builder.Proximity(res, crit, 200, 2)
	require.NoError(t, err)

	out, err := dijkstra.Route(g, "critical:P")
	require.NoError(t, err)
	require.False(t, out.Empty())

	e3, err := g.EdgeBetween("critical:P", "reservoir:R3")
	require.NoError(t, err)
	e1, err := g.EdgeBetween("critical:P", "reservoir:R1")
	require.NoError(t, err)

	assert.Equal(t, 0.0, out.Distances["critical:P"])
	assert.Equal(t, e3.Weight, out.Distances["reservoir:R3"])
	assert.Equal(t, e1.Weight, out.Distances["reservoir:R1"])
	assert.NotContains(t, out.Distances, "reservoir:R2")

	assert.Equal(t, []string{"reservoir:R3", "reservoir:R1"}, out.Reservoirs)
	assert.Equal(t, []string{"critical:P", "reservoir:R3"}, out.NodePaths["reservoir:R3"])
	assert.Equal(t, []core.Coordinate{
		{Latitude: 0.5, Longitude: 0.5},
		{Latitude: 1, Longitude: 0},
	}, out.Paths["reservoir:R3"])
}

// TestRoute_MultiHop: critical points share reservoirs, so a reservoir linked
// only to Q is reached from P through R1 and Q.
func TestRoute_MultiHop(t *testing.T) {
	g := core.NewGraph()
	for _, n := range []core.Node{
		{ID: "P", Kind: core.KindCriticalPoint, Latitude: 0, Longitude: 0},
		{ID: "R1", Kind: core.KindReservoir, Latitude: 0, Longitude: 0.1},
		{ID: "Q", Kind: core.KindCriticalPoint, Latitude: 0, Longitude: 0.2},
		{ID: "R2", Kind: core.KindReservoir, Latitude: 0, Longitude: 0.3},
		{ID: "R3", Kind: core.KindReservoir, Latitude: 5, Longitude: 5},
	} {
		require.NoError(t, g.AddNode(n))
	}
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"P", "R1", 1}, {"R1", "Q", 2}, {"Q", "R2", 3}, {"P", "R2", 10}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	out, err := dijkstra.Route(g, "P")
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"P": 0, "R1": 1, "Q": 3, "R2": 6}, out.Distances)
	assert.Equal(t, []string{"P", "R1", "Q", "R2"}, out.NodePaths["R2"])
	assert.Equal(t, []string{"R1", "R2"}, out.Reservoirs)
	assert.NotContains(t, out.Paths, "R3") // isolated
	assert.NotContains(t, out.Paths, "Q")  // not a reservoir

	capped, err := dijkstra.Route(g, "P", dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"P": 0, "R1": 1, "Q": 3}, capped.Distances)
	assert.Equal(t, []string{"R1"}, capped.Reservoirs)
}

func TestRoute_EqualLengthPathsAreDeterministic(t *testing.T) {
	g := core.NewGraph()
	for _, n := range []core.Node{
		{ID: "P", Kind: core.KindCriticalPoint},
		{ID: "A", Kind: core.KindReservoir},
		{ID: "B", Kind: core.KindReservoir},
		{ID: "T", Kind: core.KindReservoir},
	} {
		require.NoError(t, g.AddNode(n))
	}
	_, _ = g.AddEdge("P", "A", 1)
	_, _ = g.AddEdge("P", "B", 1)
	_, _ = g.AddEdge("A", "T", 1)
	_, _ = g.AddEdge("B", "T", 1)

	first, err := dijkstra.Route(g, "P")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := dijkstra.Route(g, "P")
		require.NoError(t, err)
		assert.Equal(t, first.NodePaths, again.NodePaths)
	}
	assert.Equal(t, 2.0, first.Distances["T"])
	assert.Equal(t, []string{"P", "A", "T"}, first.NodePaths["T"])
}

// ------------------------------------------------------------------------
// 3. Properties on random proximity graphs.
// ------------------------------------------------------------------------

func TestRoute_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 25; trial++ {
		res := scatter(r, core.KindReservoir, 5+r.Intn(20), 4, -75, 2)
		crit := scatter(r, core.KindCriticalPoint, 3+r.Intn(15), 4, -75, 2)
		g, err := builder.Proximity(res, crit, 40+r.Float64()*120, 1+r.Intn(5))
		require.NoError(t, err)

		src := builder.NamespacedID(core.KindCriticalPoint, crit[r.Intn(len(crit))].ID)
		out, err := dijkstra.Route(g, src)
		require.NoError(t, err)

		// triangle inequality over every edge touching a reached node
		for _, e := range g.Edges() {
			du, okU := out.Distances[e.From]
			dv, okV := out.Distances[e.To]
			assert.Equal(t, okU, okV, "edge %s: reachability must agree across an edge", e.ID)
			if okU && okV {
				assert.LessOrEqual(t, dv, du+e.Weight+1e-9)
				assert.LessOrEqual(t, du, dv+e.Weight+1e-9)
			}
		}

		// path weights sum to the reported distance
		for _, rid := range out.Reservoirs {
			ids := out.NodePaths[rid]
			require.Equal(t, src, ids[0])
			require.Equal(t, rid, ids[len(ids)-1])
			require.Len(t, out.Paths[rid], len(ids))

			sum := 0.0
			for i := 1; i < len(ids); i++ {
				e, err := g.EdgeBetween(ids[i-1], ids[i])
				require.NoError(t, err)
				sum += e.Weight
			}
			assert.InDelta(t, out.Distances[rid], sum, 1e-9)
		}

		for i := 1; i < len(out.Reservoirs); i++ {
			assert.LessOrEqual(t, out.Distances[out.Reservoirs[i-1]], out.Distances[out.Reservoirs[i]])
		}
	}
}

// ------------------------------------------------------------------------
// 4. LocateCriticalPoint.
// ------------------------------------------------------------------------

func TestLocateCriticalPoint(t *testing.T) {
	g, err := builder.Proximity(
		[]core.Point{point(core.KindReservoir, "1", 4.6, -74.1)},
		[]core.Point{
			point(core.KindCriticalPoint, "7", 4.65, -74.05),
			point(core.KindCriticalPoint, "8", 5.0, -74.0),
		},
		100, 5)
	require.NoError(t, err)

	id, ok, err := dijkstra.LocateCriticalPoint(g, core.Coordinate{Latitude: 4.65, Longitude: -74.05}, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "critical:7", id)

	id, ok, err = dijkstra.LocateCriticalPoint(g, core.Coordinate{Latitude: 4.651, Longitude: -74.05}, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "critical:7", id)

	// the reservoir itself is never a match
	_, ok, err = dijkstra.LocateCriticalPoint(g, core.Coordinate{Latitude: 4.6, Longitude: -74.1}, 0.5)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = dijkstra.LocateCriticalPoint(g, core.Coordinate{}, -1)
	assert.ErrorIs(t, err, dijkstra.ErrBadTolerance)
	_, _, err = dijkstra.LocateCriticalPoint(g, core.Coordinate{Latitude: 100}, 1)
	assert.ErrorIs(t, err, core.ErrBadCoordinate)
	_, _, err = dijkstra.LocateCriticalPoint(nil, core.Coordinate{}, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestLocateCriticalPoint_Ambiguous(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: "a", Kind: core.KindCriticalPoint, Latitude: 0, Longitude: 0}))
	require.NoError(t, g.AddNode(core.Node{ID: "b", Kind: core.KindCriticalPoint, Latitude: 0, Longitude: 0}))

	_, ok, err := dijkstra.LocateCriticalPoint(g, core.Coordinate{}, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func BenchmarkRoute(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	res := scatter(r, core.KindReservoir, 300, 2, -77, 8)
	crit := scatter(r, core.KindCriticalPoint, 600, 2, -77, 8)
	g, err := builder.Proximity(res, crit, 100, 5)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Route(g, "critical:1"); err != nil {
			b.Fatal(err)
		}
	}
}
