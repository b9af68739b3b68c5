package snapshot_test

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronet/builder"
	"github.com/katalvlaran/hydronet/core"
	"github.com/katalvlaran/hydronet/dijkstra"
	"github.com/katalvlaran/hydronet/kruskal"
	"github.com/katalvlaran/hydronet/snapshot"
)

func fixture(t *testing.T) *core.Graph {
	t.Helper()

	g, err := builder.Proximity(
		[]core.Point{
			{ID: "1", Kind: core.KindReservoir, Latitude: 4.60, Longitude: -74.10, Label: "Chuza", Region: "CUNDINAMARCA"},
			{ID: "2", Kind: core.KindReservoir, Latitude: 4.80, Longitude: -73.90, Label: "Tominé", Region: "CUNDINAMARCA"},
		},
		[]core.Point{
			{ID: "1", Kind: core.KindCriticalPoint, Latitude: 4.70, Longitude: -74.00, Label: "Hospital", Region: "CUNDINAMARCA"},
		},
		100, 5)
	require.NoError(t, err)

	return g
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, snapshot.Round2(12.345000001))
	assert.Equal(t, 12.34, snapshot.Round2(12.3449))
	assert.Equal(t, 0.0, snapshot.Round2(0.004))
}

func TestFromGraph(t *testing.T) {
	g := fixture(t)
	v := snapshot.FromGraph(g)

	require.Len(t, v.Nodes, 3)
	require.Len(t, v.Edges, 2)
	assert.Equal(t, "reservoir:1", v.Nodes[0].ID)
	assert.Equal(t, "1", v.Nodes[0].PointID)
	assert.Equal(t, core.KindCriticalPoint, v.Nodes[2].Kind)

	e := v.Edges[0]
	raw := g.Edges()[0]
	assert.Equal(t, raw.From, e.SourceID)
	assert.Equal(t, raw.To, e.TargetID)
	assert.Equal(t, snapshot.Round2(raw.Weight), e.WeightKm)
	assert.Equal(t, "Hospital", e.SourceLabel)
	assert.Equal(t, core.Coordinate{Latitude: 4.70, Longitude: -74.00}, e.Source)
}

func TestFromGraph_JSONShape(t *testing.T) {
	b, err := json.Marshal(snapshot.FromGraph(fixture(t)))
	require.NoError(t, err)

	var doc struct {
		Nodes []map[string]any `json:"nodes"`
		Edges []map[string]any `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "reservoir", doc.Nodes[0]["kind"])
	assert.Equal(t, "critical_point", doc.Nodes[2]["kind"])
	for _, key := range []string{"source_id", "target_id", "weight_km", "source", "target", "source_label", "target_label"} {
		assert.Contains(t, doc.Edges[0], key)
	}
}

func TestFromTrace(t *testing.T) {
	g, ok, err := builder.CompleteRegion(
		[]core.Point{
			{ID: "1", Kind: core.KindReservoir, Latitude: 0, Longitude: 0, Region: "X"},
			{ID: "2", Kind: core.KindReservoir, Latitude: 0, Longitude: 1, Region: "X"},
		},
		[]core.Point{{ID: "1", Kind: core.KindCriticalPoint, Latitude: 1, Longitude: 0, Region: "X"}},
		"X")
	require.NoError(t, err)
	require.True(t, ok)
	res, err := kruskal.Kruskal(g)
	require.NoError(t, err)

	v := snapshot.FromTrace(g, res)
	require.Len(t, v.Steps, 3)
	assert.Len(t, v.MST, 2)
	assert.Equal(t, 1, v.Components)
	assert.Equal(t, snapshot.Round2(res.TotalWeight), v.TotalWeightKm)
	for i, s := range v.Steps {
		assert.Equal(t, i, s.Index)
		assert.Len(t, s.MSTSoFar, len(res.Steps[i].Tree))
		assert.Equal(t, res.Steps[i].Description(), s.Description)
	}
	assert.Equal(t, kruskal.Discarded, v.Steps[2].Verdict)

	b, err := json.Marshal(v.Steps[2])
	require.NoError(t, err)
	assert.Contains(t, string(b), `"verdict":"discarded"`)
	assert.Contains(t, string(b), `"mst_so_far":[`)
}

func TestFromRoute(t *testing.T) {
	g := fixture(t)
	res, err := dijkstra.Route(g, "critical:1")
	require.NoError(t, err)

	v := snapshot.FromRoute(g, res)
	assert.True(t, v.Found)
	assert.Equal(t, "critical:1", v.Source)
	require.Len(t, v.Reservoirs, 2)
	assert.Len(t, v.Distances, 3)
	for _, r := range v.Reservoirs {
		assert.Equal(t, snapshot.Round2(res.Distances[r.ID]), r.DistanceKm)
		assert.Equal(t, []string{"critical:1", r.ID}, r.Hops)
		assert.Len(t, r.Path, 2)
		assert.NotEmpty(t, r.Label)
	}

	empty, err := dijkstra.Route(g, "critical:9")
	require.NoError(t, err)
	ev := snapshot.FromRoute(g, empty)
	assert.False(t, ev.Found)
	assert.Empty(t, ev.Reservoirs)
}

func TestGeoJSON(t *testing.T) {
	g := fixture(t)
	route, err := dijkstra.Route(g, "critical:1")
	require.NoError(t, err)

	fc := snapshot.GeoJSON(g, route)
	require.Len(t, fc.Features, 3+2+2)

	roles := map[string]int{}
	for _, f := range fc.Features {
		roles[f.Properties.MustString("role")]++
	}
	assert.Equal(t, map[string]int{snapshot.RoleNode: 3, snapshot.RoleEdge: 2, snapshot.RoleRoute: 2}, roles)

	p, ok := fc.Features[0].Geometry.(orb.Point)
	require.True(t, ok)
	assert.Equal(t, orb.Point{-74.10, 4.60}, p)
	assert.Equal(t, 0.0, fc.Features[2].Properties.MustFloat64("distance_km"))

	assert.Equal(t, geojson.BBox{-74.10, 4.60, -73.90, 4.80}, fc.BBox)

	b, err := fc.MarshalJSON()
	require.NoError(t, err)
	back, err := geojson.UnmarshalFeatureCollection(b)
	require.NoError(t, err)
	assert.Len(t, back.Features, len(fc.Features))
}

func TestGeoJSON_GraphOnly(t *testing.T) {
	fc := snapshot.GeoJSON(fixture(t), nil)
	assert.Len(t, fc.Features, 5)

	empty := snapshot.GeoJSON(core.NewGraph(), nil)
	assert.Empty(t, empty.Features)
	assert.Nil(t, empty.BBox)
}
