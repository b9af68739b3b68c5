package core_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/hydronet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_TextRoundTrip(t *testing.T) {
	for _, k := range []core.Kind{core.KindReservoir, core.KindCriticalPoint} {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var back core.Kind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}

	var k core.Kind
	assert.ErrorIs(t, k.UnmarshalText([]byte("lake")), core.ErrBadKind)
	assert.Equal(t, "unknown", core.KindUnknown.String())
	assert.False(t, core.KindUnknown.Valid())
}

func TestKind_JSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		Kind core.Kind `json:"kind"`
	}{Kind: core.KindCriticalPoint})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"critical_point"}`, string(raw))
}

func TestCoordinate_Validate(t *testing.T) {
	tests := []struct {
		name string
		c    core.Coordinate
		ok   bool
	}{
		{"origin", core.Coordinate{}, true},
		{"poles", core.Coordinate{Latitude: 90, Longitude: -180}, true},
		{"lima", core.Coordinate{Latitude: -12.0464, Longitude: -77.0428}, true},
		{"nan latitude", core.Coordinate{Latitude: math.NaN()}, false},
		{"inf longitude", core.Coordinate{Longitude: math.Inf(1)}, false},
		{"latitude too big", core.Coordinate{Latitude: 90.5}, false},
		{"longitude too small", core.Coordinate{Longitude: -180.01}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, core.ErrBadCoordinate)
			}
		})
	}
}

func TestPoint_Validate(t *testing.T) {
	good := core.Point{ID: "7", Kind: core.KindReservoir, Latitude: -13.5, Longitude: -71.9}
	assert.NoError(t, good.Validate())

	noID := good
	noID.ID = ""
	assert.ErrorIs(t, noID.Validate(), core.ErrEmptyNodeID)

	noKind := good
	noKind.Kind = core.KindUnknown
	assert.ErrorIs(t, noKind.Validate(), core.ErrBadKind)

	badCoord := good
	badCoord.Latitude = math.NaN()
	assert.ErrorIs(t, badCoord.Validate(), core.ErrBadCoordinate)
}

func TestNodeFromPoint(t *testing.T) {
	p := core.Point{ID: "12", Kind: core.KindCriticalPoint, Latitude: 1, Longitude: 2, Label: "Sector 12", Region: "CUSCO"}
	n := core.NodeFromPoint("critical:12", p)

	assert.Equal(t, "critical:12", n.ID)
	assert.Equal(t, "12", n.PointID)
	assert.Equal(t, core.KindCriticalPoint, n.Kind)
	assert.Equal(t, p.Coordinate(), n.Coordinate())
	assert.Equal(t, "Sector 12", n.Label)
	assert.Equal(t, "CUSCO", n.Region)
}

func TestEdge_Other(t *testing.T) {
	e := core.Edge{ID: "e1", From: NodeA, To: NodeB, Weight: Weight1}
	assert.Equal(t, NodeB, e.Other(NodeA))
	assert.Equal(t, NodeA, e.Other(NodeB))
	assert.Empty(t, e.Other(NodeC))
}
