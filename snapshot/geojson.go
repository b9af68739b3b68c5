package snapshot

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/hydronet/core"
	"github.com/katalvlaran/hydronet/dijkstra"
	"github.com/katalvlaran/hydronet/geodesic"
)

// Feature roles, stored in the "role" property.
const (
	RoleNode  = "node"
	RoleEdge  = "edge"
	RoleRoute = "route"
)

// GeoJSON renders g as a FeatureCollection: one Point feature per node, one
// LineString per edge and, when route is non-nil, one LineString per
// reservoir path. The collection's bbox covers every node.
//
// Features appear in node, edge, route order; within each group they follow
// graph insertion order (routes: ascending distance).
func GeoJSON(g *core.Graph, route *dijkstra.RouteResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	nodes := g.Nodes()
	coords := make([]core.Coordinate, len(nodes))
	for i, n := range nodes {
		coords[i] = n.Coordinate()

		f := geojson.NewFeature(geodesic.ToOrb(n.Coordinate()))
		f.ID = n.ID
		f.Properties["role"] = RoleNode
		f.Properties["kind"] = n.Kind.String()
		f.Properties["label"] = n.Label
		if n.Region != "" {
			f.Properties["region"] = n.Region
		}
		if route != nil {
			if d, ok := route.Distances[n.ID]; ok {
				f.Properties["distance_km"] = Round2(d)
			}
		}
		fc.Append(f)
	}

	for _, e := range g.Edges() {
		from, _ := g.Node(e.From)
		to, _ := g.Node(e.To)

		f := geojson.NewFeature(orb.LineString{geodesic.ToOrb(from.Coordinate()), geodesic.ToOrb(to.Coordinate())})
		f.ID = e.ID
		f.Properties["role"] = RoleEdge
		f.Properties["source_id"] = e.From
		f.Properties["target_id"] = e.To
		f.Properties["weight_km"] = Round2(e.Weight)
		fc.Append(f)
	}

	if route != nil {
		for _, id := range route.Reservoirs {
			path := route.Paths[id]
			ls := make(orb.LineString, len(path))
			for i, c := range path {
				ls[i] = geodesic.ToOrb(c)
			}

			f := geojson.NewFeature(ls)
			f.Properties["role"] = RoleRoute
			f.Properties["source_id"] = route.Source
			f.Properties["target_id"] = id
			f.Properties["distance_km"] = Round2(route.Distances[id])
			fc.Append(f)
		}
	}

	if len(coords) > 0 {
		fc.BBox = geojson.NewBBox(geodesic.Bound(coords))
	}

	return fc
}
