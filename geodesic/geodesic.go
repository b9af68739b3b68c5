// Package geodesic computes great-circle distances between geolocated points.
//
// Distances use the haversine formula from github.com/paulmach/orb/geo on a
// sphere of radius orb.EarthRadius and are reported in kilometres. The
// function is pure: symmetric, exactly zero for identical coordinates and
// monotonically increasing with angular separation.
//
// Non-finite coordinates are a precondition violation and are not checked
// here; builders validate points before calling into this package.
package geodesic

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/katalvlaran/hydronet/core"
)

// metersPerKilometer converts orb's metre-based results.
const metersPerKilometer = 1000.0

// Distance returns the great-circle distance between a and b in kilometres.
// Complexity: O(1).
func Distance(a, b core.Point) float64 {
	return Between(a.Coordinate(), b.Coordinate())
}

// Between returns the great-circle distance between two coordinates in kilometres.
func Between(a, b core.Coordinate) float64 {
	return geo.DistanceHaversine(ToOrb(a), ToOrb(b)) / metersPerKilometer
}

// ToOrb converts a coordinate to orb's [lon, lat] order.
func ToOrb(c core.Coordinate) orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// FromOrb converts an orb point back to a coordinate.
func FromOrb(p orb.Point) core.Coordinate {
	return core.Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}

// Bound returns the smallest lat/lon box containing every coordinate.
// An empty input yields the zero orb.Bound.
func Bound(cs []core.Coordinate) orb.Bound {
	if len(cs) == 0 {
		return orb.Bound{}
	}
	b := ToOrb(cs[0]).Bound()
	for _, c := range cs[1:] {
		b = b.Extend(ToOrb(c))
	}

	return b
}
