// Package builder_test contains shared fixtures for builder tests.
package builder_test

import (
	"strconv"

	"github.com/katalvlaran/hydronet/core"
)

// reservoir returns a reservoir point in region "META".
func reservoir(id string, lat, lon float64) core.Point {
	return core.Point{ID: id, Kind: core.KindReservoir, Latitude: lat, Longitude: lon, Label: "Embalse " + id, Region: "META"}
}

// critical returns a critical point in region "META".
func critical(id string, lat, lon float64) core.Point {
	return core.Point{ID: id, Kind: core.KindCriticalPoint, Latitude: lat, Longitude: lon, Label: "Punto " + id, Region: "META"}
}

// inRegion returns a copy of p moved to region r.
func inRegion(p core.Point, r string) core.Point {
	p.Region = r

	return p
}

// grid returns n points of kind k laid out on a 0.3° grid starting at (lat0, lon0).
func grid(k core.Kind, n int, lat0, lon0 float64) []core.Point {
	ps := make([]core.Point, n)
	for i := range ps {
		ps[i] = core.Point{
			ID:        strconv.Itoa(i + 1),
			Kind:      k,
			Latitude:  lat0 + 0.3*float64(i/5),
			Longitude: lon0 + 0.3*float64(i%5),
			Region:    "META",
		}
	}

	return ps
}

// scenarioA is three reservoirs at (0,0), (0,1), (1,0) and a critical point at (0.5,0.5).
func scenarioA() (reservoirs, criticals []core.Point) {
	return []core.Point{
			reservoir("R1", 0, 0),
			reservoir("R2", 0, 1),
			reservoir("R3", 1, 0),
		}, []core.Point{
			critical("P", 0.5, 0.5),
		}
}
