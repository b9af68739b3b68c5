// Package dataset holds the process-wide, read-only set of reservoirs and
// critical points, and loads it from CSV files.
//
// A Dataset is built once at startup and never mutated afterwards, so any
// number of requests may read it concurrently without locking. Accessors
// return copies.
package dataset

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/hydronet/core"
)

// ErrDuplicateID is returned by New when two points of the same kind share an ID.
var ErrDuplicateID = errors.New("dataset: duplicate point ID")

// Dataset is an immutable snapshot of all facilities.
type Dataset struct {
	reservoirs  []core.Point
	critical    []core.Point
	byReservoir map[string]int
	byCritical  map[string]int
	regions     []string
}

// New builds a Dataset from already-parsed points. Regions are normalized
// with NormalizeRegion; every point must pass core.Point.Validate and sit in
// the slice of its kind. The input slices are copied.
func New(reservoirs, critical []core.Point) (*Dataset, error) {
	ds := &Dataset{
		reservoirs:  make([]core.Point, len(reservoirs)),
		critical:    make([]core.Point, len(critical)),
		byReservoir: make(map[string]int, len(reservoirs)),
		byCritical:  make(map[string]int, len(critical)),
	}
	if err := fill(ds.reservoirs, ds.byReservoir, reservoirs, core.KindReservoir); err != nil {
		return nil, err
	}
	if err := fill(ds.critical, ds.byCritical, critical, core.KindCriticalPoint); err != nil {
		return nil, err
	}
	ds.regions = collectRegions(ds.reservoirs, ds.critical)

	return ds, nil
}

func fill(dst []core.Point, index map[string]int, src []core.Point, kind core.Kind) error {
	for i, p := range src {
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, "%s #%d", kind, i)
		}
		if p.Kind != kind {
			return errors.Errorf("%s #%d: point %q has kind %s", kind, i, p.ID, p.Kind)
		}
		if _, dup := index[p.ID]; dup {
			return errors.Wrapf(ErrDuplicateID, "%s %q", kind, p.ID)
		}
		p.Region = NormalizeRegion(p.Region)
		dst[i] = p
		index[p.ID] = i
	}

	return nil
}

// NormalizeRegion trims blanks and upper-cases s with Unicode rules, so that
// "Boyacá " and "BOYACÁ" name the same region.
func NormalizeRegion(s string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}

func collectRegions(sets ...[]core.Point) []string {
	seen := map[string]struct{}{}
	for _, ps := range sets {
		for _, p := range ps {
			if p.Region != "" {
				seen[p.Region] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Strings(out)

	return out
}

// Reservoirs returns all reservoirs in load order.
func (d *Dataset) Reservoirs() []core.Point { return clonePoints(d.reservoirs) }

// CriticalPoints returns all critical points in load order.
func (d *Dataset) CriticalPoints() []core.Point { return clonePoints(d.critical) }

// CriticalPoint looks up a critical point by its ID.
func (d *Dataset) CriticalPoint(id string) (core.Point, bool) {
	i, ok := d.byCritical[id]
	if !ok {
		return core.Point{}, false
	}

	return d.critical[i], true
}

// Reservoir looks up a reservoir by its ID.
func (d *Dataset) Reservoir(id string) (core.Point, bool) {
	i, ok := d.byReservoir[id]
	if !ok {
		return core.Point{}, false
	}

	return d.reservoirs[i], true
}

// Regions returns the distinct non-empty regions of both kinds, sorted.
func (d *Dataset) Regions() []string {
	out := make([]string, len(d.regions))
	copy(out, d.regions)

	return out
}

// InRegion returns the reservoirs and critical points whose region matches
// region after normalization, in load order.
func (d *Dataset) InRegion(region string) (reservoirs, critical []core.Point) {
	want := NormalizeRegion(region)

	return filterRegion(d.reservoirs, want), filterRegion(d.critical, want)
}

// Len returns the number of reservoirs and critical points.
func (d *Dataset) Len() (reservoirs, critical int) {
	return len(d.reservoirs), len(d.critical)
}

func filterRegion(ps []core.Point, region string) []core.Point {
	out := make([]core.Point, 0)
	if region == "" {
		return out
	}
	for _, p := range ps {
		if p.Region == region {
			out = append(out, p)
		}
	}

	return out
}

func clonePoints(ps []core.Point) []core.Point {
	out := make([]core.Point, len(ps))
	copy(out, ps)

	return out
}
