package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/katalvlaran/hydronet/core"
)

// Paths names the two CSV files of a dataset.
type Paths struct {
	Reservoirs     string
	CriticalPoints string
}

// Column aliases, matched case-insensitively against the header row. The
// Spanish names are the ones used by the public reservoir and risk-point
// inventories the files are exported from.
var (
	idColumns        = []string{"id"}
	latitudeColumns  = []string{"latitud", "latitude", "lat"}
	longitudeColumns = []string{"longitud", "longitude", "lon", "lng"}
	regionColumns    = []string{"departamento", "region"}

	reservoirLabelColumns = []string{"nombre de la presa", "name", "nombre", "label"}
	criticalLabelColumns  = []string{"sector", "label", "name", "nombre"}
)

// FileReport summarizes one CSV file.
type FileReport struct {
	Rows        int          `json:"rows"`
	Kept        int          `json:"kept"`
	AssignedIDs int          `json:"assigned_ids"`
	Dropped     []RowProblem `json:"dropped,omitempty"`
}

// RowProblem explains why a row was dropped.
type RowProblem struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// LoadReport summarizes a Load call.
type LoadReport struct {
	Reservoirs     FileReport `json:"reservoirs"`
	CriticalPoints FileReport `json:"critical_points"`
}

// record is one CSV row before conversion.
type record struct {
	ID        string `validate:"required"`
	Label     string
	Latitude  string `validate:"required,latitude"`
	Longitude string `validate:"required,longitude"`
	Region    string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads both CSV files and builds a Dataset.
//
// Rows with a missing or out-of-range coordinate, a blank ID or a duplicated
// ID are dropped and listed in the report. When the file has no ID column at
// all, every row gets its 1-based data-row number as ID. A missing file, a missing required column or a
// malformed CSV is an error.
func Load(paths Paths) (*Dataset, LoadReport, error) {
	var report LoadReport

	reservoirs, rep, err := readFile(paths.Reservoirs, core.KindReservoir)
	if err != nil {
		return nil, report, err
	}
	report.Reservoirs = rep

	critical, rep, err := readFile(paths.CriticalPoints, core.KindCriticalPoint)
	if err != nil {
		return nil, report, err
	}
	report.CriticalPoints = rep

	ds, err := New(reservoirs, critical)
	if err != nil {
		return nil, report, errors.WithStack(err)
	}

	return ds, report, nil
}

func readFile(path string, kind core.Kind) ([]core.Point, FileReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, FileReport{}, errors.WithStack(err)
	}
	defer file.Close()

	ps, rep, err := Read(file, kind)
	if err != nil {
		return nil, rep, errors.Wrapf(err, "read %s", path)
	}

	return ps, rep, nil
}

// Read parses one CSV stream of points of the given kind. See Load for the
// row policy.
func Read(r io.Reader, kind core.Kind) ([]core.Point, FileReport, error) {
	var rep FileReport
	if !kind.Valid() {
		return nil, rep, errors.Wrapf(core.ErrBadKind, "kind %d", kind)
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, rep, errors.New("empty file: missing header row")
	}
	if err != nil {
		return nil, rep, errors.WithStack(err)
	}
	cols, err := resolveColumns(header, kind)
	if err != nil {
		return nil, rep, err
	}

	var (
		points []core.Point
		seen   = map[string]struct{}{}
		line   = 1 // header
	)
	for {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, rep, errors.WithStack(readErr)
		}
		line++
		rep.Rows++

		rec := cols.record(row)
		if cols.id < 0 {
			rec.ID = strconv.Itoa(rep.Rows)
			rep.AssignedIDs++
		}
		if err := validate.Struct(rec); err != nil {
			rep.Dropped = append(rep.Dropped, RowProblem{Line: line, Reason: describe(err)})
			continue
		}
		if _, dup := seen[rec.ID]; dup {
			rep.Dropped = append(rep.Dropped, RowProblem{Line: line, Reason: "duplicate id " + rec.ID})
			continue
		}

		p, err := rec.point(kind)
		if err != nil {
			rep.Dropped = append(rep.Dropped, RowProblem{Line: line, Reason: err.Error()})
			continue
		}
		seen[rec.ID] = struct{}{}
		points = append(points, p)
	}
	rep.Kept = len(points)

	return points, rep, nil
}

// columns maps record fields to header positions; -1 means absent.
type columns struct {
	id, label, lat, lon, region int
}

func resolveColumns(header []string, kind core.Kind) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}
	find := func(aliases []string) int {
		for _, a := range aliases {
			if i, ok := pos[a]; ok {
				return i
			}
		}

		return -1
	}

	labels := reservoirLabelColumns
	if kind == core.KindCriticalPoint {
		labels = criticalLabelColumns
	}
	c := columns{
		id:     find(idColumns),
		label:  find(labels),
		lat:    find(latitudeColumns),
		lon:    find(longitudeColumns),
		region: find(regionColumns),
	}
	if c.lat < 0 || c.lon < 0 {
		return c, errors.Errorf("header %q: latitude and longitude columns are required", header)
	}

	return c, nil
}

func (c columns) record(row []string) record {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[i])
	}

	return record{
		ID:        cell(c.id),
		Label:     cell(c.label),
		Latitude:  cell(c.lat),
		Longitude: cell(c.lon),
		Region:    cell(c.region),
	}
}

func (r record) point(kind core.Kind) (core.Point, error) {
	lat, err := strconv.ParseFloat(r.Latitude, 64)
	if err != nil {
		return core.Point{}, errors.Wrap(err, "latitude")
	}
	lon, err := strconv.ParseFloat(r.Longitude, 64)
	if err != nil {
		return core.Point{}, errors.Wrap(err, "longitude")
	}
	p := core.Point{
		ID:        r.ID,
		Kind:      kind,
		Latitude:  lat,
		Longitude: lon,
		Label:     r.Label,
		Region:    NormalizeRegion(r.Region),
	}
	if err := p.Validate(); err != nil {
		return core.Point{}, err
	}

	return p, nil
}

// describe flattens validator errors into one line.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		parts[i] = strings.ToLower(fe.Field()) + ": " + fe.Tag()
	}

	return strings.Join(parts, ", ")
}
