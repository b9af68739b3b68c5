package planner

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hydronet/builder"
	"github.com/katalvlaran/hydronet/core"
	"github.com/katalvlaran/hydronet/dataset"
)

// Default proximity network parameters.
const (
	DefaultMaxDistanceKm = 100.0
	DefaultMaxNeighbors  = 5
	DefaultToleranceKm   = 0.5
)

var (
	// ErrPointNotFound is returned when a critical point ID or coordinate
	// does not resolve to a loaded critical point.
	ErrPointNotFound = errors.New("planner: critical point not found")

	// ErrBadParams is returned for parameters the builders would reject.
	ErrBadParams = errors.New("planner: invalid parameters")
)

// Params tunes the proximity network and the router. Zero fields fall back
// to the planner defaults.
type Params struct {
	MaxDistanceKm float64 `json:"max_distance_km"`
	MaxNeighbors  int     `json:"max_neighbors"`
	// RouteCapKm stops Dijkstra beyond this distance; 0 means no cap.
	RouteCapKm float64 `json:"route_cap_km,omitempty"`
	// ToleranceKm is used by Locate only.
	ToleranceKm float64 `json:"tolerance_km,omitempty"`
	Workers     int     `json:"-"`
}

// DefaultParams returns 100 km, five neighbours, 0.5 km tolerance and one worker.
func DefaultParams() Params {
	return Params{
		MaxDistanceKm: DefaultMaxDistanceKm,
		MaxNeighbors:  DefaultMaxNeighbors,
		ToleranceKm:   DefaultToleranceKm,
		Workers:       1,
	}
}

// merge fills zero fields of p from d.
func (p Params) merge(d Params) Params {
	if p.MaxDistanceKm == 0 {
		p.MaxDistanceKm = d.MaxDistanceKm
	}
	if p.MaxNeighbors == 0 {
		p.MaxNeighbors = d.MaxNeighbors
	}
	if p.RouteCapKm == 0 {
		p.RouteCapKm = d.RouteCapKm
	}
	if p.ToleranceKm == 0 {
		p.ToleranceKm = d.ToleranceKm
	}
	if p.Workers == 0 {
		p.Workers = d.Workers
	}

	return p
}

func (p Params) validate() error {
	switch {
	case math.IsNaN(p.MaxDistanceKm) || math.IsInf(p.MaxDistanceKm, 0) || p.MaxDistanceKm <= 0:
		return errors.Wrapf(ErrBadParams, "max distance %v km", p.MaxDistanceKm)
	case p.MaxNeighbors < 1:
		return errors.Wrapf(ErrBadParams, "max neighbors %d", p.MaxNeighbors)
	case math.IsNaN(p.RouteCapKm) || p.RouteCapKm < 0:
		return errors.Wrapf(ErrBadParams, "route cap %v km", p.RouteCapKm)
	case math.IsNaN(p.ToleranceKm) || p.ToleranceKm < 0:
		return errors.Wrapf(ErrBadParams, "tolerance %v km", p.ToleranceKm)
	case p.Workers < 1:
		return errors.Wrapf(ErrBadParams, "workers %d", p.Workers)
	}

	return nil
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the fallback logger used when the request context carries
// none.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithIDScheme replaces the node ID scheme of every built graph.
func WithIDScheme(fn builder.IDFn) Option {
	return func(p *Planner) {
		p.idFn = fn
	}
}

// Planner answers regional and routing requests over one dataset.
type Planner struct {
	ds       *dataset.Dataset
	defaults Params
	logger   *slog.Logger
	idFn     builder.IDFn
}

// New returns a Planner over ds. Zero fields of defaults take the values of
// DefaultParams.
func New(ds *dataset.Dataset, defaults Params, opts ...Option) (*Planner, error) {
	if ds == nil {
		return nil, errors.New("planner: nil dataset")
	}
	defaults = defaults.merge(DefaultParams())
	if err := defaults.validate(); err != nil {
		return nil, errors.Wrap(err, "defaults")
	}
	p := &Planner{
		ds:       ds,
		defaults: defaults,
		logger:   slog.Default(),
		idFn:     builder.NamespacedID,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Defaults returns the resolved default parameters.
func (p *Planner) Defaults() Params { return p.defaults }

// Regions lists the regions a regional plan can be asked for.
func (p *Planner) Regions() []string { return p.ds.Regions() }

// CriticalPoints lists the loaded critical points.
func (p *Planner) CriticalPoints() []core.Point { return p.ds.CriticalPoints() }

func (p *Planner) builderOptions(workers int) []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithIDScheme(p.idFn),
		builder.WithWorkers(workers),
	}
}

func (p *Planner) log(ctx context.Context) *slog.Logger {
	if l := loggerFrom(ctx); l != nil {
		return l
	}

	return p.logger
}

func since(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
