package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"github.com/katalvlaran/hydronet/builder"
	"github.com/katalvlaran/hydronet/core"
	"github.com/katalvlaran/hydronet/dijkstra"
	"github.com/katalvlaran/hydronet/snapshot"
)

// RoutePlan is the proximity network around the dataset and the shortest
// routes from one critical point to the reservoirs it reaches.
type RoutePlan struct {
	PointID string             `json:"point_id"`
	Params  Params             `json:"params"`
	Graph   snapshot.GraphView `json:"graph"`
	Route   snapshot.RouteView `json:"route"`

	graph  *core.Graph
	result *dijkstra.RouteResult
}

// GeoJSON renders the plan's network and routes as a FeatureCollection.
func (r *RoutePlan) GeoJSON() *geojson.FeatureCollection {
	return snapshot.GeoJSON(r.graph, r.result)
}

// Routes builds the proximity network with params (zero fields take the
// planner defaults) and runs Dijkstra from the critical point pointID.
// An unknown pointID is ErrPointNotFound. A known point with no reservoir in
// range yields a plan whose Route has only the source.
func (p *Planner) Routes(ctx context.Context, pointID string, params Params) (*RoutePlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if _, ok := p.ds.CriticalPoint(pointID); !ok {
		return nil, errors.Wrapf(ErrPointNotFound, "id %q", pointID)
	}
	params = params.merge(p.defaults)
	if err := params.validate(); err != nil {
		return nil, err
	}

	return p.route(ctx, pointID, params)
}

// Locate resolves at to the nearest critical point within params.ToleranceKm
// and routes from it like Routes.
func (p *Planner) Locate(ctx context.Context, at core.Coordinate, params Params) (*RoutePlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := at.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	params = params.merge(p.defaults)
	if err := params.validate(); err != nil {
		return nil, err
	}

	g, err := p.proximity(params)
	if err != nil {
		return nil, err
	}
	nodeID, ok, err := dijkstra.LocateCriticalPoint(g, at, params.ToleranceKm)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !ok {
		return nil, errors.Wrapf(ErrPointNotFound, "no single critical point within %v km of (%v, %v)",
			params.ToleranceKm, at.Latitude, at.Longitude)
	}
	n, _ := g.Node(nodeID)

	return p.routeOn(ctx, g, n.PointID, params)
}

func (p *Planner) proximity(params Params) (*core.Graph, error) {
	g, err := builder.Proximity(
		p.ds.Reservoirs(), p.ds.CriticalPoints(),
		params.MaxDistanceKm, params.MaxNeighbors,
		p.builderOptions(params.Workers)...,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return g, nil
}

func (p *Planner) route(ctx context.Context, pointID string, params Params) (*RoutePlan, error) {
	g, err := p.proximity(params)
	if err != nil {
		return nil, err
	}

	return p.routeOn(ctx, g, pointID, params)
}

func (p *Planner) routeOn(ctx context.Context, g *core.Graph, pointID string, params Params) (*RoutePlan, error) {
	start := time.Now()
	var opts []dijkstra.Option
	if params.RouteCapKm > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(params.RouteCapKm))
	}
	res, err := dijkstra.Route(g, p.idFn(core.KindCriticalPoint, pointID), opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	plan := &RoutePlan{
		PointID: pointID,
		Params:  params,
		Graph:   snapshot.FromGraph(g),
		Route:   snapshot.FromRoute(g, res),
		graph:   g,
		result:  res,
	}
	p.log(ctx).Info("route plan",
		slog.String("point_id", pointID),
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("reservoirs_reached", len(res.Reservoirs)),
		since(start))

	return plan, nil
}
