package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hydronet/builder"
	"github.com/katalvlaran/hydronet/dataset"
	"github.com/katalvlaran/hydronet/kruskal"
	"github.com/katalvlaran/hydronet/snapshot"
)

// RegionalPlan is the complete graph of one region with its minimum spanning
// tree and the step trace that produced it.
//
// Found is false when the region holds fewer than two records; Graph and
// Trace are then empty.
type RegionalPlan struct {
	Region string             `json:"region"`
	Found  bool               `json:"found"`
	Graph  snapshot.GraphView `json:"graph"`
	Trace  snapshot.TraceView `json:"trace"`
}

// Regional builds the complete graph of region and runs Kruskal on it.
func (p *Planner) Regional(ctx context.Context, region string) (*RegionalPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	start := time.Now()
	want := dataset.NormalizeRegion(region)
	log := p.log(ctx).With(slog.String("region", want))

	reservoirs, critical := p.ds.InRegion(want)
	g, ok, err := builder.CompleteRegion(reservoirs, critical, want, p.builderOptions(1)...)
	if err != nil {
		return nil, errors.Wrapf(err, "region %q", region)
	}
	plan := &RegionalPlan{Region: want, Found: ok}
	if !ok {
		log.Info("region has too few records",
			slog.Int("reservoirs", len(reservoirs)),
			slog.Int("critical_points", len(critical)))

		return plan, nil
	}

	res, err := kruskal.Kruskal(g)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	plan.Graph = snapshot.FromGraph(g)
	plan.Trace = snapshot.FromTrace(g, res)

	log.Info("regional plan",
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("mst_edges", len(res.Edges)),
		slog.Float64("total_km", snapshot.Round2(res.TotalWeight)),
		since(start))

	return plan, nil
}
