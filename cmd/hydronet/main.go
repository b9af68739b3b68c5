package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/katalvlaran/hydronet/config"
	"github.com/katalvlaran/hydronet/dataset"
	logs "github.com/katalvlaran/hydronet/logs"
	"github.com/katalvlaran/hydronet/planner"
	"github.com/katalvlaran/hydronet/server"
)

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newDataset,
			newPlanner,
			server.New,
		),
		fx.Invoke(startServer),
	).Run()
}

func newDataset(cfg *config.Config, logger *slog.Logger) (*dataset.Dataset, error) {
	ds, report, err := dataset.Load(dataset.Paths{
		Reservoirs:     cfg.Data.Reservoirs,
		CriticalPoints: cfg.Data.CriticalPoints,
	})
	if err != nil {
		return nil, err
	}

	logLoadReport(logger, cfg.Data, report)

	return ds, nil
}

// logLoadReport logs the reservoir file first, then the critical-point file.
func logLoadReport(logger *slog.Logger, data config.Data, report dataset.LoadReport) {
	files := []struct {
		kind string
		path string
		rep  dataset.FileReport
	}{
		{"reservoirs", data.Reservoirs, report.Reservoirs},
		{"critical_points", data.CriticalPoints, report.CriticalPoints},
	}
	for _, f := range files {
		logger.Info("dataset file loaded",
			slog.String("kind", f.kind),
			slog.String("file", f.path),
			slog.Int("rows", f.rep.Rows),
			slog.Int("kept", f.rep.Kept),
			slog.Int("assigned_ids", f.rep.AssignedIDs))
		for _, p := range f.rep.Dropped {
			logger.Warn("row dropped",
				slog.String("kind", f.kind),
				slog.String("file", f.path),
				slog.Int("line", p.Line),
				slog.String("reason", p.Reason))
		}
	}
}

func newPlanner(ds *dataset.Dataset, cfg *config.Config, logger *slog.Logger) (*planner.Planner, error) {
	return planner.New(ds, planner.Params{
		MaxDistanceKm: cfg.Proximity.MaxDistanceKm,
		MaxNeighbors:  cfg.Proximity.MaxNeighbors,
		ToleranceKm:   cfg.Proximity.ToleranceKm,
		Workers:       cfg.Proximity.Workers,
	}, planner.WithLogger(logger))
}

func startServer(ctx context.Context, s *server.Server) {
	go func() {
		if err := s.Serve(ctx); err != nil {
			slog.Error("Failed to start server", slog.Any("error", err))
			os.Exit(1)
		}
	}()
}
