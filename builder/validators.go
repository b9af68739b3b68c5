package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydronet/core"
)

// validateMaxDistance requires a finite cap > 0.
func validateMaxDistance(method string, km float64) error {
	if math.IsNaN(km) || math.IsInf(km, 0) || km <= 0 {
		return fmt.Errorf("%s: maxDistanceKm=%v: %w", method, km, ErrBadMaxDistance)
	}

	return nil
}

// validateMaxNeighbors requires k ≥ 1.
func validateMaxNeighbors(method string, k int) error {
	if k < 1 {
		return fmt.Errorf("%s: maxNeighbors=%d: %w", method, k, ErrBadMaxNeighbors)
	}

	return nil
}

// validatePoints checks every point's own contract and that it belongs to the
// set it was passed in.
func validatePoints(method string, want core.Kind, ps []core.Point) error {
	for i := range ps {
		if err := ps[i].Validate(); err != nil {
			return fmt.Errorf("%s: %s[%d]: %w", method, want, i, err)
		}
		if ps[i].Kind != want {
			return fmt.Errorf("%s: %s[%d] %q is a %s: %w", method, want, i, ps[i].ID, ps[i].Kind, ErrKindMismatch)
		}
	}

	return nil
}

// addPointNodes projects ps into g under cfg.idFn and returns the node IDs in
// input order.
func addPointNodes(method string, g *core.Graph, cfg builderConfig, ps []core.Point) ([]string, error) {
	ids := make([]string, len(ps))
	for i := range ps {
		ids[i] = cfg.idFn(ps[i].Kind, ps[i].ID)
		if err := g.AddNode(core.NodeFromPoint(ids[i], ps[i])); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}
