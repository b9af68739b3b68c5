package snapshot

import (
	"math"

	"github.com/katalvlaran/hydronet/core"
	"github.com/katalvlaran/hydronet/dijkstra"
	"github.com/katalvlaran/hydronet/kruskal"
)

// NodeView is one node as shown to a client.
type NodeView struct {
	ID        string    `json:"id"`
	PointID   string    `json:"point_id"`
	Kind      core.Kind `json:"kind"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lon"`
	Label     string    `json:"label"`
	Region    string    `json:"region,omitempty"`
}

// EdgeView is one edge with its endpoints resolved.
type EdgeView struct {
	ID          string          `json:"id"`
	SourceID    string          `json:"source_id"`
	TargetID    string          `json:"target_id"`
	WeightKm    float64         `json:"weight_km"`
	Source      core.Coordinate `json:"source"`
	Target      core.Coordinate `json:"target"`
	SourceLabel string          `json:"source_label"`
	TargetLabel string          `json:"target_label"`
}

// GraphView is a graph's nodes and edges in insertion order.
type GraphView struct {
	Nodes []NodeView `json:"nodes"`
	Edges []EdgeView `json:"edges"`
}

// StepView is one Kruskal decision.
type StepView struct {
	Index       int             `json:"index"`
	Considered  EdgeView        `json:"considered_edge"`
	WeightKm    float64         `json:"weight"`
	Verdict     kruskal.Verdict `json:"verdict"`
	Description string          `json:"description"`
	MSTSoFar    []EdgeView      `json:"mst_so_far"`
}

// TraceView is a Kruskal result: the forest, its totals and the full trace.
type TraceView struct {
	MST           []EdgeView `json:"mst"`
	TotalWeightKm float64    `json:"total_weight_km"`
	Components    int        `json:"components"`
	Steps         []StepView `json:"steps"`
}

// ReservoirRoute is the shortest route from the source to one reservoir.
type ReservoirRoute struct {
	ID         string            `json:"id"`
	Label      string            `json:"label"`
	DistanceKm float64           `json:"distance_km"`
	Hops       []string          `json:"hops"`
	Path       []core.Coordinate `json:"path"`
}

// RouteView is a routing result. Distances covers every reached node;
// Reservoirs is ordered by ascending distance.
type RouteView struct {
	Source     string             `json:"source"`
	Found      bool               `json:"found"`
	Distances  map[string]float64 `json:"distances_km"`
	Reservoirs []ReservoirRoute   `json:"reservoirs"`
}

// Round2 rounds x to two decimals, the precision used for display.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// FromGraph captures g's nodes and edges.
// Complexity: O(V + E).
func FromGraph(g *core.Graph) GraphView {
	nodes := g.Nodes()
	v := GraphView{
		Nodes: make([]NodeView, len(nodes)),
		Edges: edgeViews(g, g.Edges()),
	}
	for i, n := range nodes {
		v.Nodes[i] = nodeView(n)
	}

	return v
}

// FromTrace captures a Kruskal result computed over g. Edge endpoints are
// resolved through g, so res must come from g.
// Complexity: O(Σ |Tree| over steps).
func FromTrace(g *core.Graph, res *kruskal.Result) TraceView {
	v := TraceView{
		MST:           edgeViews(g, res.Edges),
		TotalWeightKm: Round2(res.TotalWeight),
		Components:    res.Components,
		Steps:         make([]StepView, len(res.Steps)),
	}
	for i, s := range res.Steps {
		v.Steps[i] = StepView{
			Index:       s.Index,
			Considered:  edgeView(g, s.Edge),
			WeightKm:    Round2(s.Weight()),
			Verdict:     s.Verdict,
			Description: s.Description(),
			MSTSoFar:    edgeViews(g, s.Tree),
		}
	}

	return v
}

// FromRoute captures a routing result computed over g.
func FromRoute(g *core.Graph, res *dijkstra.RouteResult) RouteView {
	v := RouteView{
		Source:     res.Source,
		Found:      !res.Empty(),
		Distances:  make(map[string]float64, len(res.Distances)),
		Reservoirs: make([]ReservoirRoute, 0, len(res.Reservoirs)),
	}
	for id, d := range res.Distances {
		v.Distances[id] = Round2(d)
	}
	for _, id := range res.Reservoirs {
		n, _ := g.Node(id)
		path := make([]core.Coordinate, len(res.Paths[id]))
		copy(path, res.Paths[id])
		hops := make([]string, len(res.NodePaths[id]))
		copy(hops, res.NodePaths[id])
		v.Reservoirs = append(v.Reservoirs, ReservoirRoute{
			ID:         id,
			Label:      n.Label,
			DistanceKm: Round2(res.Distances[id]),
			Hops:       hops,
			Path:       path,
		})
	}

	return v
}

func nodeView(n core.Node) NodeView {
	return NodeView{
		ID:        n.ID,
		PointID:   n.PointID,
		Kind:      n.Kind,
		Latitude:  n.Latitude,
		Longitude: n.Longitude,
		Label:     n.Label,
		Region:    n.Region,
	}
}

func edgeView(g *core.Graph, e core.Edge) EdgeView {
	from, _ := g.Node(e.From)
	to, _ := g.Node(e.To)

	return EdgeView{
		ID:          e.ID,
		SourceID:    e.From,
		TargetID:    e.To,
		WeightKm:    Round2(e.Weight),
		Source:      from.Coordinate(),
		Target:      to.Coordinate(),
		SourceLabel: from.Label,
		TargetLabel: to.Label,
	}
}

func edgeViews(g *core.Graph, es []core.Edge) []EdgeView {
	out := make([]EdgeView, len(es))
	for i, e := range es {
		out[i] = edgeView(g, e)
	}

	return out
}
