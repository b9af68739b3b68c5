// SPDX-License-Identifier: MIT
// Package: hydronet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn    = NamespacedID   ("reservoir:<id>", "critical:<id>")
//   • workers = 1              (sequential nearest-reservoir scan)

package builder

// defaultWorkers keeps the proximity scan sequential unless asked otherwise.
const defaultWorkers = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node ID strategy: (kind, point ID) -> graph node ID.
	idFn IDFn

	// Upper bound on goroutines scanning critical points in ProximityEdges.
	workers int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    NamespacedID,
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
