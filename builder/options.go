// SPDX-License-Identifier: MIT
// Package: hydronet/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic.

package builder

import "fmt"

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithWorkers bounds the number of goroutines ProximityEdges uses to rank
// reservoirs per critical point. The resulting graph does not depend on n.
// Panics if n < 1.
func WithWorkers(n int) BuilderOption {
	if n < 1 {
		panic(fmt.Sprintf("builder: WithWorkers(%d): n must be ≥ 1", n))
	}
	return func(c *builderConfig) {
		c.workers = n
	}
}
