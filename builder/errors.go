// SPDX-License-Identifier: MIT
// Package: hydronet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached at the failure site with %w.
//   • Invalid points surface core sentinels (core.ErrBadCoordinate, core.ErrBadKind,
//     core.ErrEmptyNodeID) wrapped with the constructor name.

package builder

import "errors"

// ErrBadMaxDistance indicates a distance cap that is not a finite positive number.
var ErrBadMaxDistance = errors.New("builder: max distance must be finite and > 0")

// ErrBadMaxNeighbors indicates a neighbor limit below one.
var ErrBadMaxNeighbors = errors.New("builder: max neighbors must be ≥ 1")

// ErrEmptyRegion indicates a blank region name where one is required.
var ErrEmptyRegion = errors.New("builder: region is empty")

// ErrInsufficientNodes indicates that fewer than two records matched a region.
// CompleteRegion turns it into ok=false; RegionComplete returns it so that
// BuildGraph callers can branch on it.
var ErrInsufficientNodes = errors.New("builder: fewer than two nodes")

// ErrKindMismatch indicates a point handed in the wrong set, e.g. a critical
// point inside the reservoir slice.
var ErrKindMismatch = errors.New("builder: point kind does not match its set")

// ErrConstructFailed indicates a structural failure while composing constructors
// (nil constructor, duplicate node across constructors).
var ErrConstructFailed = errors.New("builder: construction failed")
