// Package planner turns a loaded dataset into answers: the regional MST with
// its step trace, and routes from one critical point to the reservoirs around
// it.
//
// Every call builds its own graph from the immutable dataset, so a Planner
// is safe for concurrent use. Graph construction and the algorithms are pure;
// the planner is the first layer that logs.
package planner
