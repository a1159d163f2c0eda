// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Stage is one independently-authored circuit fragment to be composed.
// Ports maps human-meaningful port names (e.g. "in", "out", "gnd") to the
// concrete node names they refer to inside Netlist. Label namespaces the
// stage; when empty the composer assigns S1, S2, ... by position.
type Stage struct {
	Netlist string            // SPICE netlist text of the fragment
	Ports   map[string]string // Port name -> node name
	Label   string            // Stage label (optional)
}

// Connection wires one stage's output port to another stage's input port.
// Stage fields are zero-based indices into the stage list.
type Connection struct {
	FromStage int    // Index of the driving stage
	FromPort  string // Port name on the driving stage
	ToStage   int    // Index of the driven stage
	ToPort    string // Port name on the driven stage
}

// StageInfo describes one stage after composition: its resolved label and
// its port mapping rewritten to the final (prefixed or wired) node names.
type StageInfo struct {
	Label string            // Resolved stage label
	Index int               // Position in the input stage list
	Ports map[string]string // Port name -> final node name
}

// Warning codes emitted by the composer.
const (
	WarnDuplicateSubckt = "duplicate-subckt"
)

// Warning is a non-fatal diagnostic produced during composition. The
// composer returns warnings as values rather than logging them so callers
// can inspect them programmatically.
type Warning struct {
	Code    string // One of the Warn* constants
	Message string // Human-readable summary
	Detail  string // Supporting detail, e.g. a diff of conflicting bodies
}

func (w Warning) String() string {
	if w.Detail == "" {
		return w.Code + ": " + w.Message
	}
	return w.Code + ": " + w.Message + "\n" + w.Detail
}
