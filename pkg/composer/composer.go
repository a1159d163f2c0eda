// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package composer is the public interface of spicestack, a multi-stage
// SPICE netlist composition engine. It namespaces independently-authored
// circuit fragments, wires them together on shared wire nodes, and
// assembles one coherent netlist while keeping ground and other shared
// rails global.
//
// All operations are pure text transformations: deterministic, free of
// I/O and shared state, and safe to call concurrently as long as each
// call operates on its own inputs. The package performs no security
// filtering; callers feeding untrusted netlists to a simulator should run
// them through the sanitizer first.
package composer

import (
	"github.com/petar-djukic/spicestack/internal/compose"
	"github.com/petar-djukic/spicestack/internal/netlist"
	"github.com/petar-djukic/spicestack/internal/prefix"
	"github.com/petar-djukic/spicestack/pkg/types"
)

// Validation errors returned by Compose. Match with errors.Is.
var (
	ErrNoStages      = compose.ErrNoStages
	ErrNoPorts       = compose.ErrNoPorts
	ErrAutoWire      = compose.ErrAutoWire
	ErrBadConnection = compose.ErrBadConnection
	ErrBadLabel      = compose.ErrBadLabel
)

// Options configures a Compose call.
type Options struct {
	// SharedPorts names ports whose nodes are never prefixed, so they
	// remain single global nodes across all stages. Defaults to ["gnd"].
	SharedPorts []string
}

// Result is the outcome of a successful Compose call.
type Result struct {
	Netlist  string            // Composed netlist body (no analysis, no .end)
	Ports    map[string]string // Composite port mapping
	Stages   []types.StageInfo // Per-stage labels and final port mappings
	Warnings []types.Warning   // Non-fatal diagnostics, e.g. subckt conflicts
}

// Compose joins the given stages into a single netlist. When conns is nil,
// consecutive stages are auto-wired out -> in using conventional port
// names. Stage labels must match [A-Za-z0-9_]+; empty labels default to
// S1, S2, and so on.
//
// The returned netlist is a body fragment: the caller appends its own
// analysis directives and .end before simulation.
func Compose(stages []types.Stage, conns []types.Connection, opts Options) (*Result, error) {
	out, err := compose.Run(compose.Input{
		Stages:      stages,
		Connections: conns,
		SharedPorts: opts.SharedPorts,
	})
	if err != nil {
		return nil, err
	}
	return &Result{
		Netlist:  out.Netlist,
		Ports:    out.Ports,
		Stages:   out.Stages,
		Warnings: out.Warnings,
	}, nil
}

// PrefixNetlist rewrites every component reference and node in a netlist
// under the given prefix, returning the rewritten body and the verbatim
// text of extracted .subckt blocks. Nodes in preserve are never renamed;
// "0" is always preserved. Any V or I source whose first node is in
// stripSourcesOn is dropped entirely.
func PrefixNetlist(netlistText, prefixLabel string, preserve, stripSourcesOn map[string]struct{}) (string, []string) {
	return prefix.Apply(netlistText, prefixLabel, prefix.Options{
		Preserve:       preserve,
		StripSourcesOn: stripSourcesOn,
	})
}

// AutoDetectPorts proposes a port mapping for a netlist from heuristic
// node-name patterns, e.g. {"in": "in", "out": "out", "gnd": "0"}. Returns
// an empty map when no top-level node matches.
func AutoDetectPorts(netlistText string) map[string]string {
	return netlist.AutoDetectPorts(netlistText)
}

// Prepare strips existing analysis and .end directives from a netlist and
// appends the given analysis line plus .end, producing a complete runnable
// netlist.
func Prepare(netlistText, analysisLine string) string {
	return netlist.Prepare(netlistText, analysisLine)
}
