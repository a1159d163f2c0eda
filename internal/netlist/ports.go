// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package netlist

import (
	"strings"

	"github.com/petar-djukic/spicestack/pkg/types"
)

// portHeuristics maps lower-cased node names to port roles for
// AutoDetectPorts.
var portHeuristics = map[string]string{
	"in":   "input",
	"inp":  "input",
	"inp1": "input",
	"inp2": "input",
	"in1":  "input",
	"in2":  "input",
	"in3":  "input",
	"out":  "output",
	"vout": "output",
	"vcc":  "power",
	"vdd":  "power",
	"vee":  "power",
	"vss":  "power",
	"0":    "ground",
	"gnd":  "ground",
}

// AutoDetectPorts scans a netlist's top-level component lines and proposes
// a port mapping from node-name heuristics, e.g.
// {"in": "in", "out": "out", "gnd": "0"}.
//
// Nodes internal to .subckt blocks are never candidates. Ground-classified
// nodes are emitted under the fixed key "gnd" (keeping the original node
// spelling as the value); every other match is emitted under its own node
// name. Returns an empty map when nothing matches.
func AutoDetectPorts(netlist string) map[string]string {
	nodes := make(map[string]struct{})
	for _, line := range BodyLines(netlist) {
		if line.Kind != types.LineComponent {
			continue
		}
		for _, n := range ExtractNodes(line.Tokens) {
			nodes[n] = struct{}{}
		}
	}

	ports := make(map[string]string)
	for node := range nodes {
		role, ok := portHeuristics[strings.ToLower(node)]
		if !ok {
			continue
		}
		if role == "ground" {
			ports["gnd"] = node
		} else {
			ports[node] = node
		}
	}
	return ports
}
