// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package compose

import (
	"github.com/petar-djukic/spicestack/internal/netlist"
	"github.com/petar-djukic/spicestack/pkg/types"
)

// wireConnections renames each connection's endpoint nodes to a synthetic
// shared wire node, wire_{fromLabel}_{toLabel}, across every stage's body
// and updates every stage's recorded port mapping.
//
// Renaming is structural: only the node fields of component-instance lines
// are rewritten, so a node name that happens to be a substring of an
// unrelated token (say "out" inside "outer") can never be corrupted. The
// rename is applied to all stages, not just the two endpoints, because a
// node name may recur and consistency must be global.
func wireConnections(conns []types.Connection, stages []workStage, bodies [][]types.Line, infos []types.StageInfo, shared map[string]struct{}) {
	for _, c := range conns {
		fromLabel := stages[c.FromStage].label
		toLabel := stages[c.ToStage].label
		fromNode := resolvedNode(fromLabel, stages[c.FromStage].ports[c.FromPort], shared)
		toNode := resolvedNode(toLabel, stages[c.ToStage].ports[c.ToPort], shared)
		wire := "wire_" + fromLabel + "_" + toLabel

		for _, body := range bodies {
			renameNodes(body, fromNode, wire)
			renameNodes(body, toNode, wire)
		}

		for _, info := range infos {
			for pname, pnode := range info.Ports {
				if pnode == fromNode || pnode == toNode {
					info.Ports[pname] = wire
				}
			}
		}
	}
}

// renameNodes rewrites every node token equal to old with new, in place.
// Only the node positions of component lines are touched.
func renameNodes(body []types.Line, old, new string) {
	for i := range body {
		line := &body[i]
		if line.Kind != types.LineComponent {
			continue
		}
		start, end := netlist.NodeRange(line.Tokens)
		for j := start; j < end; j++ {
			if line.Tokens[j] == old {
				line.Tokens[j] = new
			}
		}
	}
}
