// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package compose implements the stage composer: it prefixes each stage
// under its label, wires connected ports to shared wire nodes, deduplicates
// subcircuit definitions and include directives, and assembles the final
// netlist plus the composite port mapping.
//
// A call either fails validation before any text is produced or returns a
// complete result; no partial output exists. Input stages are never
// mutated; all work happens on internal copies.
package compose

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/petar-djukic/spicestack/internal/netlist"
	"github.com/petar-djukic/spicestack/internal/prefix"
	"github.com/petar-djukic/spicestack/pkg/types"
)

// Validation errors returned by Run. All are terminal; none are retryable.
var (
	ErrNoStages      = errors.New("at least one stage is required")
	ErrNoPorts       = errors.New("stage has no ports defined")
	ErrAutoWire      = errors.New("cannot auto-wire stages")
	ErrBadConnection = errors.New("invalid connection")
	ErrBadLabel      = errors.New("invalid stage label")
)

// Port-name priority orders used for auto-wiring and composite ports.
var (
	outputPortNames = []string{"out", "vout", "output"}
	inputPortNames  = []string{"in", "inp", "input", "in1"}

	combinedInputNames  = []string{"in", "inp", "in1", "inp1", "inp2", "in2", "in3"}
	combinedOutputNames = []string{"out", "vout"}
)

var labelRE = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Input holds the arguments to a compose call.
type Input struct {
	Stages      []types.Stage
	Connections []types.Connection // nil => auto-wire consecutive stages
	SharedPorts []string           // nil => ["gnd"]
}

// Output is the result of a successful compose call.
type Output struct {
	Netlist  string
	Ports    map[string]string
	Stages   []types.StageInfo
	Warnings []types.Warning
}

// workStage is the composer's private copy of one input stage with its
// resolved label. Stage inputs are read, never written.
type workStage struct {
	netlist string
	label   string
	ports   map[string]string
}

// Run composes the given stages into a single netlist.
func Run(in Input) (*Output, error) {
	if len(in.Stages) == 0 {
		return nil, ErrNoStages
	}

	stages, err := resolveStages(in.Stages)
	if err != nil {
		return nil, err
	}

	conns := in.Connections
	if conns == nil {
		conns, err = autoConnections(stages)
		if err != nil {
			return nil, err
		}
	}
	if err := validateConnections(conns, stages); err != nil {
		return nil, err
	}

	// Nodes that receive an incoming driver, per destination stage. These
	// become that stage's strip-sources set: once two stages are joined
	// the downstream stage's private source must not fight the upstream
	// signal.
	incoming := make([]map[string]struct{}, len(stages))
	for i := range incoming {
		incoming[i] = map[string]struct{}{}
	}
	for _, c := range conns {
		node := stages[c.ToStage].ports[c.ToPort]
		incoming[c.ToStage][node] = struct{}{}
	}

	// Nodes never prefixed in any stage: ground plus every stage's node
	// for each shared port name.
	sharedPorts := in.SharedPorts
	if sharedPorts == nil {
		sharedPorts = []string{"gnd"}
	}
	shared := map[string]struct{}{"0": {}}
	for _, name := range sharedPorts {
		for _, st := range stages {
			if node, ok := st.ports[name]; ok {
				shared[node] = struct{}{}
			}
		}
	}

	// Prefix every stage, extracting subckt blocks and include lines so
	// they can be emitted once, globally.
	var allBlocks []string
	var allIncludes []string
	bodies := make([][]types.Line, len(stages))
	infos := make([]types.StageInfo, len(stages))
	for i, st := range stages {
		prefixed, blocks := prefix.Apply(st.netlist, st.label, prefix.Options{
			Preserve:       shared,
			StripSourcesOn: incoming[i],
		})
		allBlocks = append(allBlocks, blocks...)

		var body []types.Line
		for _, line := range netlist.Lines(prefixed) {
			if line.Kind == types.LineInclude {
				allIncludes = append(allIncludes, strings.TrimSpace(line.Raw))
				continue
			}
			body = append(body, line)
		}
		bodies[i] = body

		ports := make(map[string]string, len(st.ports))
		for pname, pnode := range st.ports {
			ports[pname] = resolvedNode(st.label, pnode, shared)
		}
		infos[i] = types.StageInfo{Label: st.label, Index: i, Ports: ports}
	}

	wireConnections(conns, stages, bodies, infos, shared)

	uniqueBlocks, warnings := dedupeSubckts(allBlocks)
	uniqueIncludes := dedupeIncludes(allIncludes)

	return &Output{
		Netlist:  assemble(uniqueBlocks, uniqueIncludes, stages, bodies),
		Ports:    combinedPorts(infos),
		Stages:   infos,
		Warnings: warnings,
	}, nil
}

// resolveStages validates ports and labels, assigning default S1, S2, ...
// labels where missing, and returns working copies of the stages.
func resolveStages(in []types.Stage) ([]workStage, error) {
	stages := make([]workStage, len(in))
	for i, st := range in {
		label := st.Label
		if label == "" {
			label = fmt.Sprintf("S%d", i+1)
		}
		if !labelRE.MatchString(label) {
			return nil, fmt.Errorf("%w: stage %d label %q must match [A-Za-z0-9_]+", ErrBadLabel, i, label)
		}
		if len(st.Ports) == 0 {
			return nil, fmt.Errorf("%w: stage %d (%q) has no ports defined", ErrNoPorts, i, label)
		}
		ports := make(map[string]string, len(st.Ports))
		for k, v := range st.Ports {
			ports[k] = v
		}
		stages[i] = workStage{netlist: st.Netlist, label: label, ports: ports}
	}
	return stages, nil
}

// autoConnections wires out -> in between consecutive stages, searching
// each side's ports in conventional priority order.
func autoConnections(stages []workStage) ([]types.Connection, error) {
	var conns []types.Connection
	for i := 0; i < len(stages)-1; i++ {
		fromPort := firstPort(stages[i].ports, outputPortNames)
		toPort := firstPort(stages[i+1].ports, inputPortNames)
		if fromPort == "" {
			return nil, fmt.Errorf("%w: stage %d (%q) has no output port; ports: %s",
				ErrAutoWire, i, stages[i].label, portNames(stages[i].ports))
		}
		if toPort == "" {
			return nil, fmt.Errorf("%w: stage %d (%q) has no input port; ports: %s",
				ErrAutoWire, i+1, stages[i+1].label, portNames(stages[i+1].ports))
		}
		conns = append(conns, types.Connection{
			FromStage: i, FromPort: fromPort,
			ToStage: i + 1, ToPort: toPort,
		})
	}
	return conns, nil
}

// validateConnections fails fast, before any text is rewritten.
func validateConnections(conns []types.Connection, stages []workStage) error {
	for _, c := range conns {
		if c.FromStage < 0 || c.FromStage >= len(stages) {
			return fmt.Errorf("%w: from_stage %d out of range", ErrBadConnection, c.FromStage)
		}
		if c.ToStage < 0 || c.ToStage >= len(stages) {
			return fmt.Errorf("%w: to_stage %d out of range", ErrBadConnection, c.ToStage)
		}
		if _, ok := stages[c.FromStage].ports[c.FromPort]; !ok {
			return fmt.Errorf("%w: port %q not found in stage %d", ErrBadConnection, c.FromPort, c.FromStage)
		}
		if _, ok := stages[c.ToStage].ports[c.ToPort]; !ok {
			return fmt.Errorf("%w: port %q not found in stage %d", ErrBadConnection, c.ToPort, c.ToStage)
		}
	}
	return nil
}

// resolvedNode maps a stage port node to its post-prefixing name: shared
// nodes are left alone, everything else gets the stage label.
func resolvedNode(label, node string, shared map[string]struct{}) string {
	if _, ok := shared[node]; ok {
		return node
	}
	return label + "_" + node
}

func firstPort(ports map[string]string, names []string) string {
	for _, n := range names {
		if _, ok := ports[n]; ok {
			return n
		}
	}
	return ""
}

// portNames renders a stage's port names sorted, for error messages.
func portNames(ports map[string]string) string {
	names := make([]string, 0, len(ports))
	for n := range ports {
		names = append(names, n)
	}
	sort.Strings(names)
	return "[" + strings.Join(names, " ") + "]"
}

// combinedPorts derives the composite port mapping: inputs from the first
// stage, outputs from the last, ground always exposed as "0".
func combinedPorts(infos []types.StageInfo) map[string]string {
	ports := make(map[string]string)
	first := infos[0]
	last := infos[len(infos)-1]
	for _, name := range combinedInputNames {
		if node, ok := first.Ports[name]; ok {
			ports[name] = node
		}
	}
	for _, name := range combinedOutputNames {
		if node, ok := last.Ports[name]; ok {
			ports[name] = node
		}
	}
	ports["gnd"] = "0"
	return ports
}

// assemble concatenates the banner, unique subckt blocks, unique include
// lines, and each stage's wired body under a stage marker comment. No
// analysis or .end directives are emitted; the caller appends its own.
func assemble(blocks, includes []string, stages []workStage, bodies [][]types.Line) string {
	parts := []string{"* Composed multi-stage circuit"}

	if len(blocks) > 0 {
		parts = append(parts, "")
		parts = append(parts, blocks...)
	}
	if len(includes) > 0 {
		parts = append(parts, "")
		parts = append(parts, includes...)
	}
	for i, body := range bodies {
		parts = append(parts, "", "* --- Stage: "+stages[i].label+" ---", render(body))
	}
	return strings.Join(parts, "\n")
}

// render turns classified lines back into text. Component lines are
// re-joined from their (possibly rewired) tokens; everything else keeps
// its raw text.
func render(body []types.Line) string {
	out := make([]string, len(body))
	for i, line := range body {
		if line.Kind == types.LineComponent {
			out[i] = strings.Join(line.Tokens, " ")
		} else {
			out[i] = line.Raw
		}
	}
	return strings.Join(out, "\n")
}
