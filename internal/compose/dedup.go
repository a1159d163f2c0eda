// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package compose

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/petar-djukic/spicestack/internal/netlist"
	"github.com/petar-djukic/spicestack/pkg/types"
)

// dedupeSubckts keeps the first .subckt block per declared name. A
// same-named later block with different content produces a warning rather
// than an error: independently authored stages legitimately embed the same
// library subcircuit, and that must not block composition.
func dedupeSubckts(blocks []string) ([]string, []types.Warning) {
	seen := make(map[string]string)
	var unique []string
	var warnings []types.Warning

	for _, block := range blocks {
		openLine, _, _ := strings.Cut(strings.TrimSpace(block), "\n")
		name := netlist.SubcktName(openLine)
		kept, dup := seen[name]
		if !dup {
			seen[name] = block
			unique = append(unique, block)
			continue
		}
		if strings.TrimSpace(kept) != strings.TrimSpace(block) {
			warnings = append(warnings, types.Warning{
				Code:    types.WarnDuplicateSubckt,
				Message: fmt.Sprintf("duplicate .subckt %q with different content; keeping first occurrence", name),
				Detail:  blockDiff(kept, block),
			})
		}
	}
	return unique, warnings
}

// blockDiff renders a compact character-level diff between two subckt
// bodies for warning detail: kept text under "-", discarded under "+".
func blockDiff(kept, discarded string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(kept, discarded, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("-" + d.Text + "\n")
		case diffmatchpatch.DiffInsert:
			b.WriteString("+" + d.Text + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// dedupeIncludes removes duplicate .include/.lib lines by exact text,
// preserving first-seen order.
func dedupeIncludes(includes []string) []string {
	seen := make(map[string]struct{}, len(includes))
	var unique []string
	for _, inc := range includes {
		if _, ok := seen[inc]; ok {
			continue
		}
		seen[inc] = struct{}{}
		unique = append(unique, inc)
	}
	return unique
}
