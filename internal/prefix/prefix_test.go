// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package prefix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rcLowpass = `* 1st-Order RC Low-Pass Filter
.param R1=10k
.param C1=10n
V1 in 0 dc 0 ac 1
R1 in out {R1}
C1 out 0 {C1}`

const invertingAmp = `* Inverting Op-Amp Amplifier
.param Rin=10k
.param Rf=100k
.subckt ideal_opamp inp inn out
E1 out 0 inp inn 100k
.ends ideal_opamp
V1 in 0 dc 0 ac 1
Rin in vminus {Rin}
Rf vminus out {Rf}
X1 0 vminus out ideal_opamp`

func TestApply_BasicPrefixing(t *testing.T) {
	prefixed, _ := Apply(rcLowpass, "S1", Options{})
	assert.Contains(t, prefixed, "RS1_1")
	assert.Contains(t, prefixed, "CS1_1")
	assert.Contains(t, prefixed, "VS1_1")
	assert.Contains(t, prefixed, "S1_in")
	assert.Contains(t, prefixed, "S1_out")
}

func TestApply_GroundNeverPrefixed(t *testing.T) {
	prefixed, _ := Apply(rcLowpass, "S1", Options{})
	assert.NotContains(t, prefixed, "S1_0")
	// Node 0 still present on the source and capacitor lines.
	assert.Contains(t, prefixed, "VS1_1 S1_in 0 dc 0 ac 1")
	assert.Contains(t, prefixed, "CS1_1 S1_out 0 {S1_C1}")
}

func TestApply_ParamsRenamed(t *testing.T) {
	prefixed, _ := Apply(rcLowpass, "S1", Options{})
	assert.Contains(t, prefixed, ".param S1_R1=10k")
	assert.Contains(t, prefixed, ".param S1_C1=10n")
	assert.Contains(t, prefixed, "{S1_R1}")
	assert.Contains(t, prefixed, "{S1_C1}")
	// No stray unrewritten brace references remain.
	assert.NotContains(t, prefixed, "{R1}")
	assert.NotContains(t, prefixed, "{C1}")
}

func TestApply_AnalysisDirectivesDropped(t *testing.T) {
	netlist := rcLowpass + "\n.ac dec 10 1 1meg\n.end"
	prefixed, _ := Apply(netlist, "S1", Options{})
	assert.NotContains(t, strings.ToLower(prefixed), ".ac")
	assert.NotContains(t, strings.ToLower(prefixed), ".end")
}

func TestApply_SubcktExtracted(t *testing.T) {
	prefixed, blocks := Apply(invertingAmp, "S1", Options{})
	require.Len(t, blocks, 1)
	// Block text is byte-identical to the original span.
	assert.Equal(t, ".subckt ideal_opamp inp inn out\nE1 out 0 inp inn 100k\n.ends ideal_opamp", blocks[0])
	assert.NotContains(t, strings.ToLower(prefixed), ".subckt")
	assert.NotContains(t, strings.ToLower(prefixed), ".ends")
}

func TestApply_SubcktModelNameUntouched(t *testing.T) {
	prefixed, _ := Apply(invertingAmp, "S1", Options{})
	var xLines []string
	for _, line := range strings.Split(prefixed, "\n") {
		if strings.HasPrefix(line, "XS1_1") {
			xLines = append(xLines, line)
		}
	}
	require.Len(t, xLines, 1)
	assert.Equal(t, "XS1_1 0 S1_vminus S1_out ideal_opamp", xLines[0])
}

func TestApply_PreserveNodes(t *testing.T) {
	prefixed, _ := Apply(rcLowpass, "S1", Options{
		Preserve: map[string]struct{}{"in": {}},
	})
	assert.Contains(t, prefixed, "RS1_1 in S1_out {S1_R1}")
}

func TestApply_StripSources(t *testing.T) {
	prefixed, _ := Apply(rcLowpass, "S2", Options{
		StripSourcesOn: map[string]struct{}{"in": {}},
	})
	assert.NotContains(t, prefixed, "VS2_1")
	assert.Contains(t, prefixed, "RS2_1")
}

func TestApply_IncludeKeptVerbatim(t *testing.T) {
	netlist := ".include /path/to/model.lib\n" + rcLowpass
	prefixed, _ := Apply(netlist, "S1", Options{})
	assert.Contains(t, prefixed, ".include /path/to/model.lib")
}

func TestApply_CommentsTagged(t *testing.T) {
	prefixed, _ := Apply(rcLowpass, "S1", Options{})
	assert.Contains(t, prefixed, "* [S1] 1st-Order RC Low-Pass Filter")
}

func TestApply_ReferenceLetterPreserved(t *testing.T) {
	prefixed, _ := Apply(rcLowpass, "S1", Options{})
	for _, line := range strings.Split(prefixed, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "*") || strings.HasPrefix(stripped, ".") {
			continue
		}
		ref := strings.Fields(stripped)[0]
		assert.Contains(t, "RVCLQJMDEGHFBXI", string(ref[0]), "ref %q lost its type letter", ref)
	}
}

func TestApply_ControlledSourceRefRenamed(t *testing.T) {
	netlist := "V1 sense 0 dc 0\nF1 out 0 V1 2\nH1 a 0 V1 0.5"
	prefixed, _ := Apply(netlist, "S1", Options{})
	assert.Contains(t, prefixed, "FS1_1 S1_out 0 VS1_1 2")
	assert.Contains(t, prefixed, "HS1_1 S1_a 0 VS1_1 0.5")
}

func TestApply_UnknownLetterPassedThrough(t *testing.T) {
	prefixed, _ := Apply("Z1 a b somemodel", "S1", Options{})
	assert.Contains(t, prefixed, "Z1 a b somemodel")
}

// Continuation lines are dropped, not joined; multi-line component
// statements are an explicit limitation of this engine.
func TestApply_ContinuationDropped(t *testing.T) {
	netlist := "V1 in 0 pulse(0 5\n+ 1u 1u 1u 5u 10u)\nR1 in out 1k"
	prefixed, _ := Apply(netlist, "S1", Options{})
	assert.NotContains(t, prefixed, "1u 1u 1u 5u 10u")
	assert.Contains(t, prefixed, "RS1_1")
}

func TestApply_Deterministic(t *testing.T) {
	opts := Options{Preserve: map[string]struct{}{"vdd": {}}}
	first, firstBlocks := Apply(invertingAmp, "S1", opts)
	second, secondBlocks := Apply(invertingAmp, "S1", opts)
	assert.Equal(t, first, second)
	assert.Equal(t, firstBlocks, secondBlocks)
}

func TestApply_BlankLinesPreserved(t *testing.T) {
	prefixed, _ := Apply("R1 in out 1k\n\nC1 out 0 10n", "S1", Options{})
	assert.Equal(t, "RS1_1 S1_in S1_out 1k\n\nCS1_1 S1_out 0 10n", prefixed)
}
