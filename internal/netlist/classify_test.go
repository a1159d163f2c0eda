// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package netlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/spicestack/pkg/types"
)

func TestClassify_Kinds(t *testing.T) {
	cases := []struct {
		line string
		kind types.LineKind
	}{
		{"", types.LineBlank},
		{"   \t", types.LineBlank},
		{"* RC low-pass filter", types.LineComment},
		{".subckt ideal_opamp inp inn out", types.LineSubcktOpen},
		{"  .SUBCKT block a b", types.LineSubcktOpen},
		{".ends ideal_opamp", types.LineSubcktClose},
		{".ENDS", types.LineSubcktClose},
		{".param R1=10k", types.LineParam},
		{".include /path/to/model.lib", types.LineInclude},
		{".lib opamps.lib typ", types.LineInclude},
		{".ac dec 10 1 1meg", types.LineAnalysis},
		{".TRAN 1u 10m", types.LineAnalysis},
		{".op", types.LineAnalysis},
		{".dc V1 0 5 0.1", types.LineAnalysis},
		{".end", types.LineEnd},
		{".END  ", types.LineEnd},
		{".options reltol=1e-4", types.LineDirective},
		{"+ 3 4 5", types.LineContinuation},
		{"R1 in out 1k", types.LineComponent},
		{"X1 0 vminus out ideal_opamp", types.LineComponent},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, Classify(tc.line).Kind, "line %q", tc.line)
	}
}

func TestClassify_ParamCapture(t *testing.T) {
	line := Classify("  .param Rf=100k")
	require.Equal(t, types.LineParam, line.Kind)
	assert.Equal(t, "Rf", line.ParamKey)
	assert.Equal(t, "100k", line.ParamValue)
}

func TestClassify_ComponentTokens(t *testing.T) {
	line := Classify("  R1 in out 1k  ")
	require.Equal(t, types.LineComponent, line.Kind)
	assert.Equal(t, []string{"R1", "in", "out", "1k"}, line.Tokens)
	assert.Equal(t, "  R1 in out 1k  ", line.Raw)
}

func TestClassify_EndVersusEnds(t *testing.T) {
	// .end with arguments is not the terminating directive.
	assert.Equal(t, types.LineEnd, Classify(".end").Kind)
	assert.Equal(t, types.LineSubcktClose, Classify(".ends").Kind)
}

func TestBodyLines_SkipsSubcktPayload(t *testing.T) {
	netlist := `* Test
.subckt myblock in out
R1 in out 1k
.ends myblock
X1 a b myblock`

	var components []types.Line
	for _, line := range BodyLines(netlist) {
		if line.Kind == types.LineComponent {
			components = append(components, line)
		}
	}
	require.Len(t, components, 1)
	assert.Equal(t, "X1", components[0].Tokens[0])
}

func TestSubcktName(t *testing.T) {
	assert.Equal(t, "ideal_opamp", SubcktName(".subckt ideal_opamp inp inn out"))
	assert.Equal(t, ".subckt", SubcktName(".subckt"))
}
