// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package netlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoDetectPorts_RCLowpass(t *testing.T) {
	netlist := "V1 in 0 dc 0 ac 1\nR1 in out 1k\nC1 out 0 10n"
	ports := AutoDetectPorts(netlist)
	assert.Equal(t, "in", ports["in"])
	assert.Equal(t, "out", ports["out"])
	assert.Equal(t, "0", ports["gnd"])
}

func TestAutoDetectPorts_DirectivesOnly(t *testing.T) {
	netlist := "* Title\n.param R1=10k\n.ac dec 10 1 1meg"
	assert.Empty(t, AutoDetectPorts(netlist))
}

func TestAutoDetectPorts_NoMatchingNodes(t *testing.T) {
	assert.Empty(t, AutoDetectPorts("* Title\nR1 n1 n2 1k"))
}

func TestAutoDetectPorts_IgnoresSubcktInternals(t *testing.T) {
	netlist := `* Test
.subckt myblock in out
R1 in out 1k
.ends myblock
X1 a b myblock`
	ports := AutoDetectPorts(netlist)
	assert.NotContains(t, ports, "in")
	assert.NotContains(t, ports, "out")
}

func TestAutoDetectPorts_PowerAndCase(t *testing.T) {
	netlist := "V1 VDD 0 dc 5\nR1 VDD out 1k\nR2 out gnd 1k"
	ports := AutoDetectPorts(netlist)
	// Power matches keep original spelling as both key and value.
	assert.Equal(t, "VDD", ports["VDD"])
	// Ground-classified nodes collapse onto the fixed "gnd" key.
	assert.Contains(t, []string{"0", "gnd"}, ports["gnd"])
	assert.Equal(t, "out", ports["out"])
}
