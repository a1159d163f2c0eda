// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

const rcTemplate = `{
  "id": "rc_lowpass",
  "name": "RC Low-Pass Filter",
  "category": "filters",
  "description": "1st-order RC low-pass",
  "design_equations": ["fc = 1/(2*pi*R*C)"],
  "netlist": "V1 in 0 dc 0 ac 1\nR1 in out {R1}\nC1 out 0 {C1}",
  "ports": {"in": "in", "out": "out", "gnd": "0"}
}`

func TestStore_LoadAndGet(t *testing.T) {
	builtin := t.TempDir()
	writeTemplate(t, builtin, "rc_lowpass.json", rcTemplate)

	s := NewStore(builtin, "")
	tmpl, err := s.Get("rc_lowpass")
	require.NoError(t, err)
	assert.Equal(t, "RC Low-Pass Filter", tmpl.Name)
	assert.Equal(t, "built-in", tmpl.Source)
	assert.Equal(t, "0", tmpl.Ports["gnd"])
}

func TestStore_UserOverridesBuiltin(t *testing.T) {
	builtin := t.TempDir()
	user := t.TempDir()
	writeTemplate(t, builtin, "rc.json", rcTemplate)
	override := `{"id": "rc_lowpass", "name": "User RC", "category": "filters",
  "description": "patched", "netlist": "R1 in out 1k"}`
	writeTemplate(t, user, "rc.json", override)

	s := NewStore(builtin, user)
	tmpl, err := s.Get("rc_lowpass")
	require.NoError(t, err)
	assert.Equal(t, "User RC", tmpl.Name)
	assert.Equal(t, "user", tmpl.Source)
}

func TestStore_MalformedSkipped(t *testing.T) {
	builtin := t.TempDir()
	writeTemplate(t, builtin, "good.json", rcTemplate)
	writeTemplate(t, builtin, "bad.json", "{not json")
	writeTemplate(t, builtin, "empty.json", `{"id": "", "netlist": ""}`)

	s := NewStore(builtin, "")
	assert.Len(t, s.List(""), 1)
}

func TestStore_ListByCategory(t *testing.T) {
	builtin := t.TempDir()
	writeTemplate(t, builtin, "rc.json", rcTemplate)
	amp := `{"id": "inv_amp", "name": "Inverting Amp", "category": "amplifiers",
  "description": "op-amp stage", "netlist": "R1 in vminus 10k"}`
	writeTemplate(t, builtin, "amp.json", amp)

	s := NewStore(builtin, "")
	all := s.List("")
	require.Len(t, all, 2)
	// Sorted by ID.
	assert.Equal(t, "inv_amp", all[0].ID)
	assert.Equal(t, "rc_lowpass", all[1].ID)

	filters := s.List("filters")
	require.Len(t, filters, 1)
	assert.Equal(t, "rc_lowpass", filters[0].ID)
}

func TestStore_GetMissing(t *testing.T) {
	s := NewStore(t.TempDir(), "")
	_, err := s.Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSubstituteParams(t *testing.T) {
	netlist := ".param R1=10k\n.param C1=10n\nR1 in out {R1}"
	got := SubstituteParams(netlist, map[string]string{"R1": "22k"})
	assert.Contains(t, got, ".param R1=22k")
	assert.Contains(t, got, ".param C1=10n")
	// Instance lines are untouched.
	assert.Contains(t, got, "R1 in out {R1}")

	assert.Equal(t, netlist, SubstituteParams(netlist, nil))
}

func TestModifyComponent_ParamFirst(t *testing.T) {
	netlist := ".param R1=10k\nR1 in out {R1}"
	got, err := ModifyComponent(netlist, "R1", "47k")
	require.NoError(t, err)
	assert.Contains(t, got, ".param R1=47k")
	assert.Contains(t, got, "R1 in out {R1}")
}

func TestModifyComponent_InstanceLine(t *testing.T) {
	got, err := ModifyComponent("V1 in 0 dc 5\nR1 in out 1k", "R1", "2.2k")
	require.NoError(t, err)
	assert.Contains(t, got, "R1 in out 2.2k")
	assert.Contains(t, got, "V1 in 0 dc 5")
}

func TestModifyComponent_NotFound(t *testing.T) {
	_, err := ModifyComponent("R1 in out 1k", "C9", "10n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
