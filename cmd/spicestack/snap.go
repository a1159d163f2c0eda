// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/spicestack/internal/netlist"
	"github.com/petar-djukic/spicestack/internal/stdval"
)

// newSnapCmd creates the "snap" command.
func newSnapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snap <value>",
		Short: "Snap a component value to the nearest standard E-series value",
		Long:  "Snap parses a SPICE component value such as 4.5k or 2.2e-8 and prints the nearest standard value from the chosen E-series in engineering notation.",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnap,
	}

	cmd.Flags().String("series", "E24", "E-series to snap to: E12, E24, or E96")
	return cmd
}

func runSnap(cmd *cobra.Command, args []string) error {
	seriesName, _ := cmd.Flags().GetString("series")

	v, err := netlist.ParseValue(args[0])
	if err != nil {
		return err
	}
	snapped, err := stdval.Snap(v, seriesName)
	if err != nil {
		return err
	}

	fmt.Println(stdval.FormatEngineering(snapped))
	return nil
}
