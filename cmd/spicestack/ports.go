// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/spicestack/pkg/composer"
)

// newPortsCmd creates the "ports" command.
func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports FILE",
		Short: "Auto-detect a netlist's ports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading netlist file: %w", err)
			}
			return printJSON(composer.AutoDetectPorts(string(data)))
		},
	}
}
