// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/spicestack/internal/sanitize"
)

// newCheckCmd creates the "check" command.
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a netlist against the simulation allowlist",
		Long:  "Check verifies that a netlist uses only allowlisted SPICE directives and, when includes are permitted, that every .include path stays inside an allowed directory.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}

	cmd.Flags().Bool("allow-includes", false, "Permit .include and .lib directives")
	cmd.Flags().StringArray("include-dir", nil, "Directory .include paths may reference (repeatable)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	allowIncludes, _ := cmd.Flags().GetBool("allow-includes")
	includeDirs, _ := cmd.Flags().GetStringArray("include-dir")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading netlist: %w", err)
	}
	netlist := string(data)

	if err := sanitize.CheckNetlist(netlist, sanitize.Options{AllowIncludes: allowIncludes}); err != nil {
		return err
	}
	if allowIncludes {
		if err := sanitize.CheckIncludePaths(netlist, includeDirs); err != nil {
			return err
		}
	}

	fmt.Printf("%s: ok\n", args[0])
	return nil
}
