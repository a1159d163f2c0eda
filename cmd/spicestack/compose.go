// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/spicestack/pkg/composer"
	"github.com/petar-djukic/spicestack/pkg/types"
)

// newComposeCmd creates the "compose" command.
func newComposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose stage netlists into one circuit",
		Long:  "Compose reads one netlist file per --stage flag, auto-detects each stage's ports, wires consecutive stages together, and prints the composed result.",
		RunE:  runCompose,
	}

	cmd.Flags().StringArrayP("stage", "s", nil, "Stage netlist file (repeatable, required)")
	cmd.Flags().StringArrayP("label", "l", nil, "Stage label, positional per --stage (optional)")
	cmd.Flags().StringArray("shared-port", []string{"gnd"}, "Port names shared across all stages")
	cmd.MarkFlagRequired("stage")

	return cmd
}

// runCompose executes the composition.
func runCompose(cmd *cobra.Command, args []string) error {
	files, _ := cmd.Flags().GetStringArray("stage")
	labels, _ := cmd.Flags().GetStringArray("label")
	sharedPorts, _ := cmd.Flags().GetStringArray("shared-port")

	stages := make([]types.Stage, len(files))
	for i, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading stage file: %w", err)
		}
		netlist := string(data)
		stage := types.Stage{
			Netlist: netlist,
			Ports:   composer.AutoDetectPorts(netlist),
		}
		if i < len(labels) {
			stage.Label = labels[i]
		}
		stages[i] = stage
	}

	result, err := composer.Compose(stages, nil, composer.Options{SharedPorts: sharedPorts})
	if err != nil {
		return fmt.Errorf("compose failed: %w", err)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if viper.GetString("output") == "netlist" {
		fmt.Println(result.Netlist)
		return nil
	}
	return printJSON(result)
}

// printJSON outputs a value as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
