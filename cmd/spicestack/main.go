// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command spicestack is a test CLI for the spicestack library.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "spicestack",
		Short: "Multi-stage SPICE netlist composition",
		Long:  "spicestack namespaces independently-authored SPICE circuit fragments and composes them into one coherent netlist.",
	}

	// Global flags.
	rootCmd.PersistentFlags().String("output", "json", "Output format: json or netlist")

	// Bind flags to viper.
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	// Env vars: SPICESTACK_OUTPUT, etc.
	viper.SetEnvPrefix("SPICESTACK")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".spicestack")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newComposeCmd())
	rootCmd.AddCommand(newPortsCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newTemplateCmd())
	rootCmd.AddCommand(newSnapCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print spicestack version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("spicestack %s\n", version)
		},
	}
}
