// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/spicestack/internal/template"
)

// newTemplateCmd creates the "template" command group.
func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "List and inspect circuit templates",
	}

	cmd.PersistentFlags().String("builtin-dir", "", "Directory of built-in template JSON files")
	cmd.PersistentFlags().String("user-dir", defaultUserTemplateDir(), "Directory of user template JSON files")
	viper.BindPFlag("templates.builtin-dir", cmd.PersistentFlags().Lookup("builtin-dir"))
	viper.BindPFlag("templates.user-dir", cmd.PersistentFlags().Lookup("user-dir"))

	cmd.AddCommand(newTemplateListCmd())
	cmd.AddCommand(newTemplateShowCmd())
	return cmd
}

func defaultUserTemplateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spicestack", "templates")
}

func templateStore() *template.Store {
	return template.NewStore(
		viper.GetString("templates.builtin-dir"),
		viper.GetString("templates.user-dir"),
	)
}

func newTemplateListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			summaries := templateStore().List(category)
			if viper.GetString("output") == "netlist" {
				for _, s := range summaries {
					fmt.Printf("%s\t%s\t%s\n", s.ID, s.Category, s.Name)
				}
				return nil
			}
			return printJSON(summaries)
		},
	}
	cmd.Flags().String("category", "", "Only list templates in this category")
	return cmd
}

func newTemplateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := templateStore().Get(args[0])
			if err != nil {
				return err
			}
			if viper.GetString("output") == "netlist" {
				fmt.Println(tmpl.Netlist)
				return nil
			}
			return printJSON(tmpl)
		},
	}
}
