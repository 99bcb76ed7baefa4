// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active keyword ruleset as YAML",
	Long: `Rules prints the corporate and academic keyword lists used to classify
affiliations. With --rules it prints the file's ruleset after normalization,
otherwise the built-in one. The output is a valid --rules file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		rules, err := loadRules(cfg.RulesFile)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(rules); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
