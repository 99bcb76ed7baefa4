// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the affilscan CLI.
// It searches PubMed and reports papers with at least one author affiliated
// with a pharmaceutical or biotech company.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs a query; subcommands cover version and ruleset inspection.
var rootCmd = &cobra.Command{
	Use:   "affilscan [flags] <query...>",
	Short: "Find PubMed papers with pharmaceutical or biotech authors",
	Long: `affilscan runs a PubMed query through the NCBI E-utilities, fetches the
matching articles, and keeps those with at least one author whose affiliation
names a company. Results go to the console, or to a file as CSV, JSON, a YAML
run report, or CSL-YAML. Runs can additionally be exported to SQLite.

Words after the flags are joined into a single PubMed query, so quoting is
optional:

  affilscan -f results.csv cancer immunotherapy 2023[dp]`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runQuery,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./affilscan.yaml or ~/.config/affilscan/affilscan.yaml)")
	pf.BoolP("debug", "d", false, "enable debug output on stderr")
	pf.String("rules", "", "YAML keyword ruleset replacing the built-in one")

	f := rootCmd.Flags()
	f.StringP("file", "f", "", "write results to this file (CSV unless --format says otherwise)")
	f.String("format", "", "output format: console, csv, json, yaml, csl")
	f.String("sqlite", "", "also export the run to this SQLite database")
	f.Int("max-results", 0, "maximum number of PubMed IDs to fetch (default 200)")
	f.String("contact", "", "contact email sent to NCBI with each request")
	f.String("mode", "", "fetch failure handling: strict or compat (default strict)")

	bindFlags(map[string]string{
		"debug":              "debug",
		"rules_file":         "rules",
		"output.file":        "file",
		"output.format":      "format",
		"output.sqlite_path": "sqlite",
		"entrez.max_results": "max-results",
		"entrez.contact":     "contact",
		"mode":               "mode",
	})
}

// bindFlags binds viper keys to the flags of rootCmd. Unset flags leave the
// config file, environment and defaults in charge.
func bindFlags(keys map[string]string) {
	for key, name := range keys {
		flag := rootCmd.Flags().Lookup(name)
		if flag == nil {
			flag = rootCmd.PersistentFlags().Lookup(name)
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

func initConfig() {
	// A missing .env is the common case.
	_ = godotenv.Load(".env")

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("affilscan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "affilscan"))
		}
	}

	viper.SetEnvPrefix("AFFILSCAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Error: reading config file %s: %v\n", cfgFile, err)
		os.Exit(1)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
