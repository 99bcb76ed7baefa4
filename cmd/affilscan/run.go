// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/affilscan/internal/assemble"
	"github.com/pdiddy/affilscan/internal/classify"
	"github.com/pdiddy/affilscan/internal/httputil"
	"github.com/pdiddy/affilscan/internal/logging"
	"github.com/pdiddy/affilscan/internal/pipeline"
	"github.com/pdiddy/affilscan/internal/pubmed"
	"github.com/pdiddy/affilscan/internal/report"
	"github.com/pdiddy/affilscan/internal/secrets"
	"github.com/pdiddy/affilscan/pkg/types"
)

// errNoMatches is returned when the search finds no PubMed IDs; it makes the
// process exit non-zero. Zero qualifying papers after filtering is success.
var errNoMatches = errors.New("no PubMed IDs found for query")

// setup resolves the configuration and the logger shared by subcommands.
func setup() (types.Config, *zap.Logger, error) {
	// Secrets are read before the logger exists; warnings go to a
	// bootstrap logger at the default level.
	boot := logging.New(logging.Options{Writer: os.Stderr})
	store, err := secrets.Load(secrets.DefaultDir, boot)
	if err != nil {
		return types.Config{}, nil, err
	}

	cfg, err := loadConfig(viper.GetViper(), store)
	if err != nil {
		return types.Config{}, nil, err
	}

	log := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: os.Stderr,
	})
	return cfg, log, nil
}

func loadRules(path string) (classify.Ruleset, error) {
	if path == "" {
		return classify.DefaultRuleset(), nil
	}
	return classify.LoadRuleset(path)
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	rules, err := loadRules(cfg.RulesFile)
	if err != nil {
		return err
	}
	mode, err := pipeline.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	assembler := assemble.New(classify.New(rules), log)
	client := pubmed.NewClient(httputil.NewClient(cfg.Entrez.HTTPConfig), cfg.Entrez, assembler, log)
	p := pipeline.New(client, client, mode, log)

	started := time.Now()
	res, err := p.Run(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	if res.NoMatches() {
		return fmt.Errorf("%w: %q", errNoMatches, res.Query)
	}

	run := report.NewRun(res, cfg, started)
	if err := writeOutput(cmd.OutOrStdout(), cfg.Output, run); err != nil {
		return err
	}
	if cfg.Output.SQLitePath != "" {
		if err := exportSQLite(cmd.Context(), cfg.Output.SQLitePath, run); err != nil {
			return err
		}
		log.Debug("exported run", zap.String("run_id", run.ID), zap.String("path", cfg.Output.SQLitePath))
	}
	return nil
}

// writeOutput renders run to the configured file, or to stdout when no file
// is set.
func writeOutput(stdout io.Writer, out types.OutputConfig, run report.Run) error {
	format := out.ResolvedFormat()
	if out.File == "" {
		return report.Write(format, stdout, run)
	}

	f, err := os.Create(out.File)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := report.Write(format, f, run); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", out.File, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out.File, err)
	}
	fmt.Fprintf(stdout, "Results saved to %s\n", out.File)
	return nil
}

func exportSQLite(ctx context.Context, path string, run report.Run) error {
	exp, err := report.OpenSQLite(path)
	if err != nil {
		return err
	}
	if err := exp.Export(ctx, run); err != nil {
		exp.Close()
		return fmt.Errorf("exporting run to %s: %w", path, err)
	}
	return exp.Close()
}
