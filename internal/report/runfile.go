// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/affilscan/pkg/types"
)

// RunFile is the YAML representation of a run: what was asked, how, and
// what came back.
type RunFile struct {
	Query   string               `yaml:"query"`
	Config  RunFileConfig        `yaml:"config"`
	Results []types.ResultRecord `yaml:"results"`
	Summary RunSummary           `yaml:"summary"`
}

// RunFileConfig stores the settings that shaped the run.
type RunFileConfig struct {
	MaxResults int    `yaml:"max_results"`
	Mode       string `yaml:"mode,omitempty"`
}

// RunSummary stores result statistics, the run identifier and a timestamp.
type RunSummary struct {
	RunID        string    `yaml:"run_id"`
	IDsFetched   int       `yaml:"ids_fetched"`
	TotalMatches int       `yaml:"total_matches"`
	Records      int       `yaml:"records"`
	Failure      string    `yaml:"failure,omitempty"`
	Timestamp    time.Time `yaml:"timestamp"`
}

// WriteYAML writes run as a RunFile document.
func WriteYAML(w io.Writer, run Run) error {
	rf := RunFile{
		Query: run.Query,
		Config: RunFileConfig{
			MaxResults: run.MaxResults,
			Mode:       run.Mode,
		},
		Results: run.Records,
		Summary: RunSummary{
			RunID:        run.ID,
			IDsFetched:   run.IDsFetched,
			TotalMatches: run.TotalMatches,
			Records:      len(run.Records),
			Failure:      run.Failure,
			Timestamp:    run.StartedAt,
		},
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(&rf); err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return nil
}
