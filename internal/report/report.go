// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report presents the records of a run: CSV, console blocks, JSON,
// a YAML run report, CSL-YAML, and a SQLite export.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/affilscan/internal/pipeline"
	"github.com/pdiddy/affilscan/pkg/types"
)

// Run describes one pipeline invocation and its records.
type Run struct {
	ID         string
	Query      string
	Mode       string
	MaxResults int
	StartedAt  time.Time

	// IDsFetched is the number of identifiers the search returned.
	IDsFetched int
	// TotalMatches is the server-side match count.
	TotalMatches int
	// Failure is the swallowed fetch error in compat mode.
	Failure string

	Records []types.ResultRecord
}

// NewRun builds a Run with a fresh identifier from a pipeline result.
func NewRun(res pipeline.Result, cfg types.Config, startedAt time.Time) Run {
	run := Run{
		ID:           uuid.NewString(),
		Query:        res.Query,
		Mode:         cfg.Mode,
		MaxResults:   cfg.Entrez.MaxResults,
		StartedAt:    startedAt.UTC(),
		IDsFetched:   len(res.IDs),
		TotalMatches: res.Count,
		Records:      res.Records,
	}
	if res.Failure != nil {
		run.Failure = res.Failure.Error()
	}
	if run.Records == nil {
		run.Records = []types.ResultRecord{}
	}
	return run
}

// Write renders run to w in the given format.
func Write(format types.OutputFormat, w io.Writer, run Run) error {
	switch format {
	case types.OutputConsole, "":
		return WriteConsole(w, run.Records)
	case types.OutputCSV:
		return WriteCSV(w, run.Records)
	case types.OutputJSON:
		return WriteJSON(w, run.Records)
	case types.OutputYAML:
		return WriteYAML(w, run)
	case types.OutputCSL:
		return WriteCSL(w, run.Records)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
