// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs a query through search and detail retrieval and
// returns the papers with corporate-affiliated authors.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/affilscan/internal/pubmed"
	"github.com/pdiddy/affilscan/pkg/types"
)

// Searcher returns the identifiers matching a query.
type Searcher interface {
	Search(ctx context.Context, query string) (pubmed.SearchResult, error)
}

// DetailFetcher returns the result records for a batch of identifiers.
type DetailFetcher interface {
	FetchDetails(ctx context.Context, ids []string) ([]types.ResultRecord, error)
}

// Mode selects how fetch failures surface.
type Mode int

const (
	// ModeStrict returns fetch failures to the caller.
	ModeStrict Mode = iota
	// ModeCompat logs fetch failures and reports an empty result, so a
	// failed fetch looks like a query without matches.
	ModeCompat
)

// ParseMode maps "strict" or "compat" to a Mode. Empty means strict.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "strict":
		return ModeStrict, nil
	case "compat":
		return ModeCompat, nil
	default:
		return ModeStrict, fmt.Errorf("unknown mode %q: use strict or compat", s)
	}
}

func (m Mode) String() string {
	if m == ModeCompat {
		return "compat"
	}
	return "strict"
}

// Result is the outcome of a run.
type Result struct {
	Query string
	// IDs are the identifiers returned by the search, in server order.
	IDs []string
	// Count is the server-side number of matches, which may exceed len(IDs).
	Count int
	// Records are the qualifying papers in detail-response order.
	Records []types.ResultRecord
	// Failure is the swallowed fetch error in ModeCompat, nil otherwise.
	Failure error
}

// NoMatches reports whether the search returned no identifiers.
func (r Result) NoMatches() bool {
	return len(r.IDs) == 0
}

// Pipeline runs search then detail retrieval, one after the other.
type Pipeline struct {
	searcher Searcher
	fetcher  DetailFetcher
	mode     Mode
	log      *zap.Logger
}

// New returns a Pipeline. A nil logger discards diagnostics.
func New(searcher Searcher, fetcher DetailFetcher, mode Mode, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{searcher: searcher, fetcher: fetcher, mode: mode, log: log}
}

// Run executes the query. In ModeStrict a fetch failure is returned as an
// error; in ModeCompat it is logged, recorded in Result.Failure, and the
// result is empty. The detail fetch is skipped when the search finds nothing.
func (p *Pipeline) Run(ctx context.Context, query string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, fmt.Errorf("query is empty")
	}
	res := Result{Query: query}

	p.log.Debug("fetching pubmed ids", zap.String("query", query))
	sr, err := p.searcher.Search(ctx, query)
	if err != nil {
		return p.fail(res, "error fetching pubmed ids", fmt.Errorf("searching: %w", err))
	}
	res.IDs = sr.IDs
	res.Count = sr.Count
	p.log.Debug("found pubmed ids", zap.Int("ids", len(sr.IDs)), zap.Int("count", sr.Count))

	if len(res.IDs) == 0 {
		return res, nil
	}

	records, err := p.fetcher.FetchDetails(ctx, res.IDs)
	if err != nil {
		return p.fail(res, "error fetching paper details", fmt.Errorf("fetching details: %w", err))
	}
	res.Records = records
	p.log.Debug("filtered papers",
		zap.Int("fetched", len(res.IDs)),
		zap.Int("with_non_academic_authors", len(records)))

	return res, nil
}

// fail applies the mode to a fetch error. In ModeCompat the IDs already
// found are kept, so a failed detail fetch still reads as "matches found".
func (p *Pipeline) fail(res Result, msg string, err error) (Result, error) {
	if p.mode != ModeCompat {
		return res, err
	}
	p.log.Error(msg, zap.Error(err))
	res.Records = nil
	res.Failure = err
	return res, nil
}
