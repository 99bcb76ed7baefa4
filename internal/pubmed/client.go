// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed talks to the NCBI E-utilities: ESearch returns the PMIDs
// matching a query and EFetch returns the article documents for a batch of
// PMIDs, which are parsed and handed to the record assembler.
package pubmed

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/affilscan/internal/assemble"
	"github.com/pdiddy/affilscan/internal/httputil"
	"github.com/pdiddy/affilscan/pkg/types"
)

const (
	esearchPath = "esearch.fcgi"
	efetchPath  = "efetch.fcgi"
)

// Client issues ESearch and EFetch requests. Calls are sequential and
// blocking; a Client holds no per-run state.
type Client struct {
	http      httputil.Getter
	cfg       types.EntrezConfig
	assembler *assemble.Assembler
	log       *zap.Logger
}

// NewClient returns a Client. A nil assembler uses the default ruleset and a
// nil logger discards diagnostics.
func NewClient(getter httputil.Getter, cfg types.EntrezConfig, assembler *assemble.Assembler, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if assembler == nil {
		assembler = assemble.New(nil, log)
	}
	if cfg.Database == "" {
		cfg.Database = types.DefaultDatabase
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = types.DefaultBaseURL
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = types.DefaultMaxResults
	}
	return &Client{http: getter, cfg: cfg, assembler: assembler, log: log}
}

// SearchResult is the outcome of an ESearch call.
type SearchResult struct {
	// IDs are the PMIDs in server order, at most MaxResults of them.
	IDs []string
	// Count is the total number of matches on the server.
	Count int
	// QueryTranslation is the query as PubMed interpreted it.
	QueryTranslation string
}

// Search returns the PMIDs matching query. Failures are *FetchError values
// of kind ErrTransport or ErrParse.
func (c *Client) Search(ctx context.Context, query string) (SearchResult, error) {
	params := c.params()
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(c.cfg.MaxResults))

	body, err := c.http.Get(ctx, c.endpoint(esearchPath), params)
	if err != nil {
		return SearchResult{}, transportErr("esearch", err)
	}

	res, err := parseESearch(body)
	if err != nil {
		return SearchResult{}, parseErr("esearch", err)
	}

	c.log.Debug("esearch complete",
		zap.String("query", query),
		zap.Int("ids", len(res.IDs)),
		zap.Int("count", res.Count),
		zap.String("translation", res.QueryTranslation))
	return res, nil
}

// FetchArticles retrieves and parses the articles for ids in one batch
// request. Empty ids return immediately without a request. The caller bounds
// the batch size; it is not split.
func (c *Client) FetchArticles(ctx context.Context, ids []string) ([]types.RawArticle, error) {
	if len(ids) == 0 {
		c.log.Debug("no ids to fetch")
		return nil, nil
	}

	params := c.params()
	params.Set("id", strings.Join(ids, ","))

	body, err := c.http.Get(ctx, c.endpoint(efetchPath), params)
	if err != nil {
		return nil, transportErr("efetch", err)
	}

	articles, err := parseEFetch(body)
	if err != nil {
		return nil, parseErr("efetch", err)
	}
	return articles, nil
}

// FetchDetails retrieves the articles for ids and returns the records of
// those with a corporate-affiliated author, in response order.
func (c *Client) FetchDetails(ctx context.Context, ids []string) ([]types.ResultRecord, error) {
	articles, err := c.FetchArticles(ctx, ids)
	if err != nil {
		return nil, err
	}

	records := make([]types.ResultRecord, 0, len(articles))
	for _, a := range articles {
		if rec, ok := c.assembler.Assemble(a); ok {
			records = append(records, rec)
		}
	}

	c.log.Debug("efetch complete",
		zap.Int("requested", len(ids)),
		zap.Int("articles", len(articles)),
		zap.Int("records", len(records)))
	return records, nil
}

// params returns the parameters common to every request. The contact email
// and tool name identify the caller to NCBI.
func (c *Client) params() url.Values {
	p := url.Values{
		"db":      {c.cfg.Database},
		"retmode": {"xml"},
	}
	if c.cfg.Tool != "" {
		p.Set("tool", c.cfg.Tool)
	}
	if c.cfg.Contact != "" {
		p.Set("email", c.cfg.Contact)
	}
	return p
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/" + path
}
