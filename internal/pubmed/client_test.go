// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/affilscan/internal/httputil"
	"github.com/pdiddy/affilscan/pkg/types"
)

// --- fakes ---

// fakeGetter records calls and returns a canned body or error.
type fakeGetter struct {
	body   string
	err    error
	calls  int
	urls   []string
	params []url.Values
}

func (f *fakeGetter) Get(_ context.Context, rawURL string, params url.Values) ([]byte, error) {
	f.calls++
	f.urls = append(f.urls, rawURL)
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.body), nil
}

func testCfg(baseURL string) types.EntrezConfig {
	cfg := types.DefaultConfig().Entrez
	cfg.BaseURL = baseURL
	cfg.MaxResults = 3
	return cfg
}

// eutilsServer serves esearch and efetch bodies and records the queries.
func eutilsServer(t *testing.T, status int, esearch, efetch string) (*httptest.Server, *[]url.Values) {
	t.Helper()
	var seen []url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.Query())
		w.Header().Set("Content-Type", "text/xml")
		w.WriteHeader(status)
		switch {
		case strings.HasSuffix(r.URL.Path, "/esearch.fcgi"):
			fmt.Fprint(w, esearch)
		case strings.HasSuffix(r.URL.Path, "/efetch.fcgi"):
			fmt.Fprint(w, efetch)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(ts.Close)
	return ts, &seen
}

// --- Search ---

func TestSearch(t *testing.T) {
	ts, seen := eutilsServer(t, http.StatusOK, sampleESearchXML, "")

	cfg := testCfg(ts.URL + "/")
	cfg.Contact = "ops@example.com"
	c := NewClient(httputil.NewClient(cfg.HTTPConfig), cfg, nil, nil)

	res, err := c.Search(context.Background(), "mrna vaccines")
	require.NoError(t, err)

	assert.Equal(t, []string{"38000003", "38000001", "38000002"}, res.IDs, "server order, blanks dropped")
	assert.Equal(t, 1234, res.Count)
	assert.Equal(t, `"mrna vaccines"[MeSH Terms]`, res.QueryTranslation)

	require.Len(t, *seen, 1)
	q := (*seen)[0]
	assert.Equal(t, "pubmed", q.Get("db"))
	assert.Equal(t, "mrna vaccines", q.Get("term"))
	assert.Equal(t, "3", q.Get("retmax"))
	assert.Equal(t, "xml", q.Get("retmode"))
	assert.Equal(t, "affilscan", q.Get("tool"))
	assert.Equal(t, "ops@example.com", q.Get("email"))
}

func TestSearchNoMatches(t *testing.T) {
	ts, _ := eutilsServer(t, http.StatusOK, emptyESearchXML, "")
	cfg := testCfg(ts.URL)
	c := NewClient(httputil.NewClient(cfg.HTTPConfig), cfg, nil, nil)

	res, err := c.Search(context.Background(), "zzqqxx")
	require.NoError(t, err)
	assert.Empty(t, res.IDs)
	assert.Equal(t, 0, res.Count)
}

func TestSearchOmitsContactWhenUnset(t *testing.T) {
	g := &fakeGetter{body: emptyESearchXML}
	c := NewClient(g, testCfg("http://eutils.test"), nil, nil)

	_, err := c.Search(context.Background(), "q")
	require.NoError(t, err)
	require.Equal(t, 1, g.calls)
	assert.Equal(t, "http://eutils.test/esearch.fcgi", g.urls[0])
	_, hasEmail := g.params[0]["email"]
	assert.False(t, hasEmail)
}

func TestSearchFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   error
	}{
		{"http error", http.StatusInternalServerError, sampleESearchXML, ErrTransport},
		{"malformed xml", http.StatusOK, "<eSearchResult><IdList><Id>1</Id>", ErrParse},
		{"empty body", http.StatusOK, "", ErrParse},
		{"error document", http.StatusOK, errorESearchXML, ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, _ := eutilsServer(t, tt.status, tt.body, "")
			cfg := testCfg(ts.URL)
			c := NewClient(httputil.NewClient(cfg.HTTPConfig), cfg, nil, nil)

			res, err := c.Search(context.Background(), "q")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Empty(t, res.IDs)

			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, "esearch", fe.Op)
		})
	}
}

func TestSearchTransportErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	c := NewClient(&fakeGetter{err: cause}, testCfg("http://eutils.test"), nil, nil)

	_, err := c.Search(context.Background(), "q")
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrParse)
}

// --- FetchArticles ---

func TestFetchArticlesParsesDocument(t *testing.T) {
	g := &fakeGetter{body: sampleEFetchXML}
	c := NewClient(g, testCfg("http://eutils.test"), nil, nil)

	articles, err := c.FetchArticles(context.Background(), []string{"38000001", "38000002", "38000003"})
	require.NoError(t, err)
	require.Len(t, articles, 4, "one RawArticle per PubmedArticle element")

	assert.Equal(t, "http://eutils.test/efetch.fcgi", g.urls[0])
	assert.Equal(t, "38000001,38000002,38000003", g.params[0].Get("id"))
	assert.Equal(t, "pubmed", g.params[0].Get("db"))
	assert.Equal(t, "xml", g.params[0].Get("retmode"))

	a := articles[0]
	assert.Equal(t, "38000001", a.PMID.Value, "citation PMIDs are not confused with the article PMID")
	assert.Equal(t, "Durability of mRNA vaccine responses.", a.Title.Value)
	assert.Equal(t, "2023-Nov-02", a.PubDate.Format())
	require.Len(t, a.Authors, 2)
	assert.Equal(t, "Ada Lovelace", a.Authors[0].FullName())
	assert.Equal(t, "Moderna Therapeutics", a.Authors[0].Affiliation.Value)
	assert.Equal(t, "Moderna Therapeutics", a.FirstAffiliation.Value)

	c3 := articles[2]
	assert.Equal(t, "Role of KRAS G12C\u00a0inhibitors", c3.Title.Value, "inline markup keeps nested text")
	assert.Equal(t, "2021 Jun-Jul", c3.PubDate.Format())
	assert.Equal(t, "Background text. Methods text; reach us at lab@example.org", c3.Abstract.Value)
	require.Len(t, c3.Authors, 3)
	assert.Equal(t, "", c3.Authors[0].FullName(), "collective names carry no fore/last name")
	assert.False(t, c3.Authors[0].Affiliation.Present)
	assert.Equal(t, "Amgen Inc., Thousand Oaks", c3.Authors[1].Affiliation.Value, "first affiliation only")
	assert.Equal(t, "Amgen Inc., Thousand Oaks", c3.FirstAffiliation.Value, "first affiliation in document order")

	empty := articles[3]
	assert.False(t, empty.PMID.Present)
	assert.False(t, empty.Title.Present)
	assert.Nil(t, empty.PubDate)
	assert.False(t, empty.FirstAffiliation.Present)
}

func TestFetchArticlesEmptyIDsSkipsRequest(t *testing.T) {
	g := &fakeGetter{body: sampleEFetchXML}
	c := NewClient(g, testCfg("http://eutils.test"), nil, nil)

	articles, err := c.FetchArticles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, articles)
	assert.Equal(t, 0, g.calls)

	records, err := c.FetchDetails(context.Background(), []string{})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 0, g.calls)
}

func TestFetchArticlesFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   error
	}{
		{"http error", http.StatusServiceUnavailable, sampleEFetchXML, ErrTransport},
		{"malformed xml", http.StatusOK, "<PubmedArticleSet><PubmedArticle>", ErrParse},
		{"error document", http.StatusOK, "<eFetchResult><ERROR>Empty id list</ERROR></eFetchResult>", ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, _ := eutilsServer(t, tt.status, "", tt.body)
			cfg := testCfg(ts.URL)
			c := NewClient(httputil.NewClient(cfg.HTTPConfig), cfg, nil, nil)

			records, err := c.FetchDetails(context.Background(), []string{"1"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Empty(t, records)
		})
	}
}

// --- FetchDetails ---

func TestFetchDetailsEndToEnd(t *testing.T) {
	ts, _ := eutilsServer(t, http.StatusOK, sampleESearchXML, sampleEFetchXML)
	cfg := testCfg(ts.URL)
	c := NewClient(httputil.NewClient(cfg.HTTPConfig), cfg, nil, nil)

	res, err := c.Search(context.Background(), "mrna")
	require.NoError(t, err)

	records, err := c.FetchDetails(context.Background(), res.IDs)
	require.NoError(t, err)
	require.Len(t, records, 2, "the Stanford-only and author-less articles are dropped")

	a := records[0]
	assert.Equal(t, "38000001", a.PubmedID)
	assert.Equal(t, []string{"Ada Lovelace"}, a.NonAcademicAuthors)
	assert.Equal(t, []string{"Moderna Therapeutics"}, a.CompanyAffiliations)
	assert.Equal(t, "ada@modernatx.com", a.CorrespondingEmail)
	assert.Equal(t, "2023-Nov-02", a.PublicationDate)

	kras := records[1]
	assert.Equal(t, "38000003", kras.PubmedID)
	assert.Equal(t, []string{"Meyer"}, kras.NonAcademicAuthors)
	assert.Equal(t, []string{"Amgen Inc., Thousand Oaks"}, kras.CompanyAffiliations)
	assert.Equal(t, "lab@example.org", kras.CorrespondingEmail)
	assert.Equal(t, "2021 Jun-Jul", kras.PublicationDate)

	for _, r := range records {
		assert.NotEqual(t, "38000002", r.PubmedID)
	}
}
