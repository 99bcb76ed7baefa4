// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble turns one parsed PubMed article into a result record,
// keeping only articles with at least one corporate-affiliated author.
package assemble

import (
	"go.uber.org/zap"

	"github.com/pdiddy/affilscan/internal/classify"
	"github.com/pdiddy/affilscan/internal/email"
	"github.com/pdiddy/affilscan/pkg/types"
)

// Assembler builds ResultRecords from RawArticles.
type Assembler struct {
	classifier *classify.Classifier
	log        *zap.Logger
}

// New returns an Assembler. A nil classifier uses the default ruleset and a
// nil logger discards diagnostics.
func New(classifier *classify.Classifier, log *zap.Logger) *Assembler {
	if classifier == nil {
		classifier = classify.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{classifier: classifier, log: log}
}

// Assemble returns the record for article and true, or false when no author
// is corporate-affiliated. Missing fields fall back to types.Unknown.
func (a *Assembler) Assemble(article types.RawArticle) (types.ResultRecord, bool) {
	pmid := article.PMID.OrUnknown()

	var authors, affiliations orderedSet
	for _, author := range article.Authors {
		aff := author.Affiliation.Value
		if !a.classifier.IsCorporate(aff) {
			continue
		}
		authors.add(author.FullName())
		affiliations.add(aff)
	}

	if authors.empty() {
		a.log.Debug("no non-academic authors",
			zap.String("pmid", pmid),
			zap.Int("authors", len(article.Authors)))
		return types.ResultRecord{}, false
	}

	return types.ResultRecord{
		PubmedID:            pmid,
		Title:               article.Title.OrUnknown(),
		PublicationDate:     article.PubDate.Format(),
		NonAcademicAuthors:  authors.items,
		CompanyAffiliations: affiliations.items,
		CorrespondingEmail:  correspondingEmail(article),
	}, true
}

// correspondingEmail scans title, first affiliation and abstract for an
// address. The match is not tied to any author. Without a first affiliation
// there is nothing to scan.
func correspondingEmail(article types.RawArticle) string {
	if !article.FirstAffiliation.Present {
		return ""
	}
	blob := article.Title.Value + " " + article.FirstAffiliation.Value + " " + article.Abstract.Value
	addr, _ := email.ExtractFirst(blob)
	return addr
}

// orderedSet keeps the first occurrence of each non-empty string.
type orderedSet struct {
	items []string
	seen  map[string]bool
}

func (s *orderedSet) add(v string) {
	if v == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[v] {
		return
	}
	s.seen[v] = true
	s.items = append(s.items, v)
}

func (s *orderedSet) empty() bool {
	return len(s.items) == 0
}
