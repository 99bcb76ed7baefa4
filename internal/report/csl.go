// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"io"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/affilscan/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format so that output is consumable by Pandoc and reference managers.
// Only the non-academic authors of a record are listed.
type CSLItem struct {
	ID     string    `yaml:"id"`
	Type   string    `yaml:"type"`
	Title  string    `yaml:"title"`
	Author []CSLName `yaml:"author,omitempty"`
	Issued *CSLDate  `yaml:"issued,omitempty"`
	PMID   string    `yaml:"PMID,omitempty"`
	Note   string    `yaml:"note,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts,omitempty"`
	Literal   string  `yaml:"literal,omitempty"`
}

// WriteCSL writes the records as a CSL-YAML list.
func WriteCSL(w io.Writer, records []types.ResultRecord) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

func toCSLItem(r types.ResultRecord) CSLItem {
	item := CSLItem{
		ID:    "pmid:" + r.PubmedID,
		Type:  "article-journal",
		Title: r.Title,
	}
	if r.PubmedID != types.Unknown {
		item.PMID = r.PubmedID
	}
	for _, a := range r.NonAcademicAuthors {
		item.Author = append(item.Author, parseAuthorName(a))
	}
	item.Issued = cslDate(r.PublicationDate)
	if len(r.CompanyAffiliations) > 0 {
		item.Note = "Company affiliations: " + strings.Join(r.CompanyAffiliations, listSep)
	}
	return item
}

// cslDate converts "2021", "2021-06", "2021-Jun-03" to date-parts. Other
// strings (MedlineDate ranges) become a literal date; Unknown is omitted.
func cslDate(s string) *CSLDate {
	if s == "" || s == types.Unknown {
		return nil
	}
	parts := strings.Split(s, "-")
	if len(parts) > 3 {
		return &CSLDate{Literal: s}
	}
	var nums []int
	for i, p := range parts {
		n, ok := datePart(i, p)
		if !ok {
			return &CSLDate{Literal: s}
		}
		nums = append(nums, n)
	}
	return &CSLDate{DateParts: [][]int{nums}}
}

// datePart parses the i-th component of a date; months may be names.
func datePart(i int, p string) (int, bool) {
	if n, err := strconv.Atoi(p); err == nil {
		return n, true
	}
	if i == 1 {
		if t, err := time.Parse("Jan", p); err == nil {
			return int(t.Month()), true
		}
	}
	return 0, false
}

// parseAuthorName splits a full name string into CSL family/given parts.
// It splits on the last space: everything before is given, the last token
// is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
