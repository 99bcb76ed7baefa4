// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/affilscan/pkg/types"
)

// csvHeader is the fixed six-column header.
var csvHeader = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

const listSep = "; "

// WriteCSV writes the header and one row per record. Author and affiliation
// sets are joined with "; "; a missing email is an empty cell.
func WriteCSV(w io.Writer, records []types.ResultRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.PubmedID,
			r.Title,
			r.PublicationDate,
			strings.Join(r.NonAcademicAuthors, listSep),
			strings.Join(r.CompanyAffiliations, listSep),
			r.CorrespondingEmail,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %s: %w", r.PubmedID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
