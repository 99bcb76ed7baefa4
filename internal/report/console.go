// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/affilscan/pkg/types"
)

// WriteConsole prints each record as a labeled block followed by a rule.
// Styling is dropped when w is not a terminal.
func WriteConsole(w io.Writer, records []types.ResultRecord) error {
	r := lipgloss.NewRenderer(w)
	heading := r.NewStyle().Bold(true)
	label := r.NewStyle().Faint(true)

	for _, rec := range records {
		email := rec.CorrespondingEmail
		if email == "" {
			email = "none"
		}
		lines := []string{
			heading.Render(fmt.Sprintf("%s: %s (%s)", rec.PubmedID, rec.Title, rec.PublicationDate)),
			"  " + label.Render("Authors:") + " " + strings.Join(rec.NonAcademicAuthors, ", "),
			"  " + label.Render("Companies:") + " " + strings.Join(rec.CompanyAffiliations, ", "),
			"  " + label.Render("Email:") + " " + email,
			strings.Repeat("-", 80),
		}
		if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the records as an indented JSON array.
func WriteJSON(w io.Writer, records []types.ResultRecord) error {
	if records == nil {
		records = []types.ResultRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
