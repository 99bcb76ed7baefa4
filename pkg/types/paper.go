// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the affilscan pipeline:
// the raw article documents parsed from PubMed, the result records handed to
// the presentation layer, and the configuration structs.
package types

import "strings"

// Unknown is the value reported for a field the source document did not carry.
const Unknown = "unknown"

// Field is a text value that may be absent from the source document.
// The zero value is absent.
type Field struct {
	Value   string
	Present bool
}

// Text returns a present Field holding s, or an absent Field when s is empty.
// PubMed elements that exist but carry no text are treated as absent.
func Text(s string) Field {
	if s == "" {
		return Field{}
	}
	return Field{Value: s, Present: true}
}

// OrUnknown returns the value, or Unknown when the field is absent.
func (f Field) OrUnknown() string {
	if !f.Present {
		return Unknown
	}
	return f.Value
}

// String returns the value, or the empty string when absent.
func (f Field) String() string {
	return f.Value
}

// PubDate holds the JournalIssue/PubDate substructure. Year, Month and Day
// are kept verbatim (PubMed months are often "Jun" rather than "06").
type PubDate struct {
	Year        Field
	Month       Field
	Day         Field
	MedlineDate Field
}

// Format renders the date using only the parts that are present:
// YEAR, YEAR-MONTH or YEAR-MONTH-DAY. Without a year it falls back to the
// unstructured MedlineDate, and without either it returns Unknown.
// A nil date is Unknown.
func (d *PubDate) Format() string {
	if d == nil {
		return Unknown
	}
	if d.Year.Present {
		parts := []string{d.Year.Value}
		if d.Month.Present {
			parts = append(parts, d.Month.Value)
			if d.Day.Present {
				parts = append(parts, d.Day.Value)
			}
		}
		return strings.Join(parts, "-")
	}
	if d.MedlineDate.Present {
		return d.MedlineDate.Value
	}
	return Unknown
}

// RawAuthor is one AuthorList/Author entry. Affiliation is the first
// AffiliationInfo/Affiliation of the author.
type RawAuthor struct {
	ForeName    Field
	LastName    Field
	Affiliation Field
}

// FullName returns "ForeName LastName" with each part trimmed, so a missing
// forename does not leave a leading space. It is empty when both are absent.
func (a RawAuthor) FullName() string {
	fore := strings.TrimSpace(a.ForeName.Value)
	last := strings.TrimSpace(a.LastName.Value)
	return strings.TrimSpace(fore + " " + last)
}

// RawArticle is one PubmedArticle element of an EFetch response. It lives
// only for a single parse pass.
type RawArticle struct {
	PMID    Field
	Title   Field
	PubDate *PubDate
	Authors []RawAuthor

	// FirstAffiliation is the first Author/AffiliationInfo/Affiliation in
	// document order, whichever author carries it.
	FirstAffiliation Field

	// Abstract joins every AbstractText section with a single space.
	Abstract Field
}

// ResultRecord is a paper with at least one author affiliated with a
// for-profit organization. Records are built once and never mutated.
type ResultRecord struct {
	// PubmedID is the article PMID, or Unknown.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title, or Unknown.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is YEAR[-MONTH[-DAY]], a MedlineDate string, or Unknown.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists corporate-affiliated author names, deduplicated,
	// in first-seen order. Never empty.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations lists the affiliation strings of those authors,
	// deduplicated, in first-seen order.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the first email found in the title, first
	// affiliation and abstract. It is not linked to a specific author.
	CorrespondingEmail string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`
}

// HasEmail reports whether an email was found for the record.
func (r ResultRecord) HasEmail() bool {
	return r.CorrespondingEmail != ""
}
