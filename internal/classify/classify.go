// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether an author affiliation belongs to a
// for-profit organization or to an academic or governmental institution.
//
// Classification is a case-insensitive substring match against two keyword
// sets. An affiliation is corporate only when at least one corporate keyword
// matches and no academic keyword does; every other string, including the
// empty string, is academic.
package classify

import (
	"strings"

	"golang.org/x/text/cases"
)

// Affiliation is the outcome of classifying an affiliation string.
type Affiliation int

const (
	Academic Affiliation = iota
	Corporate
)

// String returns "academic" or "corporate".
func (a Affiliation) String() string {
	if a == Corporate {
		return "corporate"
	}
	return "academic"
}

// Classifier applies a Ruleset. The zero value has no rules and classifies
// everything as Academic; use New or Default.
type Classifier struct {
	rules Ruleset
}

// New returns a Classifier using rules.
func New(rules Ruleset) *Classifier {
	return &Classifier{rules: rules}
}

// Default returns a Classifier using DefaultRuleset.
func Default() *Classifier {
	return New(DefaultRuleset())
}

// Rules returns the classifier's ruleset.
func (c *Classifier) Rules() Ruleset {
	return c.rules
}

// Classify returns Corporate iff text contains a corporate keyword and no
// academic keyword.
func (c *Classifier) Classify(text string) Affiliation {
	if text == "" {
		return Academic
	}
	folded := fold(text)
	if !containsAny(folded, c.rules.corporate) {
		return Academic
	}
	if containsAny(folded, c.rules.academic) {
		return Academic
	}
	return Corporate
}

// IsCorporate is shorthand for Classify(text) == Corporate.
func (c *Classifier) IsCorporate(text string) bool {
	return c.Classify(text) == Corporate
}

// Matches reports which keywords of each set occur in text. It is used for
// diagnostics only.
func (c *Classifier) Matches(text string) (corporate, academic []string) {
	folded := fold(text)
	for _, kw := range c.rules.corporate {
		if strings.Contains(folded, kw) {
			corporate = append(corporate, kw)
		}
	}
	for _, kw := range c.rules.academic {
		if strings.Contains(folded, kw) {
			academic = append(academic, kw)
		}
	}
	return corporate, academic
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// fold case-folds s. A Caser carries state, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
