// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package email finds email addresses in free text.
package email

import "regexp"

// pattern matches local-part@domain.tld with a TLD of at least two letters.
var pattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// ExtractFirst returns the leftmost email address in text.
func ExtractFirst(text string) (string, bool) {
	loc := pattern.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:loc[1]], true
}
