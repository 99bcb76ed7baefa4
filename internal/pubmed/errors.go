// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"errors"
	"fmt"
)

// Failure kinds. Use errors.Is to test a returned error against them.
var (
	// ErrTransport covers network errors and non-2xx responses.
	ErrTransport = errors.New("transport failure")

	// ErrParse covers malformed XML and E-utilities error documents.
	ErrParse = errors.New("parse failure")
)

// FetchError is returned by Search and FetchArticles.
type FetchError struct {
	// Op is "esearch" or "efetch".
	Op string
	// Kind is ErrTransport or ErrParse.
	Kind error
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *FetchError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func transportErr(op string, err error) error {
	return &FetchError{Op: op, Kind: ErrTransport, Err: err}
}

func parseErr(op string, err error) error {
	return &FetchError{Op: op, Kind: ErrParse, Err: err}
}
