// Package metadata looks up book metadata by ISBN across external
// bibliographic sources, trying them in a fixed priority order.
package metadata

import "context"

// Result contains the metadata extracted from a lookup source. Author and
// PageCount may be empty; a Result is only returned when it carries at least
// a non-empty title or author.
type Result struct {
	Title     string
	Author    string
	PageCount int
	Source    string
}

// Source is a single external bibliographic source keyed by ISBN.
type Source interface {
	// Name returns the source identifier (e.g. "openlibrary").
	Name() string

	// LookupISBN fetches metadata for a canonical 13-digit ISBN. Failures
	// are reported as ErrNotFound, ErrSourceUnavailable or
	// ErrInvalidResponse so callers can distinguish "no data" from "source
	// is down".
	LookupISBN(ctx context.Context, isbn string) (*Result, error)
}
