package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/booktracer/internal/metadata"
)

// Source implementations
var _ metadata.Source = (*metadata.OpenLibraryClient)(nil)
var _ metadata.Source = (*metadata.GoogleBooksClient)(nil)
