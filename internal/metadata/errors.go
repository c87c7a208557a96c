package metadata

import "errors"

// ErrNotFound indicates the source responded but had no usable metadata for
// the ISBN.
var ErrNotFound = errors.New("no metadata found for ISBN")

// ErrSourceUnavailable indicates the source could not be reached or refused
// the request.
var ErrSourceUnavailable = errors.New("metadata source unavailable")

// ErrInvalidResponse indicates the source returned a body that could not be
// parsed.
var ErrInvalidResponse = errors.New("metadata source returned an invalid response")
