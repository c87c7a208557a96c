package metadata

import "context"

// Chain tries each source in order and returns the first acceptable result.
// Which sources participate is decided at construction time, after the
// startup probes; a source that failed its probe is simply never passed in.
type Chain struct {
	sources []Source
}

// NewChain creates a lookup chain over the given sources, queried in the
// order they are passed.
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

// Lookup queries the sources in priority order and returns the first result
// carrying a title or an author. Per-source failures are swallowed; when
// every source fails or returns nothing usable, ErrNotFound is returned.
func (c *Chain) Lookup(ctx context.Context, isbn string) (*Result, error) {
	for _, source := range c.sources {
		result, err := source.LookupISBN(ctx, isbn)
		if err != nil {
			continue
		}
		if result.Title != "" || result.Author != "" {
			return result, nil
		}
	}
	return nil, ErrNotFound
}
