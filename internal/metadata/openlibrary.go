package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const userAgent = "BookTracer/1.0"

// OpenLibraryClient fetches book metadata from the Open Library API. It
// needs no credential and is the primary source in the lookup chain.
type OpenLibraryClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewOpenLibraryClient creates a new Open Library API client.
func NewOpenLibraryClient(timeout time.Duration) *OpenLibraryClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OpenLibraryClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://openlibrary.org",
	}
}

func (c *OpenLibraryClient) Name() string {
	return "openlibrary"
}

// Ping reports whether the Open Library host is reachable (any 2xx on the
// home page).
func (c *OpenLibraryClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrSourceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ErrSourceUnavailable
	}
	return nil
}

// LookupISBN fetches the ISBN-keyed edition resource. A result with a
// non-empty title is returned even when the author is unknown; the
// by_statement field stands in for the author list, which would otherwise
// need one extra request per author reference.
func (c *OpenLibraryClient) LookupISBN(ctx context.Context, isbn string) (*Result, error) {
	url := fmt.Sprintf("%s/isbn/%s.json", c.baseURL, isbn)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrSourceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, ErrSourceUnavailable
	}

	var edition openLibraryEdition
	if err := json.NewDecoder(resp.Body).Decode(&edition); err != nil {
		return nil, ErrInvalidResponse
	}

	if edition.Title == "" {
		return nil, ErrNotFound
	}

	return &Result{
		Title:     edition.Title,
		Author:    edition.ByStatement,
		PageCount: edition.NumberOfPages,
		Source:    c.Name(),
	}, nil
}

// Open Library API response types (internal)

type openLibraryEdition struct {
	Title         string `json:"title"`
	ByStatement   string `json:"by_statement"`
	NumberOfPages int    `json:"number_of_pages"`
}
