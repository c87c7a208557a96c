package metadata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// GoogleBooksClient queries the Google Books volumes API. It is the
// secondary source in the lookup chain and only participates in a session
// after Ready succeeds.
type GoogleBooksClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewGoogleBooksClient creates a new Google Books API client. An empty
// apiKey is a valid, handled state; the client simply never reports ready.
func NewGoogleBooksClient(apiKey string, timeout time.Duration) *GoogleBooksClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoogleBooksClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://www.googleapis.com/books/v1",
		apiKey:  apiKey,
	}
}

func (c *GoogleBooksClient) Name() string {
	return "googlebooks"
}

// HasKey reports whether an API key is configured, without any network
// traffic.
func (c *GoogleBooksClient) HasKey() bool {
	return c.apiKey != ""
}

// Ready reports whether the client may be used this session: a key must be
// configured and a minimal trial request must succeed without an error
// payload. Any network, HTTP or parse failure yields not-ready; Ready never
// returns an error.
func (c *GoogleBooksClient) Ready(ctx context.Context) bool {
	if c.apiKey == "" {
		return false
	}

	// Tiny request; fine even when totalItems is 0.
	probeURL := c.baseURL + "/volumes?q=isbn:0000000000000&maxResults=1&fields=totalItems&key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}

	var probe struct {
		Error *googleBooksError `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&probe); err != nil {
		return false
	}
	return probe.Error == nil
}

// LookupISBN searches the volumes endpoint for the ISBN and accepts the
// first entry carrying a title or an author.
func (c *GoogleBooksClient) LookupISBN(ctx context.Context, isbn string) (*Result, error) {
	q := url.Values{}
	q.Set("q", "isbn:"+isbn)
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/volumes?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrSourceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrSourceUnavailable
	}

	var volumes googleBooksVolumes
	if err := json.NewDecoder(resp.Body).Decode(&volumes); err != nil {
		return nil, ErrInvalidResponse
	}
	if volumes.Error != nil {
		return nil, ErrSourceUnavailable
	}
	if len(volumes.Items) == 0 {
		return nil, ErrNotFound
	}

	info := volumes.Items[0].VolumeInfo
	result := &Result{
		Title:     info.Title,
		PageCount: info.PageCount,
		Source:    c.Name(),
	}
	if len(info.Authors) > 0 {
		result.Author = info.Authors[0]
	}

	if result.Title == "" && result.Author == "" {
		return nil, ErrNotFound
	}
	return result, nil
}

// Google Books API response types (internal)

type googleBooksVolumes struct {
	TotalItems int                 `json:"totalItems"`
	Items      []googleBooksVolume `json:"items"`
	Error      *googleBooksError   `json:"error"`
}

type googleBooksVolume struct {
	VolumeInfo googleBooksVolumeInfo `json:"volumeInfo"`
}

type googleBooksVolumeInfo struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	PageCount int      `json:"pageCount"`
}

type googleBooksError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
