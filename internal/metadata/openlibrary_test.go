package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenLibraryClient(serverURL string) *OpenLibraryClient {
	return &OpenLibraryClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    serverURL,
	}
}

func TestOpenLibraryClient_LookupISBN_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/isbn/9780306406157.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"title": "Flow Measurement Handbook",
			"by_statement": "by Roger C. Baker",
			"number_of_pages": 524
		}`))
	}))
	defer server.Close()

	client := newTestOpenLibraryClient(server.URL)

	result, err := client.LookupISBN(context.Background(), "9780306406157")
	require.NoError(t, err)
	assert.Equal(t, "Flow Measurement Handbook", result.Title)
	assert.Equal(t, "by Roger C. Baker", result.Author)
	assert.Equal(t, 524, result.PageCount)
	assert.Equal(t, "openlibrary", result.Source)
}

func TestOpenLibraryClient_LookupISBN_TitleOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title": "Obscure Pamphlet"}`))
	}))
	defer server.Close()

	client := newTestOpenLibraryClient(server.URL)

	result, err := client.LookupISBN(context.Background(), "9780000000000")
	require.NoError(t, err)
	assert.Equal(t, "Obscure Pamphlet", result.Title)
	assert.Empty(t, result.Author)
	assert.Zero(t, result.PageCount)
}

func TestOpenLibraryClient_LookupISBN_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestOpenLibraryClient(server.URL)

	_, err := client.LookupISBN(context.Background(), "9780000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenLibraryClient_LookupISBN_EmptyTitleIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"by_statement": "somebody", "number_of_pages": 100}`))
	}))
	defer server.Close()

	client := newTestOpenLibraryClient(server.URL)

	_, err := client.LookupISBN(context.Background(), "9780000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenLibraryClient_LookupISBN_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := newTestOpenLibraryClient(server.URL)

	_, err := client.LookupISBN(context.Background(), "9780000000000")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestOpenLibraryClient_LookupISBN_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestOpenLibraryClient(server.URL)

	_, err := client.LookupISBN(context.Background(), "9780000000000")
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestOpenLibraryClient_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestOpenLibraryClient(server.URL)

	assert.NoError(t, client.Ping(context.Background()))
}

func TestOpenLibraryClient_Ping_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestOpenLibraryClient(server.URL)

	assert.ErrorIs(t, client.Ping(context.Background()), ErrSourceUnavailable)
}
