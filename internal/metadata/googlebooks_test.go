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

func newTestGoogleBooksClient(serverURL, apiKey string) *GoogleBooksClient {
	return &GoogleBooksClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    serverURL,
		apiKey:     apiKey,
	}
}

func TestGoogleBooksClient_Ready_NoKey(t *testing.T) {
	client := newTestGoogleBooksClient("http://unused.invalid", "")

	assert.False(t, client.Ready(context.Background()))
}

func TestGoogleBooksClient_Ready_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		w.Write([]byte(`{"totalItems": 0}`))
	}))
	defer server.Close()

	client := newTestGoogleBooksClient(server.URL, "some-key")

	assert.True(t, client.Ready(context.Background()))
}

func TestGoogleBooksClient_Ready_ErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid"}}`))
	}))
	defer server.Close()

	client := newTestGoogleBooksClient(server.URL, "bad-key")

	assert.False(t, client.Ready(context.Background()))
}

func TestGoogleBooksClient_Ready_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestGoogleBooksClient(server.URL, "some-key")

	assert.False(t, client.Ready(context.Background()))
}

func TestGoogleBooksClient_LookupISBN_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "isbn:9780134685991", r.URL.Query().Get("q"))
		assert.Equal(t, "some-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{
			"totalItems": 1,
			"items": [{
				"volumeInfo": {
					"title": "Effective Java",
					"authors": ["Joshua Bloch", "Somebody Else"],
					"pageCount": 412
				}
			}]
		}`))
	}))
	defer server.Close()

	client := newTestGoogleBooksClient(server.URL, "some-key")

	result, err := client.LookupISBN(context.Background(), "9780134685991")
	require.NoError(t, err)
	assert.Equal(t, "Effective Java", result.Title)
	assert.Equal(t, "Joshua Bloch", result.Author)
	assert.Equal(t, 412, result.PageCount)
	assert.Equal(t, "googlebooks", result.Source)
}

func TestGoogleBooksClient_LookupISBN_NoItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalItems": 0}`))
	}))
	defer server.Close()

	client := newTestGoogleBooksClient(server.URL, "some-key")

	_, err := client.LookupISBN(context.Background(), "9780000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoogleBooksClient_LookupISBN_EmptyVolumeInfoIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalItems": 1, "items": [{"volumeInfo": {"pageCount": 99}}]}`))
	}))
	defer server.Close()

	client := newTestGoogleBooksClient(server.URL, "some-key")

	_, err := client.LookupISBN(context.Background(), "9780000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoogleBooksClient_LookupISBN_ErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded"}}`))
	}))
	defer server.Close()

	client := newTestGoogleBooksClient(server.URL, "some-key")

	_, err := client.LookupISBN(context.Background(), "9780000000000")
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestGoogleBooksClient_LookupISBN_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>splash page</html>`))
	}))
	defer server.Close()

	client := newTestGoogleBooksClient(server.URL, "some-key")

	_, err := client.LookupISBN(context.Background(), "9780000000000")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
