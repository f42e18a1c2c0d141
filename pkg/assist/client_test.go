package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/query", func(w http.ResponseWriter, r *http.Request) {
		var req QueryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Query == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "query must not be empty"})
			return
		}
		_ = json.NewEncoder(w).Encode(QueryResponse{
			ID:         "resp-1",
			Answer:     "Rice cultivation: Plant during monsoon season.",
			Sources:    []Source{{Category: "crops", Item: "rice", Similarity: 0.82}},
			Confidence: 0.8,
			Language:   req.Language,
			Mode:       "retrieval",
		})
	})
	mux.HandleFunc("GET /api/v1/kb/categories", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(CategoriesResponse{
			Categories: []string{"crops", "soil"},
			Entries:    23,
		})
	})
	mux.HandleFunc("GET /api/v1/kb/entries", func(w http.ResponseWriter, r *http.Request) {
		entries := []EntryKey{{Category: "crops", Item: "rice"}, {Category: "soil", Item: "clay"}}
		if r.URL.Query().Get("category") == "soil" {
			entries = entries[1:]
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"entries": entries})
	})
	mux.HandleFunc("GET /api/v1/kb/entries/crops/rice", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Entry{
			Category:     "crops",
			Item:         "rice",
			Translations: map[string]string{"en": "Rice cultivation: Plant during monsoon season."},
		})
	})
	mux.HandleFunc("GET /api/v1/kb/entries/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "entry not found"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientQuery(t *testing.T) {
	srv := newTestServer(t)
	client, err := NewClient(ClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := client.Query(context.Background(), QueryRequest{
		Query:    "how do I grow rice",
		Language: "en",
	})
	require.NoError(t, err)

	assert.Equal(t, "resp-1", resp.ID)
	assert.Equal(t, "retrieval", resp.Mode)
	assert.Equal(t, "en", resp.Language)
	require.Len(t, resp.Sources, 1)
	assert.Equal(t, "rice", resp.Sources[0].Item)
}

func TestClientQueryAPIError(t *testing.T) {
	srv := newTestServer(t)
	client, err := NewClient(ClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Query(context.Background(), QueryRequest{Language: "en"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query must not be empty")
}

func TestClientCategories(t *testing.T) {
	srv := newTestServer(t)
	client, err := NewClient(ClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := client.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"crops", "soil"}, resp.Categories)
	assert.Equal(t, 23, resp.Entries)
}

func TestClientEntriesFilter(t *testing.T) {
	srv := newTestServer(t)
	client, err := NewClient(ClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	all, err := client.Entries(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	soil, err := client.Entries(context.Background(), "soil")
	require.NoError(t, err)
	require.Len(t, soil, 1)
	assert.Equal(t, "clay", soil[0].Item)
}

func TestClientEntry(t *testing.T) {
	srv := newTestServer(t)
	client, err := NewClient(ClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	entry, err := client.Entry(context.Background(), "crops", "rice")
	require.NoError(t, err)
	assert.Equal(t, "rice", entry.Item)
	assert.Contains(t, entry.Translations["en"], "monsoon")

	_, err = client.Entry(context.Background(), "crops", "dragonfruit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry not found")
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(ClientConfig{})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8002", client.baseURL)
}
