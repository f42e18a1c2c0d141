package rpc

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SYLESH-1125/SIH/internal/config"
	"github.com/SYLESH-1125/SIH/internal/engine"
	"github.com/SYLESH-1125/SIH/internal/knowledge"
	"github.com/SYLESH-1125/SIH/internal/observability"
)

func newTestHandler(t *testing.T) (string, http.Handler) {
	t.Helper()
	store := knowledge.NewBuiltinStore()
	assistant, err := engine.New(store, config.DefaultConfig().Retrieval, observability.NopLogger())
	require.NoError(t, err)
	return NewAssistService(observability.NopLogger(), assistant).Handler()
}

func TestAssistService_Answer(t *testing.T) {
	path, handler := newTestHandler(t)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	body, err := json.Marshal(engine.AnswerRequest{
		Query:    "how to grow rice",
		Language: "en",
	})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var answer engine.AnswerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&answer))
	assert.NotEmpty(t, answer.Answer)
	assert.Equal(t, "en", answer.Language)
}

func TestAssistService_AnswerRejectsEmptyQuery(t *testing.T) {
	path, handler := newTestHandler(t)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Post(server.URL+path, "application/json", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)
	defer resp.Body.Close()

	// Connect maps CodeInvalidArgument to HTTP 400.
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
