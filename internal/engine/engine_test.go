package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SYLESH-1125/SIH/internal/cache"
	"github.com/SYLESH-1125/SIH/internal/config"
	"github.com/SYLESH-1125/SIH/internal/knowledge"
	"github.com/SYLESH-1125/SIH/internal/observability"
	"github.com/SYLESH-1125/SIH/internal/retrieval"
)

func julyClock() time.Time {
	return time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)
}

func newTestAssistant(t *testing.T, opts ...Option) *Assistant {
	t.Helper()
	store := knowledge.NewBuiltinStore()
	cfg := config.DefaultConfig().Retrieval
	opts = append([]Option{WithClock(julyClock)}, opts...)
	assistant, err := New(store, cfg, observability.NopLogger(), opts...)
	require.NoError(t, err)
	return assistant
}

func TestAssistant_AnswerRetrievalPath(t *testing.T) {
	assistant := newTestAssistant(t)

	resp := assistant.Answer(context.Background(), AnswerRequest{
		Query:    "how to grow rice in flooded fields",
		Language: "en",
	})

	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Answer)
	assert.Equal(t, ModeRetrieval, resp.Mode)
	assert.Equal(t, "en", resp.Language)
	assert.Greater(t, resp.Confidence, 0.0)
	assert.LessOrEqual(t, resp.Confidence, 1.0)
	require.NotEmpty(t, resp.Sources)
	assert.Equal(t, "rice", resp.Sources[0].Item)
}

func TestAssistant_AnswerCannedPath(t *testing.T) {
	assistant := newTestAssistant(t)

	resp := assistant.Answer(context.Background(), AnswerRequest{
		Query:    "zzz qqq xxx",
		Language: "en",
	})

	assert.NotEmpty(t, resp.Answer)
	assert.Equal(t, ModeCanned, resp.Mode)
	assert.Empty(t, resp.Sources)
	assert.Equal(t, retrieval.CannedConfidence, resp.Confidence)
}

func TestAssistant_AnswerNeverEmpty(t *testing.T) {
	assistant := newTestAssistant(t)

	queries := []AnswerRequest{
		{Query: "rice", Language: "en"},
		{Query: "!!!", Language: "en"},
		{Query: "நெல்", Language: "ta"},
		{Query: "anything", Language: "xx"},
		{Query: "wheat"},
	}
	for _, req := range queries {
		resp := assistant.Answer(context.Background(), req)
		assert.NotEmpty(t, resp.Answer, "query %q", req.Query)
	}
}

func TestAssistant_DetectedCropOverridesProfile(t *testing.T) {
	assistant := newTestAssistant(t)

	// Query names rice, profile says wheat; rice carries the boost.
	// Rank is not asserted because unboosted entries whose text
	// mentions the query terms can still score higher.
	resp := assistant.Answer(context.Background(), AnswerRequest{
		Query:    "paddy cultivation tips",
		Language: "en",
		CropType: "wheat",
	})

	require.NotEmpty(t, resp.Sources)
	var rice, wheat *Source
	for i := range resp.Sources {
		switch resp.Sources[i].Item {
		case "rice":
			rice = &resp.Sources[i]
		case "wheat":
			wheat = &resp.Sources[i]
		}
	}
	require.NotNil(t, rice, "boosted rice source missing")
	assert.GreaterOrEqual(t, rice.Similarity, 0.25)
	if wheat != nil {
		assert.Greater(t, rice.Similarity, wheat.Similarity)
	}
}

func TestAssistant_SeasonalFragmentAppended(t *testing.T) {
	assistant := newTestAssistant(t)

	resp := assistant.Answer(context.Background(), AnswerRequest{
		Query:    "how to grow rice",
		Language: "en",
	})
	assert.Contains(t, resp.Answer, "Kharif")
}

func TestAssistant_ResponseCacheRoundTrip(t *testing.T) {
	client := cache.NewMemoryClient(100)
	assistant := newTestAssistant(t, WithAnswerCache(client, time.Minute))

	req := AnswerRequest{Query: "how to grow rice", Language: "en", SoilType: "clay"}

	first := assistant.Answer(context.Background(), req)
	assert.False(t, first.Cached)

	second := assistant.Answer(context.Background(), req)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Answer, second.Answer)
	assert.Equal(t, first.Confidence, second.Confidence)

	// A different profile is a different cache key.
	third := assistant.Answer(context.Background(), AnswerRequest{
		Query: "how to grow rice", Language: "en", SoilType: "sandy",
	})
	assert.False(t, third.Cached)
	assert.NotEqual(t, first.Answer, third.Answer)
}

func TestNew_EmptyStoreFails(t *testing.T) {
	store := knowledge.NewStore(nil)
	_, err := New(store, config.DefaultConfig().Retrieval, observability.NopLogger())
	assert.ErrorIs(t, err, ErrIndexBuild)
}
