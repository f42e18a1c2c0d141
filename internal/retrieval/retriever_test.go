package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SYLESH-1125/SIH/internal/index"
	"github.com/SYLESH-1125/SIH/internal/knowledge"
	"github.com/SYLESH-1125/SIH/internal/observability"
)

func newTestRetriever(t *testing.T, opts Options) *Retriever {
	t.Helper()
	store := knowledge.NewBuiltinStore()
	builder := index.NewBuilder(store, index.DefaultVectorizerOptions(), observability.NopLogger())
	return NewRetriever(store, index.NewCache(builder), opts, observability.NopLogger())
}

func TestRetriever_RelevantQueryFindsEntry(t *testing.T) {
	r := newTestRetriever(t, DefaultOptions())

	results := r.Retrieve("how to grow rice in flooded fields", "en", "", "")

	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 3)
	assert.Equal(t, "rice", results[0].Item)
	assert.Greater(t, results[0].Similarity, 0.0)

	// Results are ordered best-first.
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Similarity, results[i].Similarity)
	}
}

func TestRetriever_GibberishReturnsNothing(t *testing.T) {
	// Single-entry store: the gibberish query shares no character
	// n-grams with the fitted vocabulary.
	store := knowledge.NewStore(map[string]map[string]map[string]string{
		"crops": {"rice": {
			"en": "Rice is a staple grain crop. Best grown in flooded fields. Plant during monsoon.",
		}},
	})
	builder := index.NewBuilder(store, index.DefaultVectorizerOptions(), observability.NopLogger())
	r := NewRetriever(store, index.NewCache(builder), DefaultOptions(), observability.NopLogger())

	results := r.Retrieve("asdasdqwe zxzxzx", "en", "", "")
	assert.Empty(t, results)
}

func TestRetriever_CropBoostPromotesProfileCrop(t *testing.T) {
	r := newTestRetriever(t, DefaultOptions())

	// The query matches nothing, so the boosted crop is the only entry
	// above zero and carries exactly the boost value.
	plain := r.Retrieve("zzz qqq", "en", "", "")
	require.Empty(t, plain)

	boosted := r.Retrieve("zzz qqq", "en", "cotton", "")
	require.Len(t, boosted, 1)
	assert.Equal(t, "cotton", boosted[0].Item)
	assert.InDelta(t, 0.25, boosted[0].Similarity, 1e-9)
}

func TestRetriever_SoilBoostIsCaseInsensitive(t *testing.T) {
	r := newTestRetriever(t, DefaultOptions())

	results := r.Retrieve("zzz qqq", "en", "", "Clay")
	require.Len(t, results, 1)
	assert.Equal(t, "clay", results[0].Item)
	assert.InDelta(t, 0.15, results[0].Similarity, 1e-9)
}

func TestRetriever_TopKLimitsResults(t *testing.T) {
	r := newTestRetriever(t, Options{TopK: 1, CropBoost: 0.25, SoilBoost: 0.15})

	results := r.Retrieve("grain crop growing season harvest", "en", "", "")
	assert.LessOrEqual(t, len(results), 1)
}

func TestRetriever_ContentLocalizedWithFallback(t *testing.T) {
	r := newTestRetriever(t, DefaultOptions())

	// The clay entry mentions rice cultivation in Tamil and may
	// legitimately outrank boosted rice, so assert on the rice result
	// wherever it lands.
	results := r.Retrieve("நெல் சாகுபடி", "ta", "rice", "")
	require.NotEmpty(t, results)

	var rice *Result
	for i := range results {
		if results[i].Item == "rice" {
			rice = &results[i]
		}
	}
	require.NotNil(t, rice, "boosted rice entry missing from results")
	assert.GreaterOrEqual(t, rice.Similarity, 0.25)

	store := knowledge.NewBuiltinStore()
	entry, ok := store.Get("crops", "rice")
	require.True(t, ok)
	assert.Equal(t, entry.Content("ta"), rice.Content)
}
