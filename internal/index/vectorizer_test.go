package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizer_FitProducesNormalizedVectors(t *testing.T) {
	vect := NewVectorizer(DefaultVectorizerOptions())

	texts := []string{
		"Rice is a staple grain crop grown in flooded fields",
		"Wheat grows best in temperate climates",
		"Clay soil retains water well but drains slowly",
	}
	vectors := vect.Fit(texts)

	require.Len(t, vectors, len(texts))
	assert.Greater(t, vect.Dimension(), 0)

	for i, v := range vectors {
		assert.NotEmpty(t, v, "document %d has no features", i)
		// Self-similarity of a unit vector is 1.
		assert.InDelta(t, 1.0, v.Dot(v), 1e-9, "document %d not normalized", i)
	}
}

func TestVectorizer_TransformMatchesFittedDocument(t *testing.T) {
	vect := NewVectorizer(DefaultVectorizerOptions())

	texts := []string{
		"Rice is a staple grain crop",
		"Cotton is a warm-season fiber crop",
	}
	vectors := vect.Fit(texts)

	// Transforming the exact corpus text reproduces the fitted vector.
	same := vect.Transform(texts[0])
	assert.InDelta(t, 1.0, same.Dot(vectors[0]), 1e-9)

	// A related query scores higher against its own document.
	query := vect.Transform("how to grow rice")
	assert.Greater(t, query.Dot(vectors[0]), query.Dot(vectors[1]))
}

func TestVectorizer_OutOfVocabularyQueryIsEmpty(t *testing.T) {
	vect := NewVectorizer(DefaultVectorizerOptions())
	vect.Fit([]string{"rice wheat corn"})

	vec := vect.Transform("zzzzqqqq")
	assert.Empty(t, vec)
}

func TestVectorizer_MaxFeaturesCapsVocabulary(t *testing.T) {
	vect := NewVectorizer(VectorizerOptions{NGramMin: 3, NGramMax: 5, MaxFeatures: 10})
	vect.Fit([]string{
		"rice wheat corn barley oats soybeans chickpeas lentils tomatoes potatoes",
	})
	assert.Equal(t, 10, vect.Dimension())
}

func TestVectorizer_ShortTokensContributeWholePaddedToken(t *testing.T) {
	vect := NewVectorizer(DefaultVectorizerOptions())
	vect.Fit([]string{"ph of soil"})

	// "ph" padded is 4 runes, shorter than the 5-gram window, so the
	// whole padded token must appear as a term.
	vec := vect.Transform("ph")
	assert.NotEmpty(t, vec)
}

func TestVectorizer_DeterministicAcrossRuns(t *testing.T) {
	texts := []string{
		"rice is a staple grain",
		"wheat is a cereal grain",
		"clay soil retains water",
	}

	a := NewVectorizer(DefaultVectorizerOptions())
	b := NewVectorizer(DefaultVectorizerOptions())
	va := a.Fit(texts)
	vb := b.Fit(texts)

	require.Equal(t, a.Dimension(), b.Dimension())
	for i := range va {
		assert.Equal(t, va[i], vb[i], "document %d vectors differ", i)
	}
}
