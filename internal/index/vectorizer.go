// Package index builds and caches per-language TF-IDF retrieval indexes
// over the knowledge base. Texts are vectorized with character n-grams
// so the same pipeline works across scripts without tokenizers or
// stemmers.
package index

import (
	"math"
	"sort"
	"strings"
)

// SparseVector is a sparse L2-normalized feature vector keyed by
// vocabulary index.
type SparseVector map[int]float64

// Dot returns the dot product of two vectors. For normalized vectors
// this is the cosine similarity.
func (v SparseVector) Dot(other SparseVector) float64 {
	// Iterate the smaller map.
	if len(other) < len(v) {
		v, other = other, v
	}
	var sum float64
	for i, w := range v {
		if ow, ok := other[i]; ok {
			sum += w * ow
		}
	}
	return sum
}

// VectorizerOptions controls n-gram extraction and vocabulary size.
type VectorizerOptions struct {
	NGramMin    int
	NGramMax    int
	MaxFeatures int
}

// DefaultVectorizerOptions matches the retrieval defaults: character
// 3-5 grams with a 5000-term vocabulary.
func DefaultVectorizerOptions() VectorizerOptions {
	return VectorizerOptions{NGramMin: 3, NGramMax: 5, MaxFeatures: 5000}
}

// Vectorizer converts texts into TF-IDF weighted sparse vectors using
// word-boundary character n-grams. Each whitespace token is padded with
// a single space on both sides before n-grams of rune length NGramMin
// through NGramMax are extracted; tokens shorter than the n-gram length
// contribute the whole padded token. Fit learns a vocabulary capped at
// MaxFeatures terms, keeping the most frequent terms with lexicographic
// order breaking ties.
type Vectorizer struct {
	opts  VectorizerOptions
	vocab map[string]int
	idf   []float64
	terms []string
}

// NewVectorizer returns an unfitted vectorizer.
func NewVectorizer(opts VectorizerOptions) *Vectorizer {
	if opts.NGramMin < 1 {
		opts.NGramMin = 3
	}
	if opts.NGramMax < opts.NGramMin {
		opts.NGramMax = opts.NGramMin
	}
	if opts.MaxFeatures < 1 {
		opts.MaxFeatures = 5000
	}
	return &Vectorizer{opts: opts}
}

// analyze extracts word-boundary character n-grams from text.
func (v *Vectorizer) analyze(text string) []string {
	var grams []string
	for _, token := range strings.Fields(strings.ToLower(text)) {
		padded := []rune(" " + token + " ")
		for n := v.opts.NGramMin; n <= v.opts.NGramMax; n++ {
			if len(padded) < n {
				grams = append(grams, string(padded))
				continue
			}
			for i := 0; i+n <= len(padded); i++ {
				grams = append(grams, string(padded[i:i+n]))
			}
		}
	}
	return grams
}

// Fit learns the vocabulary and IDF weights from the corpus and returns
// the normalized document vectors.
func (v *Vectorizer) Fit(texts []string) []SparseVector {
	termFreq := make(map[string]int)
	docFreq := make(map[string]int)
	analyzed := make([][]string, len(texts))

	for i, text := range texts {
		grams := v.analyze(text)
		analyzed[i] = grams
		seen := make(map[string]bool, len(grams))
		for _, g := range grams {
			termFreq[g]++
			if !seen[g] {
				seen[g] = true
				docFreq[g]++
			}
		}
	}

	// Cap the vocabulary at MaxFeatures by corpus frequency, then sort
	// the surviving terms lexicographically so indices are stable.
	terms := make([]string, 0, len(termFreq))
	for t := range termFreq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termFreq[terms[i]] != termFreq[terms[j]] {
			return termFreq[terms[i]] > termFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.opts.MaxFeatures {
		terms = terms[:v.opts.MaxFeatures]
	}
	sort.Strings(terms)

	v.terms = terms
	v.vocab = make(map[string]int, len(terms))
	for i, t := range terms {
		v.vocab[t] = i
	}

	// Smoothed IDF matching sublinear document weighting:
	// idf = ln((1+N)/(1+df)) + 1.
	n := float64(len(texts))
	v.idf = make([]float64, len(terms))
	for i, t := range terms {
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}

	vectors := make([]SparseVector, len(texts))
	for i, grams := range analyzed {
		vectors[i] = v.vectorizeGrams(grams)
	}
	return vectors
}

// Transform vectorizes a single text against the fitted vocabulary.
// Terms outside the vocabulary are ignored; a text with no known terms
// yields an empty vector.
func (v *Vectorizer) Transform(text string) SparseVector {
	return v.vectorizeGrams(v.analyze(text))
}

func (v *Vectorizer) vectorizeGrams(grams []string) SparseVector {
	vec := make(SparseVector)
	for _, g := range grams {
		if idx, ok := v.vocab[g]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for idx := range vec {
		vec[idx] *= v.idf[idx]
		norm += vec[idx] * vec[idx]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// Dimension returns the fitted vocabulary size.
func (v *Vectorizer) Dimension() int {
	return len(v.terms)
}
