package index

import (
	"errors"

	"github.com/SYLESH-1125/SIH/internal/knowledge"
	"github.com/SYLESH-1125/SIH/internal/observability"
)

// ErrNoEntries is returned when the knowledge base has no usable text
// for any language, so no index can be built.
var ErrNoEntries = errors.New("index: knowledge base has no entries")

// Index is an immutable per-language retrieval index. Keys and Vectors
// are parallel slices in deterministic knowledge-base order.
type Index struct {
	Language string
	Keys     []knowledge.Key
	Vectors  []SparseVector

	vectorizer *Vectorizer
}

// Vectorize converts a query into the index's vector space.
func (ix *Index) Vectorize(query string) SparseVector {
	return ix.vectorizer.Transform(query)
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.Keys)
}

// Builder constructs per-language indexes over a knowledge store.
type Builder struct {
	store  *knowledge.Store
	opts   VectorizerOptions
	logger *observability.Logger
}

// NewBuilder returns a Builder over the given store.
func NewBuilder(store *knowledge.Store, opts VectorizerOptions, logger *observability.Logger) *Builder {
	return &Builder{store: store, opts: opts, logger: logger}
}

// Build constructs the index for a language. Entries are indexed with
// their text in that language when present, falling back to English per
// entry. If no entry has text in the language at all, the entire index
// falls back to English texts so every language still gets an index.
// Returns ErrNoEntries only when the store itself is empty.
func (b *Builder) Build(language string) (*Index, error) {
	keys, texts := b.collect(language)
	if len(texts) == 0 {
		keys, texts = b.collect("en")
	}
	if len(texts) == 0 {
		return nil, ErrNoEntries
	}

	vect := NewVectorizer(b.opts)
	vectors := vect.Fit(texts)

	b.logger.Info().
		Str("language", language).
		Int("entries", len(texts)).
		Int("vocabulary", vect.Dimension()).
		Msg("Retrieval index built")

	return &Index{
		Language:   language,
		Keys:       keys,
		Vectors:    vectors,
		vectorizer: vect,
	}, nil
}

func (b *Builder) collect(language string) ([]knowledge.Key, []string) {
	var keys []knowledge.Key
	var texts []string
	for _, e := range b.store.Entries() {
		content := e.Content(language)
		if content == "" {
			continue
		}
		keys = append(keys, e.Key())
		texts = append(texts, content)
	}
	return keys, texts
}
