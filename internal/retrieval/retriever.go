package retrieval

import (
	"sort"
	"strings"

	"github.com/SYLESH-1125/SIH/internal/index"
	"github.com/SYLESH-1125/SIH/internal/knowledge"
	"github.com/SYLESH-1125/SIH/internal/observability"
)

// Result is a scored knowledge-base match.
type Result struct {
	Category   string  `json:"category"`
	Item       string  `json:"item"`
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
}

// Options tunes retrieval scoring.
type Options struct {
	TopK      int
	CropBoost float64
	SoilBoost float64
}

// DefaultOptions returns the standard retrieval parameters.
func DefaultOptions() Options {
	return Options{TopK: 3, CropBoost: 0.25, SoilBoost: 0.15}
}

// Retriever ranks knowledge-base entries against a query by cosine
// similarity with profile boosts. Retrieval failures never propagate;
// any internal panic is recovered and reported as an empty result set.
type Retriever struct {
	store  *knowledge.Store
	cache  *index.Cache
	opts   Options
	logger *observability.Logger
}

// NewRetriever returns a Retriever over the store and index cache.
func NewRetriever(store *knowledge.Store, cache *index.Cache, opts Options, logger *observability.Logger) *Retriever {
	if opts.TopK < 1 {
		opts.TopK = 3
	}
	return &Retriever{store: store, cache: cache, opts: opts, logger: logger}
}

// Retrieve returns up to TopK entries ranked by boosted similarity.
// Entries scoring zero or below are dropped, so an unrelated query can
// legitimately return nothing. Content is returned in the requested
// language with English fallback.
func (r *Retriever) Retrieve(query, language, userCrop, userSoil string) (results []Result) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().
				Interface("panic", rec).
				Str("language", language).
				Msg("Retrieval failed, returning empty context")
			results = nil
		}
	}()

	ix, err := r.cache.Ensure(language)
	if err != nil {
		r.logger.Error().Err(err).Str("language", language).Msg("Index unavailable")
		return nil
	}

	queryVec := ix.Vectorize(query)

	scores := make([]float64, ix.Len())
	for i, docVec := range ix.Vectors {
		scores[i] = queryVec.Dot(docVec)
	}

	// Profile boosts are additive so a matching entry wins ties but a
	// strongly similar entry still outranks a weakly similar boosted one.
	for i, key := range ix.Keys {
		if userCrop != "" && key.Category == "crops" && strings.EqualFold(key.Item, userCrop) {
			scores[i] += r.opts.CropBoost
		}
		if userSoil != "" && key.Category == "soil" && strings.EqualFold(key.Item, userSoil) {
			scores[i] += r.opts.SoilBoost
		}
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	for _, i := range order {
		if len(results) >= r.opts.TopK {
			break
		}
		if scores[i] <= 0 {
			break
		}
		key := ix.Keys[i]
		entry, ok := r.store.Get(key.Category, key.Item)
		if !ok {
			continue
		}
		results = append(results, Result{
			Category:   key.Category,
			Item:       key.Item,
			Content:    entry.Content(language),
			Similarity: scores[i],
		})
	}
	return results
}
