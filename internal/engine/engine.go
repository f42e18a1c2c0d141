// Package engine wires the knowledge store, index cache, and retrieval
// pipeline into the answering facade. Assistant.Answer never fails:
// every internal error degrades to a usable response.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/SYLESH-1125/SIH/internal/cache"
	"github.com/SYLESH-1125/SIH/internal/config"
	"github.com/SYLESH-1125/SIH/internal/index"
	"github.com/SYLESH-1125/SIH/internal/knowledge"
	"github.com/SYLESH-1125/SIH/internal/observability"
	"github.com/SYLESH-1125/SIH/internal/retrieval"
)

// Response modes reported to clients.
const (
	ModeRetrieval = "retrieval"
	ModeCanned    = "canned"
	ModeDegraded  = "degraded"

	modelName = "agri-assist-rag-v1"
)

// ErrIndexBuild indicates the baseline index could not be built at
// startup, which means the knowledge base is unusable.
var ErrIndexBuild = errors.New("engine: baseline index build failed")

// AnswerRequest is a single question with its farmer profile.
type AnswerRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
	UserType string `json:"user_type,omitempty"`
	CropType string `json:"crop_type,omitempty"`
	LandSize string `json:"land_size,omitempty"`
	SoilType string `json:"soil_type,omitempty"`
}

// Source describes one knowledge-base entry that contributed to an
// answer.
type Source struct {
	Category   string  `json:"category"`
	Item       string  `json:"item"`
	Similarity float64 `json:"similarity"`
}

// AnswerResponse is the composed answer with its provenance.
type AnswerResponse struct {
	ID         string   `json:"id"`
	Answer     string   `json:"answer"`
	Sources    []Source `json:"sources,omitempty"`
	Confidence float64  `json:"confidence"`
	LatencyMs  int64    `json:"processing_time_ms"`
	Language   string   `json:"language"`
	Mode       string   `json:"mode"`
	Model      string   `json:"model"`
	Cached     bool     `json:"cached,omitempty"`
}

// Assistant answers agriculture questions over the configured
// knowledge base.
type Assistant struct {
	store      *knowledge.Store
	indexes    *index.Cache
	analyzer   *retrieval.Analyzer
	retriever  *retrieval.Retriever
	composer   *retrieval.Composer
	confidence *retrieval.ConfidenceCalculator
	answers    *ResponseCache
	topK       int
	logger     *observability.Logger
	now        func() time.Time
}

// Option customizes Assistant construction.
type Option func(*Assistant)

// WithClock injects a clock for deterministic seasonal advice.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) { a.now = now }
}

// WithAnswerCache enables response caching on the given client.
func WithAnswerCache(client cache.Client, ttl time.Duration) Option {
	return func(a *Assistant) { a.answers = NewResponseCache(client, ttl) }
}

// New builds an Assistant from the store and retrieval settings. The
// English index is built eagerly; if that fails the knowledge base is
// unusable and New returns ErrIndexBuild.
func New(store *knowledge.Store, cfg config.RetrievalConfig, logger *observability.Logger, opts ...Option) (*Assistant, error) {
	builder := index.NewBuilder(store, index.VectorizerOptions{
		NGramMin:    cfg.NGramMin,
		NGramMax:    cfg.NGramMax,
		MaxFeatures: cfg.MaxFeatures,
	}, logger)
	indexes := index.NewCache(builder)

	analyzer := retrieval.NewAnalyzer()

	a := &Assistant{
		store:    store,
		indexes:  indexes,
		analyzer: analyzer,
		retriever: retrieval.NewRetriever(store, indexes, retrieval.Options{
			TopK:      cfg.TopK,
			CropBoost: cfg.CropBoost,
			SoilBoost: cfg.SoilBoost,
		}, logger),
		confidence: retrieval.NewConfidenceCalculator(),
		topK:       cfg.TopK,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.composer = retrieval.NewComposer(analyzer, a.now)

	if _, err := indexes.Ensure("en"); err != nil {
		return nil, errors.Join(ErrIndexBuild, err)
	}

	return a, nil
}

// Store exposes the underlying knowledge store for read endpoints.
func (a *Assistant) Store() *knowledge.Store {
	return a.store
}

// Answer responds to a query. It always returns a response: retrieval
// failures fall back to canned topic answers, and a composition panic
// degrades to a safe hardcoded answer with low confidence.
func (a *Assistant) Answer(ctx context.Context, req AnswerRequest) AnswerResponse {
	start := a.now()
	if req.Language == "" {
		req.Language = "en"
	}

	if a.answers != nil {
		if resp, ok := a.answers.Get(ctx, req, a.now().Month()); ok {
			resp.Cached = true
			a.logger.Debug().
				Str("language", req.Language).
				Msg("Answer served from cache")
			return resp
		}
	}

	resp := a.answer(req)
	resp.ID = uuid.NewString()
	resp.LatencyMs = a.now().Sub(start).Milliseconds()

	if a.answers != nil && resp.Mode != ModeDegraded {
		a.answers.Set(ctx, req, a.now().Month(), resp)
	}

	a.logger.Info().
		Str("language", req.Language).
		Str("mode", resp.Mode).
		Float64("confidence", resp.Confidence).
		Int64("latency_ms", resp.LatencyMs).
		Int("sources", len(resp.Sources)).
		Msg("Query answered")

	return resp
}

func (a *Assistant) answer(req AnswerRequest) (resp AnswerResponse) {
	defer func() {
		if rec := recover(); rec != nil {
			a.logger.Error().
				Interface("panic", rec).
				Str("language", req.Language).
				Msg("Answer composition failed, returning safe fallback")
			resp = AnswerResponse{
				Answer:     retrieval.SafeAnswer(req.Language),
				Confidence: retrieval.DegradedConfidence,
				Language:   req.Language,
				Mode:       ModeDegraded,
				Model:      modelName,
			}
		}
	}()

	// A crop named in the query overrides the profile crop for boosting.
	crop := a.analyzer.DetectCrop(req.Query, req.Language)
	cropDetected := crop != ""
	if crop == "" {
		crop = req.CropType
	}

	results := a.retriever.Retrieve(req.Query, req.Language, crop, req.SoilType)

	answer := a.composer.Compose(req.Query, req.Language, results, retrieval.Profile{
		UserType: req.UserType,
		CropType: req.CropType,
		LandSize: req.LandSize,
		SoilType: req.SoilType,
	})

	mode := ModeRetrieval
	if len(results) == 0 {
		mode = ModeCanned
	}

	sources := make([]Source, 0, len(results))
	for _, r := range results {
		sources = append(sources, Source{
			Category:   r.Category,
			Item:       r.Item,
			Similarity: r.Similarity,
		})
	}

	return AnswerResponse{
		Answer:     answer,
		Sources:    sources,
		Confidence: a.confidence.Calculate(results, a.topK, cropDetected),
		Language:   req.Language,
		Mode:       mode,
		Model:      modelName,
	}
}
