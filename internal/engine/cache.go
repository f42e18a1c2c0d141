package engine

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/SYLESH-1125/SIH/internal/cache"
)

// ResponseCache stores composed answers keyed by the full request plus
// the calendar month, since seasonal fragments change the answer text.
type ResponseCache struct {
	client cache.Client
	ttl    time.Duration
}

// NewResponseCache wraps a cache client with answer serialization.
func NewResponseCache(client cache.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ResponseCache{client: client, ttl: ttl}
}

func (rc *ResponseCache) key(req AnswerRequest, month time.Month) string {
	return cache.Key(
		"answer",
		req.Query,
		req.Language,
		req.UserType,
		req.CropType,
		req.LandSize,
		req.SoilType,
		strconv.Itoa(int(month)),
	)
}

// Get returns a cached response for the request, if present.
func (rc *ResponseCache) Get(ctx context.Context, req AnswerRequest, month time.Month) (AnswerResponse, bool) {
	// Cache trouble must not affect answering, so any error is a miss.
	data, err := rc.client.Get(ctx, rc.key(req, month))
	if err != nil {
		return AnswerResponse{}, false
	}

	var resp AnswerResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return AnswerResponse{}, false
	}
	return resp, true
}

// Set stores a response. Failures are ignored.
func (rc *ResponseCache) Set(ctx context.Context, req AnswerRequest, month time.Month, resp AnswerResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	_ = rc.client.Set(ctx, rc.key(req, month), data, rc.ttl)
}
