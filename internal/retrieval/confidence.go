package retrieval

import "math"

// ConfidenceCalculator produces a deterministic confidence score for a
// composed answer from its retrieval evidence.
type ConfidenceCalculator struct {
	weights struct {
		similarityWeight float64
		coverageWeight   float64
		cropWeight       float64
	}
}

// Confidence floors for the degraded paths. A canned topic answer is
// useful but generic; a safe fallback means composition itself failed.
const (
	CannedConfidence   = 0.5
	DegradedConfidence = 0.3
)

// NewConfidenceCalculator creates a calculator with default weights.
func NewConfidenceCalculator() *ConfidenceCalculator {
	cc := &ConfidenceCalculator{}
	cc.weights.similarityWeight = 0.6 // Top-match similarity dominates
	cc.weights.coverageWeight = 0.25  // How many of the requested results matched
	cc.weights.cropWeight = 0.15      // Explicit crop signal in the query
	return cc
}

// Calculate scores an answer built from retrieval results. topK is the
// number of results requested, cropDetected reports whether the query
// named a known crop. With no results the canned-answer floor applies.
func (cc *ConfidenceCalculator) Calculate(results []Result, topK int, cropDetected bool) float64 {
	if len(results) == 0 {
		return CannedConfidence
	}

	// Boosted similarities can exceed 1, clamp before weighting.
	topSim := math.Min(1.0, results[0].Similarity)

	coverage := 0.0
	if topK > 0 {
		coverage = math.Min(1.0, float64(len(results))/float64(topK))
	}

	cropSignal := 0.0
	if cropDetected {
		cropSignal = 1.0
	}

	conf := topSim*cc.weights.similarityWeight +
		coverage*cc.weights.coverageWeight +
		cropSignal*cc.weights.cropWeight

	return math.Max(0.0, math.Min(1.0, conf))
}
