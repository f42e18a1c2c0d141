package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceCalculator_FullEvidence(t *testing.T) {
	calc := NewConfidenceCalculator()

	results := []Result{
		{Similarity: 0.8},
		{Similarity: 0.5},
		{Similarity: 0.2},
	}

	// 0.8*0.6 + 1.0*0.25 + 1.0*0.15 = 0.88
	conf := calc.Calculate(results, 3, true)
	assert.InDelta(t, 0.88, conf, 0.01)
}

func TestConfidenceCalculator_PartialCoverage(t *testing.T) {
	calc := NewConfidenceCalculator()

	results := []Result{{Similarity: 0.6}}

	// 0.6*0.6 + (1/3)*0.25 + 0*0.15 = 0.443
	conf := calc.Calculate(results, 3, false)
	assert.InDelta(t, 0.443, conf, 0.01)
}

func TestConfidenceCalculator_BoostedSimilarityClamped(t *testing.T) {
	calc := NewConfidenceCalculator()

	// Boosts can push similarity past 1; confidence stays in range.
	results := []Result{{Similarity: 1.2}, {Similarity: 0.9}, {Similarity: 0.8}}
	conf := calc.Calculate(results, 3, true)
	assert.LessOrEqual(t, conf, 1.0)
	assert.InDelta(t, 1.0, conf, 0.01)
}

func TestConfidenceCalculator_NoResultsUsesCannedFloor(t *testing.T) {
	calc := NewConfidenceCalculator()
	assert.Equal(t, CannedConfidence, calc.Calculate(nil, 3, false))
}

func TestConfidenceCalculator_Deterministic(t *testing.T) {
	calc := NewConfidenceCalculator()
	results := []Result{{Similarity: 0.7}, {Similarity: 0.4}}

	first := calc.Calculate(results, 3, true)
	second := calc.Calculate(results, 3, true)
	assert.Equal(t, first, second)
}
