// Package retrieval implements query analysis, similarity search over
// the knowledge index, and answer composition.
package retrieval

import "strings"

// Topic classifies what kind of advice a query is asking for. Used to
// pick a canned answer when retrieval finds nothing.
type Topic string

const (
	TopicGeneral    Topic = "general"
	TopicFertilizer Topic = "fertilizer"
	TopicPest       Topic = "pest"
	TopicDisease    Topic = "disease"
)

// Analyzer inspects query text for crop mentions, topic, and
// agriculture relevance. Stateless and safe for concurrent use.
type Analyzer struct{}

// NewAnalyzer returns an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// DetectCrop returns the canonical crop identifier for the first crop
// surface form found in the query, or "" when none matches. Unknown
// languages use the English table.
func (a *Analyzer) DetectCrop(query, language string) string {
	table, ok := cropSynonyms[language]
	if !ok {
		table = cropSynonyms["en"]
	}
	lower := strings.ToLower(query)
	for _, syn := range table {
		if strings.Contains(lower, strings.ToLower(syn.surface)) {
			return syn.crop
		}
	}
	return ""
}

// ClassifyTopic returns the query's topic. Fertilizer is checked first,
// then pest, then disease; anything else is general. The keyword tables
// carry every supported language, so language does not change the
// result; it is part of the contract for callers that already know it.
func (a *Analyzer) ClassifyTopic(query, language string) Topic {
	lower := strings.ToLower(query)
	if containsAny(lower, fertilizerKeywords) {
		return TopicFertilizer
	}
	if containsAny(lower, pestKeywords) {
		return TopicPest
	}
	if containsAny(lower, diseaseKeywords) {
		return TopicDisease
	}
	return TopicGeneral
}

// IsAgricultureRelated reports whether the query looks agricultural:
// it mentions a known crop, an agriculture keyword, or a common farming
// phrase for the language.
func (a *Analyzer) IsAgricultureRelated(query, language string) bool {
	if a.DetectCrop(query, language) != "" {
		return true
	}

	lower := strings.ToLower(query)

	keywords, ok := agricultureKeywords[language]
	if !ok {
		keywords = agricultureKeywords["en"]
	}
	if containsAny(lower, keywords) {
		return true
	}

	phrases, ok := agriculturePhrases[language]
	if !ok {
		phrases = agriculturePhrases["en"]
	}
	return containsAny(lower, phrases)
}

func containsAny(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
