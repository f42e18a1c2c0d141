package retrieval

import "time"

// Season identifies the Indian cropping season for a month.
type Season string

const (
	SeasonNone   Season = ""
	SeasonKharif Season = "kharif"
	SeasonRabi   Season = "rabi"
)

// SeasonForMonth maps a calendar month to its cropping season. Kharif
// covers June through October, Rabi wraps the year end from November
// through April. May belongs to neither.
func SeasonForMonth(month time.Month) Season {
	switch {
	case month >= time.June && month <= time.October:
		return SeasonKharif
	case month >= time.November || month <= time.April:
		return SeasonRabi
	default:
		return SeasonNone
	}
}

// Profile carries the farmer context used to personalize answers.
type Profile struct {
	UserType string
	CropType string
	LandSize string
	SoilType string
}

// Composer assembles the final answer text from retrieval results and
// profile context. The clock is injected so seasonal advice is
// deterministic under test.
type Composer struct {
	analyzer *Analyzer
	now      func() time.Time
}

// NewComposer returns a Composer using the given clock. A nil clock
// defaults to time.Now.
func NewComposer(analyzer *Analyzer, now func() time.Time) *Composer {
	if now == nil {
		now = time.Now
	}
	return &Composer{analyzer: analyzer, now: now}
}

// Compose builds the answer for a query. With retrieval results, the
// best match's content is extended with soil, land-size, and seasonal
// fragments in that order. With no results, a canned answer for the
// query's topic is returned instead. All text is localized with English
// fallback.
func (c *Composer) Compose(query, language string, results []Result, profile Profile) string {
	if len(results) == 0 {
		topic := c.analyzer.ClassifyTopic(query, language)
		return c.canned(language, topic)
	}

	answer := results[0].Content

	switch profile.SoilType {
	case "clay":
		answer += localized(claySoilFragments, language)
	case "sandy":
		answer += localized(sandySoilFragments, language)
	}

	if profile.LandSize == "small" {
		answer += localized(smallLandFragments, language)
	}

	switch SeasonForMonth(c.now().Month()) {
	case SeasonKharif:
		answer += localized(kharifFragments, language)
	case SeasonRabi:
		answer += localized(rabiFragments, language)
	}

	return answer
}

func (c *Composer) canned(language string, topic Topic) string {
	table, ok := cannedAnswers[language]
	if !ok {
		table = cannedAnswers["en"]
	}
	if ans, ok := table[topic]; ok {
		return ans
	}
	return cannedAnswers["en"][TopicGeneral]
}
