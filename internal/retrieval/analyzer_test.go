package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzer_DetectCrop_English(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		query string
		want  string
	}{
		{"how do I grow rice", "rice"},
		{"my paddy field is flooded", "rice"},
		{"maize fertilizer schedule", "corn"},
		{"best season for tomatoes", "tomatoes"},
		{"peanut planting depth", "groundnut"},
		{"what is the weather today", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, analyzer.DetectCrop(tt.query, "en"), "query %q", tt.query)
	}
}

func TestAnalyzer_DetectCrop_Multilingual(t *testing.T) {
	analyzer := NewAnalyzer()

	assert.Equal(t, "rice", analyzer.DetectCrop("நான் நெல் வளர்க்கிறேன்", "ta"))
	assert.Equal(t, "wheat", analyzer.DetectCrop("గోధుమ పంట", "te"))
	assert.Equal(t, "bananas", analyzer.DetectCrop("വാഴപ്പഴം കൃഷി", "ml"))
	assert.Equal(t, "rice", analyzer.DetectCrop("धान की खेती", "hi"))
	assert.Equal(t, "barley", analyzer.DetectCrop("வெண்ணையடுங் விதைப்பு", "ta"))
	assert.Equal(t, "millet", analyzer.DetectCrop("കേഴ്വരകു കൃഷി", "ml"))
}

func TestAnalyzer_DetectCrop_UnknownLanguageUsesEnglish(t *testing.T) {
	analyzer := NewAnalyzer()
	assert.Equal(t, "wheat", analyzer.DetectCrop("wheat rust problem", "fr"))
}

func TestAnalyzer_DetectCrop_FirstMatchWins(t *testing.T) {
	analyzer := NewAnalyzer()

	// Both rice and wheat appear; rice is earlier in the table.
	assert.Equal(t, "rice", analyzer.DetectCrop("rice or wheat this season", "en"))
}

func TestAnalyzer_ClassifyTopic(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		query    string
		language string
		want     Topic
	}{
		{"which fertilizer should I use", "en", TopicFertilizer},
		{"urea dosage per acre", "en", TopicFertilizer},
		{"insect attack on leaves", "en", TopicPest},
		{"my plants have blight", "en", TopicDisease},
		{"खाद कब डालें", "hi", TopicFertilizer},
		{"when should I harvest", "en", TopicGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, analyzer.ClassifyTopic(tt.query, tt.language), "query %q", tt.query)
	}

	// The keyword tables are multilingual, so the reported language
	// does not change the classification.
	assert.Equal(t, TopicFertilizer, analyzer.ClassifyTopic("खाद कब डालें", "en"))
}

func TestAnalyzer_ClassifyTopic_FertilizerBeforePest(t *testing.T) {
	analyzer := NewAnalyzer()

	// Fertilizer keywords win when both topics appear.
	assert.Equal(t, TopicFertilizer, analyzer.ClassifyTopic("fertilizer against pest", "en"))
}

func TestAnalyzer_IsAgricultureRelated(t *testing.T) {
	analyzer := NewAnalyzer()

	assert.True(t, analyzer.IsAgricultureRelated("how to grow rice", "en"))
	assert.True(t, analyzer.IsAgricultureRelated("soil ph testing", "en"))
	assert.True(t, analyzer.IsAgricultureRelated("மண் வளம்", "ta"))
	assert.False(t, analyzer.IsAgricultureRelated("stock market news today", "en"))
}
