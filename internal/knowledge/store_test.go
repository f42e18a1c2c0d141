package knowledge

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SYLESH-1125/SIH/internal/config"
	"github.com/SYLESH-1125/SIH/internal/observability"
)

func TestNewBuiltinStore(t *testing.T) {
	store := NewBuiltinStore()

	assert.Greater(t, store.Len(), 20)
	assert.ElementsMatch(t, []string{"crops", "diseases", "irrigation", "soil"}, store.Categories())

	rice, ok := store.Get("crops", "rice")
	require.True(t, ok)
	assert.Contains(t, rice.Content("en"), "staple grain")
	assert.NotEmpty(t, rice.Content("ta"))
}

func TestStore_DeterministicOrder(t *testing.T) {
	store := NewBuiltinStore()

	entries := store.Entries()
	sorted := sort.SliceIsSorted(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].Item < entries[j].Item
	})
	assert.True(t, sorted, "entries must be ordered by category then item")
}

func TestEntry_ContentFallsBackToEnglish(t *testing.T) {
	store := NewBuiltinStore()

	clay, ok := store.Get("soil", "clay")
	require.True(t, ok)

	// No Hindi translation for clay, so English is returned.
	assert.Equal(t, clay.Content("en"), clay.Content("hi"))
	assert.NotEqual(t, clay.Content("en"), clay.Content("ta"))
}

func TestLoad_JSONSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	data := `{"crops":{"rice":{"en":"Rice note","ta":"அரிசி"}}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	store := Load(config.KnowledgeConfig{Source: "json", Path: path}, observability.NopLogger())

	assert.Equal(t, 1, store.Len())
	rice, ok := store.Get("crops", "rice")
	require.True(t, ok)
	assert.Equal(t, "Rice note", rice.Content("en"))
	assert.Equal(t, "அரிசி", rice.Content("ta"))
}

func TestLoad_YAMLSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	data := "crops:\n  rice:\n    en: Rice note\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	store := Load(config.KnowledgeConfig{Source: "yaml", Path: path}, observability.NopLogger())

	assert.Equal(t, 1, store.Len())
}

func TestLoad_MalformedFileFallsBackToBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := Load(config.KnowledgeConfig{Source: "json", Path: path}, observability.NopLogger())

	// Fallback is the builtin knowledge base, never an empty store.
	assert.Equal(t, NewBuiltinStore().Len(), store.Len())
}

func TestLoad_MissingFileFallsBackToBuiltin(t *testing.T) {
	store := Load(config.KnowledgeConfig{Source: "json", Path: "/does/not/exist.json"}, observability.NopLogger())
	assert.Equal(t, NewBuiltinStore().Len(), store.Len())
}

func TestNewStore_SkipsEmptyEntries(t *testing.T) {
	store := NewStore(rawKB{
		"crops": {
			"rice":  {"en": "Rice note"},
			"blank": {"en": "   "},
		},
	})

	assert.Equal(t, 1, store.Len())
	_, ok := store.Get("crops", "blank")
	assert.False(t, ok)
}
