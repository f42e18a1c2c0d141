package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SYLESH-1125/SIH/internal/config"
	"github.com/SYLESH-1125/SIH/internal/observability"
)

// rawKB is the on-disk shape of the knowledge base:
// category -> item -> language -> text.
type rawKB map[string]map[string]map[string]string

// Store holds the loaded knowledge base with deterministic entry order.
// Entries are sorted by category then item so that index construction
// is reproducible across runs.
type Store struct {
	entries []Entry
	byKey   map[Key]*Entry
}

// NewStore builds a Store from raw knowledge data. Entries with no
// usable text in any language are skipped.
func NewStore(raw rawKB) *Store {
	s := &Store{byKey: make(map[Key]*Entry)}

	categories := make([]string, 0, len(raw))
	for cat := range raw {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		items := make([]string, 0, len(raw[cat]))
		for item := range raw[cat] {
			items = append(items, item)
		}
		sort.Strings(items)

		for _, item := range items {
			translations := make(map[string]string, len(raw[cat][item]))
			hasText := false
			for lang, text := range raw[cat][item] {
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
				translations[lang] = text
				hasText = true
			}
			if !hasText {
				continue
			}
			s.entries = append(s.entries, Entry{
				Category:     cat,
				Item:         item,
				Translations: translations,
			})
		}
	}

	for i := range s.entries {
		s.byKey[s.entries[i].Key()] = &s.entries[i]
	}

	return s
}

// NewBuiltinStore returns a Store backed by the embedded knowledge base.
func NewBuiltinStore() *Store {
	return NewStore(builtinKB)
}

// Load builds a Store from the configured source. Any failure to load
// an external source logs a warning and falls back to the builtin
// knowledge base, so Load never fails.
func Load(cfg config.KnowledgeConfig, logger *observability.Logger) *Store {
	var (
		raw rawKB
		err error
	)

	switch cfg.Source {
	case "json":
		raw, err = loadJSONFile(cfg.Path)
	case "yaml":
		raw, err = loadYAMLFile(cfg.Path)
	case "sql":
		raw, err = loadSQL(cfg.Database)
	default:
		return NewBuiltinStore()
	}

	if err != nil {
		logger.Warn().
			Str("source", cfg.Source).
			Str("path", cfg.Path).
			Err(err).
			Msg("Could not load external knowledge base, using builtin fallback")
		return NewBuiltinStore()
	}

	store := NewStore(raw)
	if store.Len() == 0 {
		logger.Warn().
			Str("source", cfg.Source).
			Msg("External knowledge base is empty, using builtin fallback")
		return NewBuiltinStore()
	}

	logger.Info().
		Str("source", cfg.Source).
		Int("entries", store.Len()).
		Msg("Knowledge base loaded")
	return store
}

func loadJSONFile(path string) (rawKB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	var raw rawKB
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse knowledge file: %w", err)
	}
	return raw, validateRaw(raw)
}

func loadYAMLFile(path string) (rawKB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	var raw rawKB
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse knowledge file: %w", err)
	}
	return raw, validateRaw(raw)
}

func validateRaw(raw rawKB) error {
	if len(raw) == 0 {
		return fmt.Errorf("knowledge base has no categories")
	}
	for cat, items := range raw {
		if cat == "" {
			return fmt.Errorf("empty category name")
		}
		for item := range items {
			if item == "" {
				return fmt.Errorf("empty item name in category %q", cat)
			}
		}
	}
	return nil
}

// Get returns the entry for the given category and item.
func (s *Store) Get(category, item string) (*Entry, bool) {
	e, ok := s.byKey[Key{Category: category, Item: item}]
	return e, ok
}

// Entries returns all entries in deterministic order. The returned
// slice must not be modified.
func (s *Store) Entries() []Entry {
	return s.entries
}

// Categories returns the distinct category names in sorted order.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for i := range s.entries {
		if !seen[s.entries[i].Category] {
			seen[s.entries[i].Category] = true
			cats = append(cats, s.entries[i].Category)
		}
	}
	return cats
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}
