// Package knowledge manages the multilingual agriculture knowledge base.
// Entries are keyed by category and item, with per-language translations
// that fall back to English when a language is missing.
package knowledge

// Key identifies an entry within the knowledge base.
type Key struct {
	Category string `json:"category"`
	Item     string `json:"item"`
}

// Entry is a single knowledge-base record with its translations.
type Entry struct {
	Category     string            `json:"category"`
	Item         string            `json:"item"`
	Translations map[string]string `json:"translations"`
}

// Content returns the entry text for the given language, falling back
// to English when the language has no translation. Returns an empty
// string when neither exists.
func (e *Entry) Content(language string) string {
	if text, ok := e.Translations[language]; ok && text != "" {
		return text
	}
	return e.Translations["en"]
}

// Key returns the entry's identity.
func (e *Entry) Key() Key {
	return Key{Category: e.Category, Item: e.Item}
}
