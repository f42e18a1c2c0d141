package index

import "sync"

// Cache lazily builds and retains one index per language. Builds are
// serialized per cache so concurrent requests for a new language do not
// duplicate work.
type Cache struct {
	builder *Builder

	mu      sync.RWMutex
	indexes map[string]*Index
}

// NewCache returns an empty cache backed by the builder.
func NewCache(builder *Builder) *Cache {
	return &Cache{
		builder: builder,
		indexes: make(map[string]*Index),
	}
}

// Ensure returns the index for a language, building it on first use.
// Subsequent calls for the same language return the cached index.
func (c *Cache) Ensure(language string) (*Index, error) {
	c.mu.RLock()
	ix, ok := c.indexes[language]
	c.mu.RUnlock()
	if ok {
		return ix, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have built it while we waited.
	if ix, ok := c.indexes[language]; ok {
		return ix, nil
	}

	ix, err := c.builder.Build(language)
	if err != nil {
		return nil, err
	}
	c.indexes[language] = ix
	return ix, nil
}

// Languages returns the languages with a built index.
func (c *Cache) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	langs := make([]string, 0, len(c.indexes))
	for lang := range c.indexes {
		langs = append(langs, lang)
	}
	return langs
}
