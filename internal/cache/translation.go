// Package cache provides the two memoization layers of the chat core: a
// capacity-bounded in-memory LRU for translated text and an on-disk TTL
// cache for synthesized audio.
package cache

import (
	"container/list"
	"strings"
	"sync"
)

// TranslateFunc produces a translation of text into targetLang. It reports
// failure with an error; callers of TranslationLRU never see that error;
// the original text is served instead.
type TranslateFunc func(text, targetLang string) (string, error)

// TranslationLRU memoizes (text, target language) → translated text with
// strict least-recently-used eviction. Recency is keyed on access: every
// Get hit moves the entry to the front, so the entry evicted at capacity is
// always the one untouched longest. Safe for concurrent use.
type TranslationLRU struct {
	mu       sync.Mutex
	capacity int
	order    *list.List               // front = most recently used
	entries  map[string]*list.Element // key → element whose Value is *lruEntry
}

type lruEntry struct {
	key   string
	value string
}

// NewTranslationLRU returns an empty cache holding at most capacity entries.
// A non-positive capacity is coerced to 1.
func NewTranslationLRU(capacity int) *TranslationLRU {
	if capacity < 1 {
		capacity = 1
	}
	return &TranslationLRU{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}
}

// Get returns the cached translation for (text, targetLang) and refreshes
// its recency. The second result reports whether the entry was present.
func (c *TranslationLRU) Get(text, targetLang string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[cacheKey(text, targetLang)]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry).value, true
}

// Put stores a translation, evicting the least-recently-accessed entry
// first when the cache is at capacity. Re-putting an existing key updates
// the value and refreshes recency without evicting.
func (c *TranslationLRU) Put(text, targetLang, translated string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(text, targetLang)
	if el, ok := c.entries[key]; ok {
		el.Value.(*lruEntry).value = translated
		c.order.MoveToFront(el)
		return
	}
	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*lruEntry).key)
		}
	}
	c.entries[key] = c.order.PushFront(&lruEntry{key: key, value: translated})
}

// Translate returns the cached translation when present, otherwise calls fn
// and stores the result. When fn fails the original text is returned
// unchanged and nothing is cached, so a transient translator outage cannot
// poison the cache.
func (c *TranslationLRU) Translate(text, targetLang string, fn TranslateFunc) string {
	if v, ok := c.Get(text, targetLang); ok {
		return v
	}
	translated, err := fn(text, targetLang)
	if err != nil || translated == "" {
		return text
	}
	c.Put(text, targetLang, translated)
	return translated
}

// Len reports the number of cached entries.
func (c *TranslationLRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// cacheKey normalizes the text (surrounding whitespace carries no meaning
// for translation) and scopes it by target language.
func cacheKey(text, targetLang string) string {
	return targetLang + "\x00" + strings.TrimSpace(text)
}
