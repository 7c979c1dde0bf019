package state

import (
	"fmt"
	"hash/fnv"
	"time"

	"lexibot/internal/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TranslationCache correlates inline button presses with previously
// generated results. Entries are bounded by LRU eviction and age out after
// a TTL; the only other removal path is explicit consumption via Take.
type TranslationCache struct {
	lru *expirable.LRU[string, domain.TranslationEntry]
}

// NewTranslationCache creates a cache holding at most size entries, each
// expiring ttl after insertion.
func NewTranslationCache(size int, ttl time.Duration) *TranslationCache {
	return &TranslationCache{
		lru: expirable.NewLRU[string, domain.TranslationEntry](size, nil, ttl),
	}
}

// Put stores an entry under key, replacing any previous one.
func (c *TranslationCache) Put(key string, entry domain.TranslationEntry) {
	c.lru.Add(key, entry)
}

// Get returns the entry without removing it, so the same entry can serve
// repeated presses of the same button.
func (c *TranslationCache) Get(key string) (domain.TranslationEntry, bool) {
	return c.lru.Get(key)
}

// Take returns the entry and deletes it as one step. Under concurrent
// presses of the same button at most one call succeeds; the rest miss.
func (c *TranslationCache) Take(key string) (domain.TranslationEntry, bool) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return domain.TranslationEntry{}, false
	}
	if !c.lru.Remove(key) {
		// Someone else removed it between Get and Remove.
		return domain.TranslationEntry{}, false
	}
	return entry, true
}

// KeyFor derives the correlation key for a word. The derivation is
// deterministic so repeated translations of the same word collide on the
// same entry, and short enough to fit a Telegram callback payload.
func KeyFor(word string) string {
	h := fnv.New64a()
	h.Write([]byte(word))
	return fmt.Sprintf("%016x", h.Sum64())
}

// FollowupKey names the per-chat slot holding follow-up question state.
// Writing it overwrites any pending follow-up for that chat.
func FollowupKey(chatID int64) string {
	return fmt.Sprintf("followup_%d", chatID)
}
