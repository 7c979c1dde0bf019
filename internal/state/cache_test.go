package state

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lexibot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func newTestCache() *TranslationCache {
	return NewTranslationCache(128, time.Minute)
}

func TestTranslationCache_GetDoesNotConsume(t *testing.T) {
	cache := newTestCache()
	entry := domain.TranslationEntry{Word: "bonjour", Translation: "hello"}

	cache.Put("k", entry)

	got, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, entry, got)

	got, ok = cache.Get("k")
	assert.True(t, ok, "get must not delete the entry")
	assert.Equal(t, entry, got)
}

func TestTranslationCache_TakeConsumesOnce(t *testing.T) {
	cache := newTestCache()
	entry := domain.TranslationEntry{Word: "bonjour", Translation: "hello"}

	cache.Put("k", entry)

	got, ok := cache.Take("k")
	assert.True(t, ok)
	assert.Equal(t, entry, got)

	_, ok = cache.Take("k")
	assert.False(t, ok, "second take must miss")

	_, ok = cache.Get("k")
	assert.False(t, ok)
}

func TestTranslationCache_TakeMissingKey(t *testing.T) {
	cache := newTestCache()
	_, ok := cache.Take("never-stored")
	assert.False(t, ok)
}

func TestTranslationCache_PutOverwrites(t *testing.T) {
	cache := newTestCache()

	cache.Put("k", domain.TranslationEntry{Word: "old"})
	cache.Put("k", domain.TranslationEntry{Word: "new"})

	got, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "new", got.Word)
}

func TestTranslationCache_ConcurrentTakeIsAtMostOnce(t *testing.T) {
	cache := newTestCache()
	cache.Put("k", domain.TranslationEntry{Word: "bonjour"})

	var wins int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := cache.Take("k"); ok {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins, "exactly one concurrent take may succeed")
}

func TestTranslationCache_EntriesExpire(t *testing.T) {
	cache := NewTranslationCache(8, 20*time.Millisecond)
	cache.Put("k", domain.TranslationEntry{Word: "bonjour"})

	time.Sleep(60 * time.Millisecond)

	_, ok := cache.Get("k")
	assert.False(t, ok, "entry should age out")
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, KeyFor("bonjour"), KeyFor("bonjour"), "same word yields same key")
	assert.NotEqual(t, KeyFor("bonjour"), KeyFor("merci"))
	assert.Len(t, KeyFor("bonjour"), 16)
}

func TestFollowupKey(t *testing.T) {
	assert.Equal(t, "followup_42", FollowupKey(42))
	assert.NotEqual(t, FollowupKey(1), FollowupKey(2))
}
