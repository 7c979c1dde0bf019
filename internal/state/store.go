package state

import (
	"sync"

	"lexibot/internal/domain"
)

// Store keeps one flow's step records keyed by chat ID. Each flow owns its
// own Store instance, so flows never see each other's records.
type Store[T any] struct {
	mu sync.RWMutex
	m  map[int64]T
}

// NewStore creates an empty step store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{m: make(map[int64]T)}
}

// Get returns the chat's step record, if any.
func (s *Store[T]) Get(chatID int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.m[chatID]
	return rec, ok
}

// Set stores the chat's step record, replacing any previous one.
func (s *Store[T]) Set(chatID int64, rec T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[chatID] = rec
}

// Delete removes the chat's step record. Deleting an absent record is a no-op.
func (s *Store[T]) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, chatID)
}

// Len returns the number of chats currently mid-flow.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Modes maps each chat to its current conversation mode. A chat with no
// entry is idle.
type Modes struct {
	mu sync.RWMutex
	m  map[int64]domain.Mode
}

// NewModes creates an empty mode map.
func NewModes() *Modes {
	return &Modes{m: make(map[int64]domain.Mode)}
}

// Get returns the chat's mode, defaulting to idle.
func (s *Modes) Get(chatID int64) domain.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if mode, ok := s.m[chatID]; ok {
		return mode
	}
	return domain.ModeIdle
}

// Set switches the chat to the given mode.
func (s *Modes) Set(chatID int64, mode domain.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[chatID] = mode
}

// Clear returns the chat to idle.
func (s *Modes) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, chatID)
}
