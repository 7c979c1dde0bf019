package testutil

import (
	"time"

	"lexibot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestCategory creates a test category
func NewTestCategory(id, userID int64, name string) *domain.Category {
	return &domain.Category{
		ID:        id,
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// NewTestWord creates a test word
func NewTestWord(id, userID, categoryID int64, word, translation string) *domain.Word {
	return &domain.Word{
		ID:          id,
		UserID:      userID,
		CategoryID:  categoryID,
		Word:        word,
		Translation: translation,
		CreatedAt:   time.Now(),
	}
}
