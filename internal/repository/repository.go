package repository

import "lexibot/internal/domain"

// UserRepository defines user and user-settings data operations.
type UserRepository interface {
	EnsureExists(userID int64, username string) error
	CurrentCategory(userID int64) (*domain.Category, error)
	SetCurrentCategory(userID, categoryID int64) error
}

// CategoryRepository defines category data operations.
type CategoryRepository interface {
	Create(userID int64, name string) (*domain.Category, error)
	ListByUser(userID int64) ([]domain.Category, error)
	CountByUser(userID int64) (int, error)

	// DeleteCascade removes the category, all its words, and reassigns the
	// owner's current category in a single transaction. When no category
	// remains, current category becomes NULL.
	DeleteCascade(userID, categoryID int64) error
}

// WordRepository defines word data operations.
type WordRepository interface {
	Save(userID, categoryID int64, word, translation string) error
	GetByID(userID, wordID int64) (*domain.Word, error)
	ListByCategory(userID, categoryID int64, limit, offset int) ([]domain.Word, error)
	CountByCategory(userID, categoryID int64) (int, error)
	Delete(userID, wordID int64) error
	UpdateTranslation(userID, wordID int64, translation string) error
	RandomSample(userID, categoryID int64, limit int) ([]domain.Word, error)
}
