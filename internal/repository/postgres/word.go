package postgres

import (
	"database/sql"
	"errors"

	"lexibot/internal/domain"

	"github.com/jmoiron/sqlx"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sqlx.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sqlx.DB) *WordRepo {
	return &WordRepo{db: db}
}

// Save inserts a word-translation pair
func (r *WordRepo) Save(userID, categoryID int64, word, translation string) error {
	query := `
		INSERT INTO words (user_id, category_id, word, translation)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, userID, categoryID, word, translation)
	return err
}

// GetByID returns a single word, or nil when it no longer exists
func (r *WordRepo) GetByID(userID, wordID int64) (*domain.Word, error) {
	var w domain.Word
	query := `
		SELECT id, user_id, category_id, word, translation, created_at
		FROM words
		WHERE id = $1 AND user_id = $2
	`
	err := r.db.Get(&w, query, wordID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListByCategory returns a page of the category's words, newest first
func (r *WordRepo) ListByCategory(userID, categoryID int64, limit, offset int) ([]domain.Word, error) {
	var words []domain.Word
	query := `
		SELECT id, user_id, category_id, word, translation, created_at
		FROM words
		WHERE user_id = $1 AND category_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	if err := r.db.Select(&words, query, userID, categoryID, limit, offset); err != nil {
		return nil, err
	}
	return words, nil
}

// CountByCategory returns how many words the category holds
func (r *WordRepo) CountByCategory(userID, categoryID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM words WHERE user_id = $1 AND category_id = $2`
	err := r.db.Get(&count, query, userID, categoryID)
	return count, err
}

// Delete removes a word owned by the user
func (r *WordRepo) Delete(userID, wordID int64) error {
	query := `DELETE FROM words WHERE id = $1 AND user_id = $2`
	_, err := r.db.Exec(query, wordID, userID)
	return err
}

// UpdateTranslation replaces a word's translation
func (r *WordRepo) UpdateTranslation(userID, wordID int64, translation string) error {
	query := `
		UPDATE words
		SET translation = $3
		WHERE id = $1 AND user_id = $2
	`
	_, err := r.db.Exec(query, wordID, userID, translation)
	return err
}

// RandomSample returns up to limit random words from the category
func (r *WordRepo) RandomSample(userID, categoryID int64, limit int) ([]domain.Word, error) {
	var words []domain.Word
	query := `
		SELECT id, user_id, category_id, word, translation, created_at
		FROM words
		WHERE user_id = $1 AND category_id = $2
		ORDER BY RANDOM()
		LIMIT $3
	`
	if err := r.db.Select(&words, query, userID, categoryID, limit); err != nil {
		return nil, err
	}
	return words, nil
}
