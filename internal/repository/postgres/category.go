package postgres

import (
	"fmt"

	"lexibot/internal/domain"

	"github.com/jmoiron/sqlx"
)

// CategoryRepo implements repository.CategoryRepository
type CategoryRepo struct {
	db *sqlx.DB
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(db *sqlx.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create inserts a category and returns it
func (r *CategoryRepo) Create(userID int64, name string) (*domain.Category, error) {
	var c domain.Category
	query := `
		INSERT INTO categories (user_id, name)
		VALUES ($1, $2)
		RETURNING id, user_id, name, created_at
	`
	if err := r.db.Get(&c, query, userID, name); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByUser returns the user's categories, oldest first
func (r *CategoryRepo) ListByUser(userID int64) ([]domain.Category, error) {
	var categories []domain.Category
	query := `
		SELECT id, user_id, name, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY created_at
	`
	if err := r.db.Select(&categories, query, userID); err != nil {
		return nil, err
	}
	return categories, nil
}

// CountByUser returns how many categories the user owns
func (r *CategoryRepo) CountByUser(userID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM categories WHERE user_id = $1`
	err := r.db.Get(&count, query, userID)
	return count, err
}

// DeleteCascade deletes the category's words, the category itself, and
// repoints the owner's current category at a remaining one (or NULL when
// none remain), all in one transaction.
func (r *CategoryRepo) DeleteCascade(userID, categoryID int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM words WHERE category_id = $1 AND user_id = $2`,
		categoryID, userID,
	); err != nil {
		return fmt.Errorf("delete words: %w", err)
	}

	if _, err := tx.Exec(
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`,
		categoryID, userID,
	); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	// The subquery yields NULL when the user has no categories left.
	if _, err := tx.Exec(`
		UPDATE users
		SET current_category_id = (
			SELECT id FROM categories
			WHERE user_id = $2
			ORDER BY created_at
			LIMIT 1
		)
		WHERE user_id = $2 AND current_category_id = $1
	`, categoryID, userID); err != nil {
		return fmt.Errorf("reassign current category: %w", err)
	}

	return tx.Commit()
}
