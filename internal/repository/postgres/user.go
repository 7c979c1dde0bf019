package postgres

import (
	"database/sql"
	"errors"

	"lexibot/internal/domain"

	"github.com/jmoiron/sqlx"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureExists creates the user record if it doesn't exist yet
func (r *UserRepo) EnsureExists(userID int64, username string) error {
	query := `
		INSERT INTO users (user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, username)
	return err
}

// CurrentCategory returns the user's current category, or nil when the user
// has none set.
func (r *UserRepo) CurrentCategory(userID int64) (*domain.Category, error) {
	var c domain.Category
	query := `
		SELECT c.id, c.user_id, c.name, c.created_at
		FROM users u
		JOIN categories c ON c.id = u.current_category_id
		WHERE u.user_id = $1
	`
	err := r.db.Get(&c, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SetCurrentCategory marks the category as the user's current one
func (r *UserRepo) SetCurrentCategory(userID, categoryID int64) error {
	query := `
		UPDATE users
		SET current_category_id = $2
		WHERE user_id = $1
	`
	_, err := r.db.Exec(query, userID, categoryID)
	return err
}
