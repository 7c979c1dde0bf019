package domain

import "time"

// Category groups a user's words under a named list
type Category struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// User represents a bot user and their settings
type User struct {
	UserID            int64     `db:"user_id"`
	Username          string    `db:"username"`
	CurrentCategoryID *int64    `db:"current_category_id"`
	CreatedAt         time.Time `db:"created_at"`
}
