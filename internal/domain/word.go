package domain

import "time"

// Word represents a word-translation pair stored in a category
type Word struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	CategoryID  int64     `db:"category_id"`
	Word        string    `db:"word"`
	Translation string    `db:"translation"`
	CreatedAt   time.Time `db:"created_at"`
}
