package postgres

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestWordRepo_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWordRepo(db)

	mock.ExpectExec("INSERT INTO words").
		WithArgs(int64(123), int64(7), "apple", "яблоко").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(123, 7, "apple", "яблоко")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWordRepo(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "category_id", "word", "translation", "created_at"}).
		AddRow(42, 123, 7, "apple", "яблоко", time.Now())
	mock.ExpectQuery("SELECT id, user_id, category_id, word, translation, created_at FROM words").
		WithArgs(int64(42), int64(123)).
		WillReturnRows(rows)

	word, err := repo.GetByID(123, 42)

	assert.NoError(t, err)
	assert.NotNil(t, word)
	assert.Equal(t, "apple", word.Word)
	assert.Equal(t, "яблоко", word.Translation)
}

func TestWordRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT id, user_id, category_id, word, translation, created_at FROM words").
		WithArgs(int64(42), int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category_id", "word", "translation", "created_at"}))

	word, err := repo.GetByID(123, 42)

	assert.NoError(t, err)
	assert.Nil(t, word)
}

func TestWordRepo_ListByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWordRepo(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "category_id", "word", "translation", "created_at"}).
		AddRow(2, 123, 7, "pear", "груша", time.Now()).
		AddRow(1, 123, 7, "apple", "яблоко", time.Now())
	mock.ExpectQuery("SELECT id, user_id, category_id, word, translation, created_at FROM words").
		WithArgs(int64(123), int64(7), 50, 0).
		WillReturnRows(rows)

	words, err := repo.ListByCategory(123, 7, 50, 0)

	assert.NoError(t, err)
	assert.Len(t, words, 2)
	assert.Equal(t, "pear", words[0].Word)
}

func TestWordRepo_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWordRepo(db)

	mock.ExpectExec("DELETE FROM words").
		WithArgs(int64(42), int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(123, 42)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_UpdateTranslation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWordRepo(db)

	mock.ExpectExec("UPDATE words").
		WithArgs(int64(42), int64(123), "красное яблоко").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTranslation(123, 42, "красное яблоко")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_RandomSample_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT id, user_id, category_id, word, translation, created_at FROM words").
		WithArgs(int64(123), int64(7), 10).
		WillReturnError(fmt.Errorf("connection reset"))

	words, err := repo.RandomSample(123, 7, 10)

	assert.Error(t, err)
	assert.Nil(t, words)
}
