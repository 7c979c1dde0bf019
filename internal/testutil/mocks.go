package testutil

import (
	"lexibot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureExists(userID int64, username string) error {
	args := m.Called(userID, username)
	return args.Error(0)
}

func (m *MockUserRepository) CurrentCategory(userID int64) (*domain.Category, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockUserRepository) SetCurrentCategory(userID, categoryID int64) error {
	args := m.Called(userID, categoryID)
	return args.Error(0)
}

// MockCategoryRepository is a mock for CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(userID int64, name string) (*domain.Category, error) {
	args := m.Called(userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByUser(userID int64) ([]domain.Category, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) CountByUser(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockCategoryRepository) DeleteCascade(userID, categoryID int64) error {
	args := m.Called(userID, categoryID)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) Save(userID, categoryID int64, word, translation string) error {
	args := m.Called(userID, categoryID, word, translation)
	return args.Error(0)
}

func (m *MockWordRepository) GetByID(userID, wordID int64) (*domain.Word, error) {
	args := m.Called(userID, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) ListByCategory(userID, categoryID int64, limit, offset int) ([]domain.Word, error) {
	args := m.Called(userID, categoryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) CountByCategory(userID, categoryID int64) (int, error) {
	args := m.Called(userID, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) Delete(userID, wordID int64) error {
	args := m.Called(userID, wordID)
	return args.Error(0)
}

func (m *MockWordRepository) UpdateTranslation(userID, wordID int64, translation string) error {
	args := m.Called(userID, wordID, translation)
	return args.Error(0)
}

func (m *MockWordRepository) RandomSample(userID, categoryID int64, limit int) ([]domain.Word, error) {
	args := m.Called(userID, categoryID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}
