package service

import (
	"fmt"
	"strings"

	"lexibot/internal/domain"
	"lexibot/internal/repository"
)

// WordService handles word business logic
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// Save stores a word-translation pair in the category
func (s *WordService) Save(userID, categoryID int64, word, translation string) error {
	word = strings.TrimSpace(word)
	translation = strings.TrimSpace(translation)
	if word == "" || translation == "" {
		return fmt.Errorf("word and translation cannot be empty")
	}
	return s.wordRepo.Save(userID, categoryID, word, translation)
}

// Get returns a single word, nil when it no longer exists
func (s *WordService) Get(userID, wordID int64) (*domain.Word, error) {
	return s.wordRepo.GetByID(userID, wordID)
}

// List returns a page of the category's words plus the total count
func (s *WordService) List(userID, categoryID int64, page, pageSize int) ([]domain.Word, int, error) {
	if page < 1 {
		page = 1
	}

	words, err := s.wordRepo.ListByCategory(userID, categoryID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.wordRepo.CountByCategory(userID, categoryID)
	if err != nil {
		return nil, 0, err
	}

	return words, total, nil
}

// Delete removes a word owned by the user
func (s *WordService) Delete(userID, wordID int64) error {
	return s.wordRepo.Delete(userID, wordID)
}

// UpdateTranslation replaces a word's translation
func (s *WordService) UpdateTranslation(userID, wordID int64, translation string) error {
	translation = strings.TrimSpace(translation)
	if translation == "" {
		return fmt.Errorf("translation cannot be empty")
	}
	return s.wordRepo.UpdateTranslation(userID, wordID, translation)
}

// PracticeSample returns up to limit random words for an exercise run
func (s *WordService) PracticeSample(userID, categoryID int64, limit int) ([]domain.Word, error) {
	return s.wordRepo.RandomSample(userID, categoryID, limit)
}
