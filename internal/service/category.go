package service

import (
	"errors"
	"fmt"
	"strings"

	"lexibot/internal/domain"
	"lexibot/internal/repository"
)

// ErrLastCategory is returned when deleting a user's only category.
var ErrLastCategory = errors.New("cannot delete the last category")

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository, userRepo repository.UserRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

// Create creates a category and sets it as the user's current one
func (s *CategoryService) Create(userID int64, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name cannot be empty")
	}

	category, err := s.categoryRepo.Create(userID, name)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetCurrentCategory(userID, category.ID); err != nil {
		return nil, err
	}

	return category, nil
}

// List returns the user's categories
func (s *CategoryService) List(userID int64) ([]domain.Category, error) {
	return s.categoryRepo.ListByUser(userID)
}

// HasAny reports whether the user owns at least one category
func (s *CategoryService) HasAny(userID int64) (bool, error) {
	count, err := s.categoryRepo.CountByUser(userID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByName returns the user's category with the exact given name, nil
// when there is no match.
func (s *CategoryService) FindByName(userID int64, name string) (*domain.Category, error) {
	categories, err := s.categoryRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].Name == name {
			return &categories[i], nil
		}
	}
	return nil, nil
}

// Delete removes the category and all its words. The user's only remaining
// category can never be deleted.
func (s *CategoryService) Delete(userID, categoryID int64) error {
	count, err := s.categoryRepo.CountByUser(userID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastCategory
	}
	return s.categoryRepo.DeleteCascade(userID, categoryID)
}
