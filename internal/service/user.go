package service

import (
	"lexibot/internal/domain"
	"lexibot/internal/repository"
)

// UserService handles user records and per-user settings
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// EnsureExists creates the user record if it doesn't exist
func (s *UserService) EnsureExists(userID int64, username string) error {
	return s.userRepo.EnsureExists(userID, username)
}

// CurrentCategory returns the user's current category, nil when unset
func (s *UserService) CurrentCategory(userID int64) (*domain.Category, error) {
	return s.userRepo.CurrentCategory(userID)
}

// SetCurrentCategory marks the category as the user's default target
func (s *UserService) SetCurrentCategory(userID, categoryID int64) error {
	return s.userRepo.SetCurrentCategory(userID, categoryID)
}
