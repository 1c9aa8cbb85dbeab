package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ljacquet/patrimoine-backend/internal/apperrors"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
)

// defaultUsername is the account provisioned at startup so the API is usable
// without registration.
const defaultUsername = "admin"

// UserService manages accounts and resolves the acting user for requests that
// do not name one.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// EnsureDefaultUser returns the default account, creating it if this is the
// first startup against the database.
func (s *UserService) EnsureDefaultUser() (model.User, error) {
	user, err := s.userRepo.GetUserByUsername(defaultUsername)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return model.User{}, fmt.Errorf("failed to look up default user: %w", err)
	}

	user = model.User{
		ID:        uuid.New().String(),
		Username:  defaultUsername,
		Language:  "en",
		CreatedAt: time.Now().UTC(),
	}
	err = s.userRepo.InsertUser(user)
	if errors.Is(err, apperrors.ErrDuplicateEntry) {
		// Concurrent startup created it first.
		return s.userRepo.GetUserByUsername(defaultUsername)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create default user: %w", err)
	}
	return user, nil
}

// ResolveUser maps a request's user ID to an account, falling back to the
// default user when the ID is empty.
func (s *UserService) ResolveUser(userID string) (model.User, error) {
	if userID == "" {
		return s.EnsureDefaultUser()
	}
	return s.userRepo.GetUserOnID(userID)
}

// GetAllUsers returns every account, used by the daily snapshot job.
func (s *UserService) GetAllUsers() ([]model.User, error) {
	return s.userRepo.GetAllUsers()
}

// UpdateLanguage changes a user's preferred language.
func (s *UserService) UpdateLanguage(userID, language string) error {
	return s.userRepo.UpdateLanguage(userID, language)
}
