package service

import (
	"fmt"

	"github.com/patric-chuzhbe/todokeeper/internal/models"
	"github.com/patric-chuzhbe/todokeeper/internal/repository"
)

// UserService exposes account lookup, mutation, and aggregate statistics.
// Unlike the category and todo services it is not scoped by an acting user:
// its callers already hold the user's own identifier.
type UserService struct {
	repo *repository.Repository
}

// NewUserService creates a new user service.
func NewUserService(repo *repository.Repository) *UserService {
	return &UserService{repo: repo}
}

// GetUserByID returns the user with the given ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	usr, found := s.repo.GetUserByID(id)
	if !found {
		return nil, fmt.Errorf("failed to fetch user: %w", ErrNotFound)
	}

	return usr, nil
}

// GetUserByEmail returns the user with the given email.
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	usr, found := s.repo.GetUserByEmail(email)
	if !found {
		return nil, fmt.Errorf("failed to fetch user by email: %w", ErrNotFound)
	}

	return usr, nil
}

// GetUserByUsername returns the user with the given username.
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	usr, found := s.repo.GetUserByUsername(username)
	if !found {
		return nil, fmt.Errorf("failed to fetch user by username: %w", ErrNotFound)
	}

	return usr, nil
}

// CreateUser stores a new user record. Uniqueness of email/username is the
// caller's responsibility (see the auth service's registration flow).
func (s *UserService) CreateUser(usr models.User) models.User {
	return s.repo.CreateUser(usr)
}

// UpdateUser merges the supplied fields over the stored user.
func (s *UserService) UpdateUser(id string, data models.UpdateUserData) (*models.User, error) {
	if err := validateInput(data); err != nil {
		return nil, err
	}

	updated, found := s.repo.UpdateUser(id, data)
	if !found {
		return nil, fmt.Errorf("failed to update user: %w", ErrNotFound)
	}

	return updated, nil
}

// DeleteUser removes the user and, by cascade, everything the user owns.
func (s *UserService) DeleteUser(id string) error {
	if !s.repo.DeleteUser(id) {
		return fmt.Errorf("failed to delete user: %w", ErrNotFound)
	}

	return nil
}

// GetUserStats scans the user's todos and categories at call time and returns
// the aggregate counts. Nothing is cached or denormalized.
func (s *UserService) GetUserStats(userID string) models.UserStats {
	todos := s.repo.ListTodosByUser(userID)
	categories := s.repo.ListCategoriesByUser(userID)

	stats := models.UserStats{
		TotalTodos:      len(todos),
		TotalCategories: len(categories),
	}
	for _, todo := range todos {
		if todo.Completed {
			stats.CompletedTodos++
		} else {
			stats.PendingTodos++
		}
	}

	return stats
}
