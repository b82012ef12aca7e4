package service

import (
	"fmt"

	"github.com/thoas/go-funk"

	"github.com/patric-chuzhbe/todokeeper/internal/models"
	"github.com/patric-chuzhbe/todokeeper/internal/repository"
)

// TodoService handles todo CRUD scoped to an acting user, with the same
// ownership rule as CategoryService: a todo stored under another user is
// indistinguishable from a missing one.
type TodoService struct {
	repo *repository.Repository
}

// NewTodoService creates a new todo service.
func NewTodoService(repo *repository.Repository) *TodoService {
	return &TodoService{repo: repo}
}

// getOwned loads the todo and applies the ownership check.
func (s *TodoService) getOwned(id, userID string) (*models.Todo, error) {
	todo, found := s.repo.GetTodoByID(id)
	if !found || todo.UserID != userID {
		return nil, ErrNotFound
	}

	return todo, nil
}

// checkCategoryOwned verifies that a referenced category exists and belongs
// to userID. The original design trusted the caller here; validating closes a
// referential-integrity gap at the cost of one lookup.
func (s *TodoService) checkCategoryOwned(categoryID, userID string) error {
	cat, found := s.repo.GetCategoryByID(categoryID)
	if !found || cat.UserID != userID {
		return ErrNotFound
	}

	return nil
}

// resolveCategory attaches the todo's category object, when it has one and
// the category still exists under the same user.
func (s *TodoService) resolveCategory(todo *models.Todo) {
	if todo.CategoryID == "" {
		return
	}

	cat, found := s.repo.GetCategoryByID(todo.CategoryID)
	if found && cat.UserID == todo.UserID {
		todo.Category = cat
	}
}

func (s *TodoService) decorateAndSort(todos []models.Todo, userID string) []models.Todo {
	categories := s.repo.ListCategoriesByUser(userID)
	byID := make(map[string]models.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	for i := range todos {
		if todos[i].CategoryID == "" {
			continue
		}
		if cat, ok := byID[todos[i].CategoryID]; ok {
			copied := cat
			todos[i].Category = &copied
		}
	}
	sortTodosNewestFirst(todos)

	return todos
}

// GetAllTodos returns the user's todos, each decorated with its resolved
// category, sorted by creation time descending.
func (s *TodoService) GetAllTodos(userID string) []models.Todo {
	return s.decorateAndSort(s.repo.ListTodosByUser(userID), userID)
}

// GetTodoByID returns the user's todo decorated with its resolved category.
func (s *TodoService) GetTodoByID(id, userID string) (*models.Todo, error) {
	todo, err := s.getOwned(id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch todo: %w", err)
	}

	s.resolveCategory(todo)

	return todo, nil
}

// CreateTodo validates the input and stores a new todo owned by userID.
// Completed starts false and priority defaults to MEDIUM. A supplied category
// must belong to the same user.
func (s *TodoService) CreateTodo(data models.CreateTodoData, userID string) (*models.Todo, error) {
	if err := validateInput(data); err != nil {
		return nil, err
	}
	if data.CategoryID != "" {
		if err := s.checkCategoryOwned(data.CategoryID, userID); err != nil {
			return nil, fmt.Errorf("failed to create todo: %w", err)
		}
	}

	priority := data.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	todo := s.repo.CreateTodo(models.Todo{
		Title:       data.Title,
		Description: data.Description,
		Completed:   false,
		Priority:    priority,
		DueDate:     data.DueDate,
		UserID:      userID,
		CategoryID:  data.CategoryID,
	})
	s.resolveCategory(&todo)

	return &todo, nil
}

// UpdateTodo merges the supplied fields over the user's todo. A supplied
// non-empty category must belong to the same user; an empty one clears the
// reference.
func (s *TodoService) UpdateTodo(id string, data models.UpdateTodoData, userID string) (*models.Todo, error) {
	if err := validateInput(data); err != nil {
		return nil, err
	}
	if _, err := s.getOwned(id, userID); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	if data.CategoryID != nil && *data.CategoryID != "" {
		if err := s.checkCategoryOwned(*data.CategoryID, userID); err != nil {
			return nil, fmt.Errorf("failed to update todo: %w", err)
		}
	}

	updated, found := s.repo.UpdateTodo(id, data)
	if !found {
		return nil, fmt.Errorf("failed to update todo: %w", ErrNotFound)
	}

	s.resolveCategory(updated)

	return updated, nil
}

// DeleteTodo removes the user's todo.
func (s *TodoService) DeleteTodo(id, userID string) error {
	if _, err := s.getOwned(id, userID); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	if !s.repo.DeleteTodo(id) {
		return fmt.Errorf("failed to delete todo: %w", ErrNotFound)
	}

	return nil
}

// ToggleComplete flips the completion flag of the user's todo through a
// read-then-update; there is no dedicated atomic toggle.
func (s *TodoService) ToggleComplete(id, userID string) (*models.Todo, error) {
	todo, err := s.getOwned(id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle todo completion: %w", err)
	}

	completed := !todo.Completed
	updated, found := s.repo.UpdateTodo(id, models.UpdateTodoData{Completed: &completed})
	if !found {
		return nil, fmt.Errorf("failed to toggle todo completion: %w", ErrNotFound)
	}

	s.resolveCategory(updated)

	return updated, nil
}

// GetTodosByCategory returns the user's todos filed under the given category,
// decorated and sorted by creation time descending.
func (s *TodoService) GetTodosByCategory(categoryID, userID string) ([]models.Todo, error) {
	if err := s.checkCategoryOwned(categoryID, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch todos by category: %w", err)
	}

	todos := funk.Filter(
		s.repo.ListTodosByUser(userID),
		func(t models.Todo) bool { return t.CategoryID == categoryID },
	).([]models.Todo)

	return s.decorateAndSort(todos, userID), nil
}

// GetTodosByPriority returns the user's todos with the given priority,
// decorated and sorted by creation time descending.
func (s *TodoService) GetTodosByPriority(priority models.Priority, userID string) ([]models.Todo, error) {
	if !priority.Valid() {
		return nil, fmt.Errorf("failed to fetch todos by priority: %w", ErrValidation)
	}

	todos := funk.Filter(
		s.repo.ListTodosByUser(userID),
		func(t models.Todo) bool { return t.Priority == priority },
	).([]models.Todo)

	return s.decorateAndSort(todos, userID), nil
}
