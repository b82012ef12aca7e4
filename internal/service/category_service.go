package service

import (
	"fmt"

	"github.com/thoas/go-funk"

	"github.com/patric-chuzhbe/todokeeper/internal/models"
	"github.com/patric-chuzhbe/todokeeper/internal/repository"
)

// CategoryService handles category CRUD scoped to an acting user. A category
// whose stored owner differs from the caller is treated exactly like a
// missing one.
type CategoryService struct {
	repo *repository.Repository
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo *repository.Repository) *CategoryService {
	return &CategoryService{repo: repo}
}

// getOwned loads the category and applies the ownership check.
func (s *CategoryService) getOwned(id, userID string) (*models.Category, error) {
	cat, found := s.repo.GetCategoryByID(id)
	if !found || cat.UserID != userID {
		return nil, ErrNotFound
	}

	return cat, nil
}

func (s *CategoryService) countTodos(categoryID, userID string) int {
	todos := s.repo.ListTodosByUser(userID)

	return len(funk.Filter(todos, func(t models.Todo) bool { return t.CategoryID == categoryID }).([]models.Todo))
}

// GetAllCategories returns the user's categories, each decorated with its
// todo count, sorted by creation time descending.
func (s *CategoryService) GetAllCategories(userID string) []models.Category {
	categories := s.repo.ListCategoriesByUser(userID)
	todos := s.repo.ListTodosByUser(userID)

	countByCategory := map[string]int{}
	for _, todo := range todos {
		if todo.CategoryID != "" {
			countByCategory[todo.CategoryID]++
		}
	}

	for i := range categories {
		categories[i].Count = &models.CategoryCount{Todos: countByCategory[categories[i].ID]}
	}
	sortCategoriesNewestFirst(categories)

	return categories
}

// GetCategoryByID returns the user's category decorated with its todo count.
func (s *CategoryService) GetCategoryByID(id, userID string) (*models.Category, error) {
	cat, err := s.getOwned(id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}

	cat.Count = &models.CategoryCount{Todos: s.countTodos(id, userID)}

	return cat, nil
}

// CreateCategory validates the input and stores a new category owned by
// userID.
func (s *CategoryService) CreateCategory(data models.CreateCategoryData, userID string) (*models.Category, error) {
	if err := validateInput(data); err != nil {
		return nil, err
	}

	cat := s.repo.CreateCategory(models.Category{
		Name:        data.Name,
		Description: data.Description,
		Color:       data.Color,
		UserID:      userID,
	})
	cat.Count = &models.CategoryCount{Todos: 0}

	return &cat, nil
}

// UpdateCategory merges the supplied fields over the user's category and
// returns it decorated with its todo count.
func (s *CategoryService) UpdateCategory(id string, data models.UpdateCategoryData, userID string) (*models.Category, error) {
	if err := validateInput(data); err != nil {
		return nil, err
	}
	if _, err := s.getOwned(id, userID); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	updated, found := s.repo.UpdateCategory(id, data)
	if !found {
		return nil, fmt.Errorf("failed to update category: %w", ErrNotFound)
	}

	updated.Count = &models.CategoryCount{Todos: s.countTodos(id, userID)}

	return updated, nil
}

// DeleteCategory removes the user's category. Todos that referenced it keep
// existing with their category reference cleared.
func (s *CategoryService) DeleteCategory(id, userID string) error {
	if _, err := s.getOwned(id, userID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if !s.repo.DeleteCategory(id) {
		return fmt.Errorf("failed to delete category: %w", ErrNotFound)
	}

	return nil
}

// CategoryWithTodos is a category joined with its todos for a detail view.
type CategoryWithTodos struct {
	models.Category
	Todos []models.Todo `json:"todos"`
}

// GetCategoryWithTodos returns the user's category together with its todos,
// sorted by creation time descending.
func (s *CategoryService) GetCategoryWithTodos(id, userID string) (*CategoryWithTodos, error) {
	cat, err := s.getOwned(id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category with todos: %w", err)
	}

	todos := funk.Filter(
		s.repo.ListTodosByUser(userID),
		func(t models.Todo) bool { return t.CategoryID == id },
	).([]models.Todo)
	sortTodosNewestFirst(todos)

	cat.Count = &models.CategoryCount{Todos: len(todos)}

	return &CategoryWithTodos{
		Category: *cat,
		Todos:    todos,
	}, nil
}
