// Package service is the user-scoped façade over the repository. Every read
// or write of a category or todo is checked against the acting user before it
// proceeds, computed views (todo counts, resolved categories, aggregate
// stats) are decorated here, and listings are returned newest-first.
package service

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/patric-chuzhbe/todokeeper/internal/models"
)

var validate = validator.New()

func validateInput(data any) error {
	if err := validate.Struct(data); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return nil
}

func sortTodosNewestFirst(todos []models.Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		return todos[i].CreatedAt.After(todos[j].CreatedAt)
	})
}

func sortCategoriesNewestFirst(categories []models.Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].CreatedAt.After(categories[j].CreatedAt)
	})
}
