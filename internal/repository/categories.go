package repository

import (
	"github.com/thoas/go-funk"

	"github.com/patric-chuzhbe/todokeeper/internal/kvstore"
	"github.com/patric-chuzhbe/todokeeper/internal/models"
)

// ListCategories returns every stored category in storage order.
func (r *Repository) ListCategories() []models.Category {
	return kvstore.ReadList[models.Category](r.store, CategoriesKey)
}

// ListCategoriesByUser returns the categories owned by userID in storage order.
func (r *Repository) ListCategoriesByUser(userID string) []models.Category {
	return funk.Filter(
		r.ListCategories(),
		func(c models.Category) bool { return c.UserID == userID },
	).([]models.Category)
}

// GetCategoryByID returns the category with the given ID, or ok=false.
func (r *Repository) GetCategoryByID(id string) (*models.Category, bool) {
	categories := r.ListCategories()
	for i := range categories {
		if categories[i].ID == id {
			copied := categories[i]
			return &copied, true
		}
	}

	return nil, false
}

// CreateCategory assigns an ID and timestamps to cat, appends it to the
// categories table, and returns the stored record.
func (r *Repository) CreateCategory(cat models.Category) models.Category {
	r.queue.Do(CategoriesKey, func() {
		categories := kvstore.ReadList[models.Category](r.store, CategoriesKey)

		cat.ID = r.newID()
		now := r.now()
		cat.CreatedAt = now
		cat.UpdatedAt = now

		categories = append(categories, cat)
		kvstore.WriteList(r.store, CategoriesKey, categories)
	})

	return cat
}

// UpdateCategory merges the supplied fields over the stored record and
// refreshes updatedAt. It returns ok=false, without creating anything, when
// no category has the given ID.
func (r *Repository) UpdateCategory(id string, data models.UpdateCategoryData) (*models.Category, bool) {
	var updated *models.Category

	r.queue.Do(CategoriesKey, func() {
		categories := kvstore.ReadList[models.Category](r.store, CategoriesKey)
		for i := range categories {
			if categories[i].ID != id {
				continue
			}

			cat := &categories[i]
			if data.Name != nil {
				cat.Name = *data.Name
			}
			if data.Description != nil {
				cat.Description = *data.Description
			}
			if data.Color != nil {
				cat.Color = *data.Color
			}
			cat.UpdatedAt = r.now()

			kvstore.WriteList(r.store, CategoriesKey, categories)

			copied := categories[i]
			updated = &copied

			return
		}
	})

	return updated, updated != nil
}

// DeleteCategory removes the category and rewrites every todo that referenced
// it to have no category, leaving the todos' other fields untouched. It
// returns false when no category matched.
func (r *Repository) DeleteCategory(id string) bool {
	removed := false

	r.queue.Do(CategoriesKey, func() {
		categories := kvstore.ReadList[models.Category](r.store, CategoriesKey)
		kept := funk.Filter(categories, func(c models.Category) bool { return c.ID != id }).([]models.Category)
		if len(kept) == len(categories) {
			return
		}

		kvstore.WriteList(r.store, CategoriesKey, kept)
		removed = true
	})
	if !removed {
		return false
	}

	r.queue.Do(TodosKey, func() {
		todos := kvstore.ReadList[models.Todo](r.store, TodosKey)
		for i := range todos {
			if todos[i].CategoryID == id {
				todos[i].CategoryID = ""
			}
		}
		kvstore.WriteList(r.store, TodosKey, todos)
	})

	return true
}
