package repository

import (
	"github.com/thoas/go-funk"

	"github.com/patric-chuzhbe/todokeeper/internal/kvstore"
	"github.com/patric-chuzhbe/todokeeper/internal/models"
)

// ListTodos returns every stored todo in storage order.
func (r *Repository) ListTodos() []models.Todo {
	return kvstore.ReadList[models.Todo](r.store, TodosKey)
}

// ListTodosByUser returns the todos owned by userID in storage order.
func (r *Repository) ListTodosByUser(userID string) []models.Todo {
	return funk.Filter(
		r.ListTodos(),
		func(t models.Todo) bool { return t.UserID == userID },
	).([]models.Todo)
}

// GetTodoByID returns the todo with the given ID, or ok=false.
func (r *Repository) GetTodoByID(id string) (*models.Todo, bool) {
	todos := r.ListTodos()
	for i := range todos {
		if todos[i].ID == id {
			copied := todos[i]
			return &copied, true
		}
	}

	return nil, false
}

// CreateTodo assigns an ID and timestamps to todo, appends it to the todos
// table, and returns the stored record.
func (r *Repository) CreateTodo(todo models.Todo) models.Todo {
	r.queue.Do(TodosKey, func() {
		todos := kvstore.ReadList[models.Todo](r.store, TodosKey)

		todo.ID = r.newID()
		now := r.now()
		todo.CreatedAt = now
		todo.UpdatedAt = now

		todos = append(todos, todo)
		kvstore.WriteList(r.store, TodosKey, todos)
	})

	return todo
}

// UpdateTodo merges the supplied fields over the stored record and refreshes
// updatedAt. A non-nil empty CategoryID clears the category reference. It
// returns ok=false, without creating anything, when no todo has the given ID.
func (r *Repository) UpdateTodo(id string, data models.UpdateTodoData) (*models.Todo, bool) {
	var updated *models.Todo

	r.queue.Do(TodosKey, func() {
		todos := kvstore.ReadList[models.Todo](r.store, TodosKey)
		for i := range todos {
			if todos[i].ID != id {
				continue
			}

			todo := &todos[i]
			if data.Title != nil {
				todo.Title = *data.Title
			}
			if data.Description != nil {
				todo.Description = *data.Description
			}
			if data.Completed != nil {
				todo.Completed = *data.Completed
			}
			if data.Priority != nil {
				todo.Priority = *data.Priority
			}
			if data.DueDate != nil {
				todo.DueDate = data.DueDate
			}
			if data.CategoryID != nil {
				todo.CategoryID = *data.CategoryID
			}
			todo.UpdatedAt = r.now()

			kvstore.WriteList(r.store, TodosKey, todos)

			copied := todos[i]
			updated = &copied

			return
		}
	})

	return updated, updated != nil
}

// DeleteTodo removes the todo with the given ID. It returns false when no
// todo matched.
func (r *Repository) DeleteTodo(id string) bool {
	removed := false

	r.queue.Do(TodosKey, func() {
		todos := kvstore.ReadList[models.Todo](r.store, TodosKey)
		kept := funk.Filter(todos, func(t models.Todo) bool { return t.ID != id }).([]models.Todo)
		if len(kept) == len(todos) {
			return
		}

		kvstore.WriteList(r.store, TodosKey, kept)
		removed = true
	})

	return removed
}
