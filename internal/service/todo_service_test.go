package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patric-chuzhbe/todokeeper/internal/models"
)

func TestTodoOwnershipIsolation(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")

	todo, err := f.todos.CreateTodo(models.CreateTodoData{Title: "Ship"}, alice.ID)
	require.NoError(t, err)

	_, err = f.todos.GetTodoByID(todo.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	title := "Hijacked"
	_, err = f.todos.UpdateTodo(todo.ID, models.UpdateTodoData{Title: &title}, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = f.todos.DeleteTodo(todo.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.todos.ToggleComplete(todo.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateTodoDefaults(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")

	todo, err := f.todos.CreateTodo(models.CreateTodoData{Title: "Ship"}, alice.ID)
	require.NoError(t, err)

	assert.False(t, todo.Completed)
	assert.Equal(t, models.PriorityMedium, todo.Priority, "priority should default to MEDIUM")
	assert.Empty(t, todo.CategoryID)

	_, err = f.todos.CreateTodo(models.CreateTodoData{}, alice.ID)
	assert.ErrorIs(t, err, ErrValidation, "a todo without a title should be rejected")

	_, err = f.todos.CreateTodo(models.CreateTodoData{Title: "x", Priority: "URGENT"}, alice.ID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateTodoRejectsForeignCategory(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")

	bobCat, err := f.categories.CreateCategory(models.CreateCategoryData{Name: "Private"}, bob.ID)
	require.NoError(t, err)

	_, err = f.todos.CreateTodo(models.CreateTodoData{Title: "Sneak", CategoryID: bobCat.ID}, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound, "a category owned by another user must not be attachable")

	_, err = f.todos.CreateTodo(models.CreateTodoData{Title: "Sneak", CategoryID: "no-such-id"}, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllTodosDecorationAndOrder(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")

	work, err := f.categories.CreateCategory(models.CreateCategoryData{Name: "Work"}, alice.ID)
	require.NoError(t, err)

	first, err := f.todos.CreateTodo(models.CreateTodoData{Title: "Ship", CategoryID: work.ID}, alice.ID)
	require.NoError(t, err)
	second, err := f.todos.CreateTodo(models.CreateTodoData{Title: "Rest"}, alice.ID)
	require.NoError(t, err)

	todos := f.todos.GetAllTodos(alice.ID)
	require.Len(t, todos, 2)

	assert.Equal(t, second.ID, todos[0].ID, "newest todo should come first")
	assert.Equal(t, first.ID, todos[1].ID)

	assert.Nil(t, todos[0].Category)
	require.NotNil(t, todos[1].Category, "a filed todo should carry its resolved category")
	assert.Equal(t, work.ID, todos[1].Category.ID)
	assert.Equal(t, "Work", todos[1].Category.Name)
}

func TestToggleComplete(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")

	todo, err := f.todos.CreateTodo(models.CreateTodoData{Title: "Ship"}, alice.ID)
	require.NoError(t, err)

	toggled, err := f.todos.ToggleComplete(todo.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.True(t, toggled.UpdatedAt.After(todo.UpdatedAt), "toggling should refresh updatedAt")

	back, err := f.todos.ToggleComplete(todo.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, back.Completed)
}

func TestGetTodosByPriority(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")

	_, err := f.todos.CreateTodo(models.CreateTodoData{Title: "Urgent", Priority: models.PriorityHigh}, alice.ID)
	require.NoError(t, err)
	_, err = f.todos.CreateTodo(models.CreateTodoData{Title: "Later", Priority: models.PriorityLow}, alice.ID)
	require.NoError(t, err)
	_, err = f.todos.CreateTodo(models.CreateTodoData{Title: "Also urgent", Priority: models.PriorityHigh}, alice.ID)
	require.NoError(t, err)

	high, err := f.todos.GetTodosByPriority(models.PriorityHigh, alice.ID)
	require.NoError(t, err)
	require.Len(t, high, 2)
	assert.Equal(t, "Also urgent", high[0].Title)
	assert.Equal(t, "Urgent", high[1].Title)

	_, err = f.todos.GetTodosByPriority("WHENEVER", alice.ID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetTodosByCategory(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")

	work, err := f.categories.CreateCategory(models.CreateCategoryData{Name: "Work"}, alice.ID)
	require.NoError(t, err)

	filed, err := f.todos.CreateTodo(models.CreateTodoData{Title: "Ship", CategoryID: work.ID}, alice.ID)
	require.NoError(t, err)
	_, err = f.todos.CreateTodo(models.CreateTodoData{Title: "Loose"}, alice.ID)
	require.NoError(t, err)

	todos, err := f.todos.GetTodosByCategory(work.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, filed.ID, todos[0].ID)
	require.NotNil(t, todos[0].Category)

	_, err = f.todos.GetTodosByCategory(work.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestTodoLifecycleScenario walks the full create/count/toggle/detach flow
// end to end.
func TestTodoLifecycleScenario(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")

	work, err := f.categories.CreateCategory(models.CreateCategoryData{Name: "Work"}, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, work.Count)
	assert.Equal(t, 0, work.Count.Todos)

	todo, err := f.todos.CreateTodo(models.CreateTodoData{Title: "Ship", CategoryID: work.ID}, alice.ID)
	require.NoError(t, err)

	withCount, err := f.categories.GetCategoryByID(work.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, withCount.Count.Todos)

	toggled, err := f.todos.ToggleComplete(todo.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.True(t, toggled.UpdatedAt.After(todo.UpdatedAt))

	stats := f.users.GetUserStats(alice.ID)
	assert.Equal(t, models.UserStats{
		TotalTodos:      1,
		TotalCategories: 1,
		CompletedTodos:  1,
		PendingTodos:    0,
	}, stats)

	require.NoError(t, f.categories.DeleteCategory(work.ID, alice.ID))

	detached, err := f.todos.GetTodoByID(todo.ID, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, detached.CategoryID, "deleting the category should detach the todo")
	assert.True(t, detached.Completed, "completion must survive the detach")
	assert.Nil(t, detached.Category)

	stats = f.users.GetUserStats(alice.ID)
	assert.Equal(t, models.UserStats{
		TotalTodos:      1,
		TotalCategories: 0,
		CompletedTodos:  1,
		PendingTodos:    0,
	}, stats)
}
