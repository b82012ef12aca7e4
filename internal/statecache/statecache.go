// Package statecache holds an in-memory mirror of the active user's todos
// and categories for UI consumption. It is updated optimistically from
// service return values after each mutation and can be replaced wholesale by
// Refetch. It is a read optimization and busy-flag holder only; the
// repository remains the source of truth and nothing consults the cache for
// correctness.
package statecache

import (
	"sync"

	"github.com/patric-chuzhbe/todokeeper/internal/models"
	"github.com/patric-chuzhbe/todokeeper/internal/service"
)

// busyFlags tracks in-flight operations for one entity family.
type busyFlags struct {
	loading  bool
	creating bool
	updating map[string]struct{}
	deleting map[string]struct{}
}

func newBusyFlags() busyFlags {
	return busyFlags{
		updating: map[string]struct{}{},
		deleting: map[string]struct{}{},
	}
}

// Cache mirrors the active user's entities. All methods are safe for
// concurrent use.
type Cache struct {
	mu sync.Mutex

	todos      []models.Todo
	categories []models.Category

	todoFlags     busyFlags
	categoryFlags busyFlags

	lastError string

	todoSvc     *service.TodoService
	categorySvc *service.CategoryService
}

// New creates an empty cache backed by the given services.
func New(todoSvc *service.TodoService, categorySvc *service.CategoryService) *Cache {
	return &Cache{
		todoFlags:     newBusyFlags(),
		categoryFlags: newBusyFlags(),
		todoSvc:       todoSvc,
		categorySvc:   categorySvc,
	}
}

// Refetch reloads both entity lists from the services and replaces the cache
// wholesale.
func (c *Cache) Refetch(userID string) {
	todos := c.todoSvc.GetAllTodos(userID)
	categories := c.categorySvc.GetAllCategories(userID)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.todos = todos
	c.categories = categories
}

// Todos returns a copy of the cached todo list.
func (c *Cache) Todos() []models.Todo {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]models.Todo, len(c.todos))
	copy(copied, c.todos)

	return copied
}

// Categories returns a copy of the cached category list.
func (c *Cache) Categories() []models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]models.Category, len(c.categories))
	copy(copied, c.categories)

	return copied
}

// SetTodos replaces the cached todo list.
func (c *Cache) SetTodos(todos []models.Todo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.todos = todos
}

// SetCategories replaces the cached category list.
func (c *Cache) SetCategories(categories []models.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.categories = categories
}

// AddTodo appends a freshly created todo.
func (c *Cache) AddTodo(todo models.Todo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.todos = append(c.todos, todo)
}

// ReplaceTodo swaps the cached todo with the same ID for the updated value.
func (c *Cache) ReplaceTodo(updated models.Todo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.todos {
		if c.todos[i].ID == updated.ID {
			c.todos[i] = updated
			return
		}
	}
}

// RemoveTodo drops the cached todo with the given ID.
func (c *Cache) RemoveTodo(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.todos {
		if c.todos[i].ID == id {
			c.todos = append(c.todos[:i], c.todos[i+1:]...)
			return
		}
	}
}

// AddCategory appends a freshly created category.
func (c *Cache) AddCategory(cat models.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.categories = append(c.categories, cat)
}

// ReplaceCategory swaps the cached category with the same ID for the updated
// value.
func (c *Cache) ReplaceCategory(updated models.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.categories {
		if c.categories[i].ID == updated.ID {
			c.categories[i] = updated
			return
		}
	}
}

// RemoveCategory drops the cached category with the given ID.
func (c *Cache) RemoveCategory(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.categories {
		if c.categories[i].ID == id {
			c.categories = append(c.categories[:i], c.categories[i+1:]...)
			return
		}
	}
}

// Family selects which entity family a busy flag belongs to.
type Family int

// The two cached entity families.
const (
	FamilyTodos Family = iota
	FamilyCategories
)

func (c *Cache) flags(family Family) *busyFlags {
	if family == FamilyTodos {
		return &c.todoFlags
	}

	return &c.categoryFlags
}

// SetLoading marks an in-flight list load for the family.
func (c *Cache) SetLoading(family Family, loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.flags(family).loading = loading
}

// Loading reports whether a list load is in flight for the family.
func (c *Cache) Loading(family Family) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.flags(family).loading
}

// SetCreating marks an in-flight create for the family.
func (c *Cache) SetCreating(family Family, creating bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.flags(family).creating = creating
}

// Creating reports whether a create is in flight for the family.
func (c *Cache) Creating(family Family) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.flags(family).creating
}

// SetUpdating marks or clears an in-flight update of one entity.
func (c *Cache) SetUpdating(family Family, id string, updating bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	setBusy(c.flags(family).updating, id, updating)
}

// Updating reports whether an update of the given entity is in flight.
func (c *Cache) Updating(family Family, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.flags(family).updating[id]

	return ok
}

// SetDeleting marks or clears an in-flight delete of one entity.
func (c *Cache) SetDeleting(family Family, id string, deleting bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	setBusy(c.flags(family).deleting, id, deleting)
}

// Deleting reports whether a delete of the given entity is in flight.
func (c *Cache) Deleting(family Family, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.flags(family).deleting[id]

	return ok
}

func setBusy(set map[string]struct{}, id string, busy bool) {
	if busy {
		set[id] = struct{}{}
		return
	}
	delete(set, id)
}

// SetError records the last operation error for UI display.
func (c *Cache) SetError(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastError = message
}

// LastError returns the last recorded error message, empty when none.
func (c *Cache) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastError
}

// ClearError resets the last-error slot.
func (c *Cache) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastError = ""
}
