// Package models defines the domain entities persisted by the repository layer
// and the input/output data structures exchanged with the service layer.
package models

import "time"

// Priority is the urgency level of a Todo.
type Priority string

// Supported priority values. PriorityMedium is the default for new todos.
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is one of the supported priority values.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// User represents a registered account. Username and Email are effectively
// unique within the store; callers must check before insert.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CategoryCount carries per-category aggregates computed by the service layer.
// It is a decoration, never persisted.
type CategoryCount struct {
	Todos int `json:"todos"`
}

// Category groups todos belonging to a single user.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Count is filled by the service layer, not stored.
	Count *CategoryCount `json:"_count,omitempty"`
}

// Todo is a single task owned by a user and optionally filed under one of
// that user's categories.
type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	UserID      string     `json:"userId"`
	CategoryID  string     `json:"categoryId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Category is resolved by the service layer, not stored.
	Category *Category `json:"category,omitempty"`
}

// UserStats aggregates a user's todos and categories at call time.
type UserStats struct {
	TotalTodos      int `json:"totalTodos"`
	TotalCategories int `json:"totalCategories"`
	CompletedTodos  int `json:"completedTodos"`
	PendingTodos    int `json:"pendingTodos"`
}

// CreateTodoData is the caller-supplied part of a new todo.
type CreateTodoData struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CategoryID  string     `json:"categoryId,omitempty"`
}

// UpdateTodoData carries a partial todo update. Nil fields are left untouched;
// a non-nil empty CategoryID clears the category reference.
type UpdateTodoData struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	Priority    *Priority  `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CategoryID  *string    `json:"categoryId,omitempty"`
}

// CreateCategoryData is the caller-supplied part of a new category.
type CreateCategoryData struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// UpdateCategoryData carries a partial category update. Nil fields are left untouched.
type UpdateCategoryData struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// UpdateUserData carries a partial user update. Nil fields are left untouched.
type UpdateUserData struct {
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Name         *string `json:"name,omitempty"`
	Username     *string `json:"username,omitempty" validate:"omitempty,min=1"`
	PasswordHash *string `json:"password,omitempty"`
	Avatar       *string `json:"avatar,omitempty"`
}

// LoginCredentials is the payload of a remote login exchange.
type LoginCredentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterData is the payload of a local registration.
type RegisterData struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}
