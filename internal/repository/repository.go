// Package repository implements typed CRUD over the key/value store for
// users, categories, and todos, and owns the relationship invariants between
// them: every category and todo carries the ID of an existing user, deleting
// a user removes everything it owns, and deleting a category detaches its
// todos instead of removing them.
package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/patric-chuzhbe/todokeeper/internal/kvstore"
	"github.com/patric-chuzhbe/todokeeper/internal/writequeue"
)

// Storage keys, one table per key. The layout matches the original persisted
// format so existing data files keep working.
const (
	UsersKey      = "todoapp_users"
	CategoriesKey = "todoapp_categories"
	TodosKey      = "todoapp_todos"
)

// Repository is the single data-access handle. It generates identifiers,
// stamps timestamps, and routes every mutation through the per-table write
// queue.
type Repository struct {
	store kvstore.Storage
	queue *writequeue.Queue
	now   func() time.Time
	newID func() string
}

// Option customizes a Repository.
type Option func(*Repository)

// WithClock substitutes the timestamp source. Tests use it to make
// createdAt/updatedAt deterministic.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// New returns a repository over the given store. Mutations are serialized per
// table through queue.
func New(store kvstore.Storage, queue *writequeue.Queue, opts ...Option) *Repository {
	r := &Repository{
		store: store,
		queue: queue,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}
