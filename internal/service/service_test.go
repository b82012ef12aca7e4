package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/patric-chuzhbe/todokeeper/internal/kvstore/memkv"
	"github.com/patric-chuzhbe/todokeeper/internal/models"
	"github.com/patric-chuzhbe/todokeeper/internal/repository"
	"github.com/patric-chuzhbe/todokeeper/internal/writequeue"
)

// fixture bundles the three services over one shared repository with a
// deterministic clock.
type fixture struct {
	users      *UserService
	categories *CategoryService
	todos      *TodoService
	repo       *repository.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	queue := writequeue.New()
	t.Cleanup(queue.Close)

	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := repository.New(memkv.New(), queue, repository.WithClock(func() time.Time {
		current = current.Add(time.Second)
		return current
	}))

	return &fixture{
		users:      NewUserService(repo),
		categories: NewCategoryService(repo),
		todos:      NewTodoService(repo),
		repo:       repo,
	}
}

func (f *fixture) createUser(t *testing.T, username string) models.User {
	t.Helper()

	usr := f.users.CreateUser(models.User{
		Email:    username + "@example.com",
		Username: username,
	})
	require.NotEmpty(t, usr.ID)

	return usr
}
