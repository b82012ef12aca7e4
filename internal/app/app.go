// Package app assembles the application: configuration, logging, the storage
// backend, the per-table write queue, the repository, the domain services,
// the auth boundary, and the client state cache. There is no implicit
// singleton; the whole object graph hangs off the App value and closes with
// it.
package app

import (
	"github.com/patric-chuzhbe/todokeeper/internal/auth"
	"github.com/patric-chuzhbe/todokeeper/internal/authclient"
	"github.com/patric-chuzhbe/todokeeper/internal/config"
	"github.com/patric-chuzhbe/todokeeper/internal/kvstore"
	"github.com/patric-chuzhbe/todokeeper/internal/kvstore/filekv"
	"github.com/patric-chuzhbe/todokeeper/internal/kvstore/memkv"
	"github.com/patric-chuzhbe/todokeeper/internal/logger"
	"github.com/patric-chuzhbe/todokeeper/internal/repository"
	"github.com/patric-chuzhbe/todokeeper/internal/service"
	"github.com/patric-chuzhbe/todokeeper/internal/session"
	"github.com/patric-chuzhbe/todokeeper/internal/statecache"
	"github.com/patric-chuzhbe/todokeeper/internal/writequeue"
)

// App owns the assembled object graph. The exported fields are the service
// surface a UI embeds against.
type App struct {
	Users      *service.UserService
	Categories *service.CategoryService
	Todos      *service.TodoService
	Auth       *auth.Service
	Session    *session.Session
	Cache      *statecache.Cache

	store kvstore.Storage
	queue *writequeue.Queue
}

// New builds the application from cfg.
func New(cfg *config.Config) (*App, error) {
	if err := logger.Init(cfg.LogLevel); err != nil {
		return nil, err
	}

	var store kvstore.Storage
	if cfg.InMemory {
		store = memkv.New()
	} else {
		store = filekv.New(cfg.StorageDir)
	}
	if !store.Available() {
		logger.Log.Warnln("running without persistent storage; all state is process-local")
	}

	queue := writequeue.New()
	repo := repository.New(store, queue)
	sess := session.New(store)

	todoSvc := service.NewTodoService(repo)
	categorySvc := service.NewCategoryService(repo)

	return &App{
		Users:      service.NewUserService(repo),
		Categories: categorySvc,
		Todos:      todoSvc,
		Auth:       auth.New(repo, sess, authclient.New(cfg.AuthAPIBase)),
		Session:    sess,
		Cache:      statecache.New(todoSvc, categorySvc),
		store:      store,
		queue:      queue,
	}, nil
}

// Close drains the write queue, closes the store, and flushes the logger.
func (a *App) Close() error {
	a.queue.Close()

	if err := a.store.Close(); err != nil {
		return err
	}

	return logger.Sync()
}
