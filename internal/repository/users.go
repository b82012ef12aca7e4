package repository

import (
	"github.com/thoas/go-funk"

	"github.com/patric-chuzhbe/todokeeper/internal/kvstore"
	"github.com/patric-chuzhbe/todokeeper/internal/models"
)

// ListUsers returns every stored user in storage order.
func (r *Repository) ListUsers() []models.User {
	return kvstore.ReadList[models.User](r.store, UsersKey)
}

// GetUserByID returns the user with the given ID, or ok=false.
func (r *Repository) GetUserByID(id string) (*models.User, bool) {
	return findUser(r.ListUsers(), func(u models.User) bool { return u.ID == id })
}

// GetUserByEmail returns the user with the given email, or ok=false.
func (r *Repository) GetUserByEmail(email string) (*models.User, bool) {
	return findUser(r.ListUsers(), func(u models.User) bool { return u.Email == email })
}

// GetUserByUsername returns the user with the given username, or ok=false.
func (r *Repository) GetUserByUsername(username string) (*models.User, bool) {
	return findUser(r.ListUsers(), func(u models.User) bool { return u.Username == username })
}

// CreateUser assigns an ID and timestamps to usr, appends it to the users
// table, and returns the stored record.
func (r *Repository) CreateUser(usr models.User) models.User {
	r.queue.Do(UsersKey, func() {
		users := kvstore.ReadList[models.User](r.store, UsersKey)

		usr.ID = r.newID()
		now := r.now()
		usr.CreatedAt = now
		usr.UpdatedAt = now

		users = append(users, usr)
		kvstore.WriteList(r.store, UsersKey, users)
	})

	return usr
}

// UpdateUser merges the supplied fields over the stored record and refreshes
// updatedAt. It returns ok=false, without creating anything, when no user has
// the given ID.
func (r *Repository) UpdateUser(id string, data models.UpdateUserData) (*models.User, bool) {
	var updated *models.User

	r.queue.Do(UsersKey, func() {
		users := kvstore.ReadList[models.User](r.store, UsersKey)
		for i := range users {
			if users[i].ID != id {
				continue
			}

			usr := &users[i]
			if data.Email != nil {
				usr.Email = *data.Email
			}
			if data.Name != nil {
				usr.Name = *data.Name
			}
			if data.Username != nil {
				usr.Username = *data.Username
			}
			if data.PasswordHash != nil {
				usr.PasswordHash = *data.PasswordHash
			}
			if data.Avatar != nil {
				usr.Avatar = *data.Avatar
			}
			usr.UpdatedAt = r.now()

			kvstore.WriteList(r.store, UsersKey, users)

			copied := users[i]
			updated = &copied

			return
		}
	})

	return updated, updated != nil
}

// DeleteUser removes the user and cascades: every category and todo owned by
// that user is removed as part of the same logical operation. It returns
// false when no user matched.
func (r *Repository) DeleteUser(id string) bool {
	removed := false

	r.queue.Do(UsersKey, func() {
		users := kvstore.ReadList[models.User](r.store, UsersKey)
		kept := funk.Filter(users, func(u models.User) bool { return u.ID != id }).([]models.User)
		if len(kept) == len(users) {
			return
		}

		kvstore.WriteList(r.store, UsersKey, kept)
		removed = true
	})
	if !removed {
		return false
	}

	r.queue.Do(CategoriesKey, func() {
		categories := kvstore.ReadList[models.Category](r.store, CategoriesKey)
		kept := funk.Filter(categories, func(c models.Category) bool { return c.UserID != id }).([]models.Category)
		kvstore.WriteList(r.store, CategoriesKey, kept)
	})

	r.queue.Do(TodosKey, func() {
		todos := kvstore.ReadList[models.Todo](r.store, TodosKey)
		kept := funk.Filter(todos, func(t models.Todo) bool { return t.UserID != id }).([]models.Todo)
		kvstore.WriteList(r.store, TodosKey, kept)
	})

	return true
}

func findUser(users []models.User, match func(models.User) bool) (*models.User, bool) {
	for i := range users {
		if match(users[i]) {
			copied := users[i]
			return &copied, true
		}
	}

	return nil, false
}
