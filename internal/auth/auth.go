// Package auth implements login, registration, current-user resolution, and
// logout. Authentication itself happens against the remote identity API; this
// package's job is keeping a local user record in sync with it, keyed by
// username, so everything else in the system operates purely on local users.
package auth

import (
	"context"
	"errors"
	"fmt"

	validator "github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/patric-chuzhbe/todokeeper/internal/authclient"
	"github.com/patric-chuzhbe/todokeeper/internal/logger"
	"github.com/patric-chuzhbe/todokeeper/internal/models"
	"github.com/patric-chuzhbe/todokeeper/internal/repository"
	"github.com/patric-chuzhbe/todokeeper/internal/service"
	"github.com/patric-chuzhbe/todokeeper/internal/session"
)

// ErrDuplicateUser is returned by Register when the email or username is
// already taken.
var ErrDuplicateUser = errors.New("user with this email or username already exists")

// ErrNotAuthenticated is returned by CurrentUser when neither a remembered
// user nor a usable token exists.
var ErrNotAuthenticated = errors.New("not authenticated")

var validate = validator.New()

type remoteAuthenticator interface {
	Login(ctx context.Context, username, password string) (*authclient.LoginResult, error)
	Me(ctx context.Context, token string) (*authclient.RemoteUser, error)
}

// Service wires the remote identity boundary to the local user table and the
// session slots.
type Service struct {
	repo    *repository.Repository
	session *session.Session
	remote  remoteAuthenticator
}

// New creates an auth service.
func New(repo *repository.Repository, sess *session.Session, remote remoteAuthenticator) *Service {
	return &Service{
		repo:    repo,
		session: sess,
		remote:  remote,
	}
}

// Login exchanges credentials with the remote API, creates or refreshes the
// local user record keyed by username, and remembers the user and token. It
// returns the local user and the remote-issued token.
func (s *Service) Login(ctx context.Context, credentials models.LoginCredentials) (*models.User, string, error) {
	if err := validate.Struct(credentials); err != nil {
		return nil, "", fmt.Errorf("login failed: %w", service.ErrValidation)
	}

	result, err := s.remote.Login(ctx, credentials.Username, credentials.Password)
	if err != nil {
		return nil, "", fmt.Errorf("login failed: %w", err)
	}

	usr := s.syncLocalUser(&result.RemoteUser, credentials.Password)

	s.session.SetCurrentUser(usr)
	s.session.SetToken(result.Token)

	return usr, result.Token, nil
}

// Register creates a local account after checking email and username are
// free, then auto-logs-in through the remote exchange the way Login does.
func (s *Service) Register(ctx context.Context, data models.RegisterData) (*models.User, error) {
	if err := validate.Struct(data); err != nil {
		return nil, fmt.Errorf("registration failed: %w", service.ErrValidation)
	}

	if _, found := s.repo.GetUserByEmail(data.Email); found {
		return nil, fmt.Errorf("registration failed: %w", ErrDuplicateUser)
	}
	if _, found := s.repo.GetUserByUsername(data.Username); found {
		return nil, fmt.Errorf("registration failed: %w", ErrDuplicateUser)
	}

	s.repo.CreateUser(models.User{
		Email:        data.Email,
		Name:         data.Name,
		Username:     data.Username,
		PasswordHash: hashPassword(data.Password),
	})

	usr, _, err := s.Login(ctx, models.LoginCredentials{
		Username: data.Username,
		Password: data.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return usr, nil
}

// CurrentUser resolves the active account: the remembered local user first,
// then a remote lookup by the remembered token, syncing a local record from
// the result.
func (s *Service) CurrentUser(ctx context.Context) (*models.User, error) {
	if usr, ok := s.session.CurrentUser(); ok {
		return usr, nil
	}

	token, ok := s.session.Token()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	remote, err := s.remote.Me(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	usr := s.syncLocalUser(remote, "")

	s.session.SetCurrentUser(usr)
	s.session.SetToken(token)

	return usr, nil
}

// Logout forgets the remembered user and token. Local entities stay put.
func (s *Service) Logout() {
	s.session.Clear()
}

// syncLocalUser creates a local record for the remote user, or refreshes an
// existing one with the remote's current fields.
func (s *Service) syncLocalUser(remote *authclient.RemoteUser, password string) *models.User {
	email := remote.Email
	if email == "" {
		email = remote.Username + "@example.com"
	}

	existing, found := s.repo.GetUserByUsername(remote.Username)
	if !found {
		created := s.repo.CreateUser(models.User{
			Email:        email,
			Name:         remote.DisplayName(),
			Username:     remote.Username,
			PasswordHash: hashPassword(password),
			Avatar:       remote.Image,
		})

		return &created
	}

	data := models.UpdateUserData{Email: &email}
	name := remote.DisplayName()
	if name != "" {
		data.Name = &name
	}
	if remote.Image != "" {
		data.Avatar = &remote.Image
	}

	updated, ok := s.repo.UpdateUser(existing.ID, data)
	if !ok {
		return existing
	}

	return updated
}

// CheckPassword compares a candidate password against the stored hash. It
// exists for local credential checks when the remote API is unreachable.
func CheckPassword(usr *models.User, password string) bool {
	if usr.PasswordHash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) == nil
}

func hashPassword(password string) string {
	if password == "" {
		return ""
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorf("cannot hash password: %v", err)
		return ""
	}

	return string(hash)
}

// Unauthorized reports whether err represents a missing or foreign entity, a
// failed remote exchange, or an unauthenticated session.
func Unauthorized(err error) bool {
	return errors.Is(err, service.ErrNotFound) ||
		errors.Is(err, authclient.ErrRemoteAuth) ||
		errors.Is(err, ErrNotAuthenticated)
}
