// Package authclient talks to the remote identity API. It is a boundary
// adapter: the rest of the system operates purely on local user records, and
// only the login exchange and the bearer-token lookup cross the network.
package authclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// ErrRemoteAuth is returned for any failed exchange with the identity API,
// wrapping the transport or status detail.
var ErrRemoteAuth = errors.New("remote authentication failed")

// RemoteUser carries the user fields the identity API returns.
type RemoteUser struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Image     string `json:"image"`
}

// DisplayName joins the remote first and last names, falling back to the
// username when either is missing.
func (u *RemoteUser) DisplayName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}

	return u.Username
}

// LoginResult is the payload of a successful credentials exchange.
type LoginResult struct {
	RemoteUser
	Token string `json:"token"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Client is a thin resty wrapper around the identity API. No request timeout
// is configured; a pending login suspends the caller until the remote side
// answers.
type Client struct {
	client *resty.Client
}

// New creates a client for the identity API rooted at baseURL.
func New(baseURL string) *Client {
	return &Client{
		client: resty.New().SetBaseURL(baseURL),
	}
}

// Login exchanges credentials for the remote user's fields and a bearer
// token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var result LoginResult

	response, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginRequest{Username: username, Password: password}).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteAuth, err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("%w: login returned status %d", ErrRemoteAuth, response.StatusCode())
	}

	return &result, nil
}

// Me looks up the current remote user by bearer token.
func (c *Client) Me(ctx context.Context, token string) (*RemoteUser, error) {
	var result RemoteUser

	response, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&result).
		Get("/auth/me")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteAuth, err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("%w: current-user lookup returned status %d", ErrRemoteAuth, response.StatusCode())
	}

	return &result, nil
}
