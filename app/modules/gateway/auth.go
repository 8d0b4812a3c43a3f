package gateway

import (
	"context"
	"net/http"

	sessiondomain "github.com/ringside-club/ringside/app/modules/session/domain"
)

// wireUser is the identity object as the upstream API spells it.
type wireUser struct {
	ID       Number `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
	Role     string `json:"role"`
}

func (u wireUser) identity() *sessiondomain.Identity {
	role := u.Role
	if role == "" {
		role = u.UserType
	}
	return &sessiondomain.Identity{
		ID:       int64(u.ID),
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     sessiondomain.ParseRole(role),
	}
}

// LoginResult is a successful authentication: the opaque bearer credential
// and the identity it proves.
type LoginResult struct {
	Credential string
	Identity   *sessiondomain.Identity
}

// Login exchanges credentials for a bearer token. Bad credentials surface as
// ErrBadRequest.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		Jwt  string   `json:"jwt"`
		User wireUser `json:"user"`
	}
	if err := c.do(ctx, "Login", http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	if resp.Jwt == "" {
		return nil, ErrMalformedResponse
	}
	return &LoginResult{Credential: resp.Jwt, Identity: resp.User.identity()}, nil
}

// Me fetches the identity behind the credential carried in ctx.
func (c *Client) Me(ctx context.Context) (*sessiondomain.Identity, error) {
	var resp struct {
		User wireUser `json:"user"`
	}
	if err := c.do(ctx, "Me", http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	if resp.User.Username == "" {
		return nil, ErrMalformedResponse
	}
	return resp.User.identity(), nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, "Register", http.MethodPost, "/api/auth/register", req, nil)
}
