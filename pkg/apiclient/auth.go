package apiclient

import (
	"context"
	"net/http"
)

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	return c.auth(ctx, http.MethodPost, "auth/users/register/", req)
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	return c.auth(ctx, http.MethodPost, "auth/users/login/", req)
}

func (c *Client) Logout(ctx context.Context) (AuthResponse, error) {
	return c.auth(ctx, http.MethodPost, "auth/users/logout/", struct{}{})
}

// Me returns the signed-in user. Anonymous callers get an error satisfying
// errors.Is(err, ErrUnauthorized).
func (c *Client) Me(ctx context.Context) (AuthResponse, error) {
	return c.auth(ctx, http.MethodGet, "auth/users/me/", nil)
}

func (c *Client) auth(ctx context.Context, method, path string, in any) (AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, method, path, nil, in, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}
