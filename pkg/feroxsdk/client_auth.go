package feroxsdk

import (
	"context"
	"net/http"
)

// Login authenticates with a username and password. On success the returned
// token is also attached to the client for subsequent authenticated calls.
//
// An inactive account surfaces as *AccountInactiveError carrying the
// activation code.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/login", LoginRequest{
		Username: username,
		Password: password,
	}, &out)
	if err != nil {
		return LoginResponse{}, err
	}

	c.SetToken(out.Token)
	return out, nil
}

// Me returns the account behind the attached session token.
func (c *Client) Me(ctx context.Context) (Account, error) {
	var out Account
	if err := c.doJSON(ctx, http.MethodGet, "/v1/me", nil, &out); err != nil {
		return Account{}, err
	}
	return out, nil
}
