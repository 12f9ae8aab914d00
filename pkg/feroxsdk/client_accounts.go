package feroxsdk

import (
	"context"
	"net/http"
)

// CreateAccount registers a new account. The response includes the activation
// code the holder redeems through the Discord bot.
func (c *Client) CreateAccount(ctx context.Context, req CreateAccountRequest) (Account, error) {
	var out Account
	if err := c.doJSON(ctx, http.MethodPost, "/v1/users", req, &out); err != nil {
		return Account{}, err
	}
	return out, nil
}

// GetAccount fetches a single account by id.
func (c *Client) GetAccount(ctx context.Context, id string) (Account, error) {
	var out Account
	if err := c.doJSON(ctx, http.MethodGet, "/v1/users/"+id, nil, &out); err != nil {
		return Account{}, err
	}
	return out, nil
}

// ListAccounts returns all accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	var out []Account
	if err := c.doJSON(ctx, http.MethodGet, "/v1/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStatus reports whether an account is active and Discord-linked.
func (c *Client) GetStatus(ctx context.Context, id string) (StatusResponse, error) {
	var out StatusResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/users/"+id+"/status", nil, &out); err != nil {
		return StatusResponse{}, err
	}
	return out, nil
}

// GenerateActivationCode replaces the activation code on an inactive account.
func (c *Client) GenerateActivationCode(ctx context.Context, id string) (ActivationCodeResponse, error) {
	var out ActivationCodeResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/users/"+id+"/activation-code", nil, &out); err != nil {
		return ActivationCodeResponse{}, err
	}
	return out, nil
}
