package feroxsdk

import (
	"context"
	"net/http"
)

// StartRecovery asks the API to issue and deliver a recovery code. User may
// be a username or an email address.
func (c *Client) StartRecovery(ctx context.Context, user string) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/recover", RecoverRequest{User: user}, nil)
}

// ValidateRecoveryCode checks a recovery code without consuming it.
func (c *Client) ValidateRecoveryCode(ctx context.Context, user, code string) (bool, error) {
	var out ValidateRecoveryResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/validate-recovery", ValidateRecoveryRequest{
		User: user,
		Code: code,
	}, &out)
	if err != nil {
		return false, err
	}
	return out.Valid, nil
}

// ResetPassword consumes a recovery code and sets a new password.
func (c *Client) ResetPassword(ctx context.Context, user, code, newPassword string) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/reset-password", ResetPasswordRequest{
		User:        user,
		Code:        code,
		NewPassword: newPassword,
	}, nil)
}
