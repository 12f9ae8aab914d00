package feroxsdk

import (
	"context"
	"net/http"
)

// LinkDiscord redeems an activation code on behalf of a Discord user,
// activating the account and attaching the identity. Called by the bot's
// /link command.
func (c *Client) LinkDiscord(ctx context.Context, req LinkRequest) (Account, error) {
	var out Account
	if err := c.doJSON(ctx, http.MethodPost, "/v1/link", req, &out); err != nil {
		return Account{}, err
	}
	return out, nil
}
