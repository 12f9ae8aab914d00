package feroxsdk

import (
	"context"
	"net/http"
)

// Liveness checks the /livez endpoint.
func (c *Client) Liveness(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/livez", nil, nil)
}

// Readiness checks the /readyz endpoint. An error means the service is not
// ready to take traffic (database down or no signing keys).
func (c *Client) Readiness(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/readyz", nil, nil)
}
