package api_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feroxapp/ferox/pkg/feroxsdk"
)

// TestRateLimitLoginEndpoint verifies that /v1/login is rate limited.
// The endpoint has strict limits (5 req/min) to prevent brute force attacks.
func TestRateLimitLoginEndpoint(t *testing.T) {
	client := setupAPIContainerWithDefaultRateLimits(t)

	// Make requests until we hit the rate limit (strict limit is 5 req/min).
	// The first 5 fail with invalid_credentials, the 6th with 429.
	var lastErr error
	for i := range 6 {
		_, err := client.Login(t.Context(), "nobody", "wrongpass")
		require.Error(t, err)
		if i < 5 {
			require.False(t, strings.Contains(err.Error(), "rate_limit_exceeded"),
				"should not be rate limited yet (request %d)", i+1)
		} else {
			lastErr = err
		}
	}

	require.Error(t, lastErr)
	require.Contains(t, lastErr.Error(), "rate_limit_exceeded", "should be rate limited after 5 requests")
}

// TestRateLimitSignupEndpoint verifies that /v1/users is rate limited.
func TestRateLimitSignupEndpoint(t *testing.T) {
	client := setupAPIContainerWithDefaultRateLimits(t)

	var lastErr error
	for range 6 {
		// Reusing the same username means requests past the first fail with
		// conflict until the limiter kicks in with 429.
		_, lastErr = client.CreateAccount(t.Context(), feroxsdk.CreateAccountRequest{
			Username: testUsername,
			Password: testPassword,
		})
	}

	require.Error(t, lastErr)
	require.Contains(t, lastErr.Error(), "rate_limit_exceeded", "should be rate limited after 5 requests")
}
