package api_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feroxapp/ferox/pkg/feroxsdk"
)

func TestLoginLifecycle(t *testing.T) {
	client, _ := setupAPIContainer(t)

	created := createAccount(t, client, testUsername, testPassword, testEmail)

	t.Run("login before activation returns remediation data", func(t *testing.T) {
		_, err := client.Login(t.Context(), testUsername, testPassword)

		var inactive *feroxsdk.AccountInactiveError
		require.ErrorAs(t, err, &inactive)
		require.Equal(t, created.ID, inactive.AccountID)
		require.Equal(t, *created.ActivationCode, inactive.ActivationCode)
	})

	linkAccount(t, client, *created.ActivationCode, testDiscordID)

	t.Run("login after activation issues a session token", func(t *testing.T) {
		login, err := client.Login(t.Context(), testUsername, testPassword)
		require.NoError(t, err)
		require.NotEmpty(t, login.Token)
		require.True(t, login.Account.IsActive)

		// Login stores the token on the client, so /me works directly.
		me, err := client.Me(t.Context())
		require.NoError(t, err)
		require.Equal(t, created.ID, me.ID)
	})

	t.Run("login by email works", func(t *testing.T) {
		login, err := client.Login(t.Context(), testEmail, testPassword)
		require.NoError(t, err)
		require.Equal(t, created.ID, login.Account.ID)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := client.Login(t.Context(), testUsername, "WrongPassword1!")

		var apiErr *feroxsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, feroxsdk.ErrorCodeInvalidCredentials, apiErr.Code)
	})

	t.Run("unknown user gets the same error as wrong password", func(t *testing.T) {
		_, err := client.Login(t.Context(), "nobody", testPassword)

		var apiErr *feroxsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, feroxsdk.ErrorCodeInvalidCredentials, apiErr.Code)
	})
}

func TestMeRequiresToken(t *testing.T) {
	client, _ := setupAPIContainer(t)

	_, err := client.Me(t.Context())

	var apiErr *feroxsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, feroxsdk.ErrorCodeInvalidToken, apiErr.Code)
}

func TestLinkConflicts(t *testing.T) {
	client, _ := setupAPIContainer(t)

	first := createAccount(t, client, "alice", testPassword, "")
	second := createAccount(t, client, "bob", testPassword, "")

	linkAccount(t, client, *first.ActivationCode, testDiscordID)

	t.Run("discord identity cannot link twice", func(t *testing.T) {
		_, err := client.LinkDiscord(t.Context(), feroxsdk.LinkRequest{
			Code:            *second.ActivationCode,
			DiscordID:       testDiscordID,
			DiscordUsername: testDiscordUsername,
		})

		var apiErr *feroxsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, feroxsdk.ErrorCodeConflict, apiErr.Code)

		// The failed attempt must not consume the code.
		status, err := client.GetStatus(t.Context(), second.ID)
		require.NoError(t, err)
		require.False(t, status.IsActive)
	})

	t.Run("used code cannot be redeemed again", func(t *testing.T) {
		_, err := client.LinkDiscord(t.Context(), feroxsdk.LinkRequest{
			Code:            *first.ActivationCode,
			DiscordID:       "190000000000000099",
			DiscordUsername: "mallory#0002",
		})

		var apiErr *feroxsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, feroxsdk.ErrorCodeInvalidCode, apiErr.Code)
	})
}
