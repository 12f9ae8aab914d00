package http

import (
	"errors"
	"net/http"

	"github.com/feroxapp/ferox/internal/api/domain"
	"github.com/feroxapp/ferox/internal/api/notify"
	"github.com/feroxapp/ferox/internal/api/service"
	"github.com/feroxapp/ferox/pkg/feroxsdk"
	"github.com/feroxapp/ferox/pkg/slogx"
)

// toSDKAccount strips server-only fields (the password hash, recovery state)
// and returns the public view.
func toSDKAccount(a domain.Account) feroxsdk.Account {
	return feroxsdk.Account{
		ID:              a.ID,
		Username:        a.Username,
		Email:           a.Email,
		IsActive:        a.IsActive,
		ActivationCode:  a.ActivationCode,
		DiscordID:       a.DiscordID,
		DiscordUsername: a.DiscordUsername,
		DiscordAvatar:   a.DiscordAvatar,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// writeServiceError maps service-layer errors onto the wire taxonomy. Unknown
// errors are logged and surfaced as an opaque server_error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var inactive *service.AccountInactiveError

	switch {
	case errors.As(err, &inactive):
		(&feroxsdk.AccountInactiveError{
			AccountID:      inactive.AccountID,
			ActivationCode: inactive.ActivationCode,
		}).WriteError(w)

	case errors.Is(err, service.ErrInvalidCredentials):
		feroxsdk.ErrInvalidCredentials.WriteError(w)

	case errors.Is(err, service.ErrAccountNotFound):
		feroxsdk.ErrNotFound.WriteError(w)

	case errors.Is(err, service.ErrInvalidAccountRequest):
		feroxsdk.ErrInvalidRequest.WriteError(w)

	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrDiscordAlreadyLinked):
		feroxsdk.ErrConflict.WriteError(w)

	case errors.Is(err, service.ErrActivationCodeNotFound),
		errors.Is(err, service.ErrInvalidRecoveryCode):
		feroxsdk.ErrInvalidCode.WriteError(w)

	case errors.Is(err, service.ErrAccountAlreadyActive),
		errors.Is(err, service.ErrNoLinkedDiscord):
		feroxsdk.ErrInvalidState.WriteError(w)

	case errors.Is(err, notify.ErrDeliveryFailed):
		feroxsdk.ErrDeliveryFailed.WriteError(w)

	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
		feroxsdk.ErrServerError.WriteError(w)
	}
}
