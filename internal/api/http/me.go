package http

import (
	"net/http"

	"github.com/feroxapp/ferox/internal/api/service"
	"github.com/feroxapp/ferox/pkg/feroxsdk"
	"github.com/feroxapp/ferox/pkg/httpx"
	"github.com/feroxapp/ferox/pkg/slogx"
)

type MeHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP returns the account behind the session token.
//
//	@Summary		Get own account
//	@Description	Returns the authenticated account.
//	@Tags			Auth
//	@Security		AuthToken
//	@Produce		json
//	@Success		200	{object}	feroxsdk.Account		"The authenticated account"
//	@Failure		401	{object}	feroxsdk.ErrorResponse	"Invalid or missing auth token"
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	if accountID == "" {
		feroxsdk.ErrInvalidToken.WriteError(w)
		return
	}

	account, err := h.AccountService.GetAccountByID(ctx, accountID)
	if err != nil {
		log.Warn("failed to load account", "account_id", accountID, "err", err)
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKAccount(account))
}
