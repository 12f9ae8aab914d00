package http

import (
	"encoding/json"
	"net/http"

	"github.com/feroxapp/ferox/internal/api/domain"
	"github.com/feroxapp/ferox/internal/api/service"
	"github.com/feroxapp/ferox/pkg/feroxsdk"
	"github.com/feroxapp/ferox/pkg/httpx"
)

type LinkHandler struct {
	ActivationService *service.ActivationService
}

// ServeHTTP redeems an activation code on behalf of a Discord user.
//
//	@Summary		Link Discord account
//	@Description	Redeems an activation code, activating the account and attaching the Discord
//	@Description	identity. Called by the bot when someone runs the /link command.
//	@Tags			Link
//	@Accept			json
//	@Produce		json
//	@Param			request	body		feroxsdk.LinkRequest	true	"Activation code and Discord identity"
//	@Success		200		{object}	feroxsdk.Account		"The activated account"
//	@Failure		404		{object}	feroxsdk.ErrorResponse	"Unknown activation code"
//	@Failure		409		{object}	feroxsdk.ErrorResponse	"Discord account already linked elsewhere"
//	@Router			/v1/link [post].
func (h *LinkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req feroxsdk.LinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		feroxsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Code == "" || req.DiscordID == "" {
		feroxsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	account, err := h.ActivationService.RedeemActivationCode(ctx, req.Code, domain.DiscordIdentity{
		ID:       req.DiscordID,
		Username: req.DiscordUsername,
		Avatar:   req.DiscordAvatar,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKAccount(account))
}
