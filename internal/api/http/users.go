package http

import (
	"encoding/json"
	"net/http"

	"github.com/feroxapp/ferox/internal/api/service"
	"github.com/feroxapp/ferox/pkg/feroxsdk"
	"github.com/feroxapp/ferox/pkg/httpx"
)

type UsersHandler struct {
	AccountService    *service.AccountService
	ActivationService *service.ActivationService
}

// HandleCreate registers a new account.
//
//	@Summary		Create account
//	@Description	Registers a new inactive account. The response carries the activation code
//	@Description	the holder redeems through the Discord bot's /link command.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		feroxsdk.CreateAccountRequest	true	"New account"
//	@Success		201		{object}	feroxsdk.Account				"The created account"
//	@Failure		400		{object}	feroxsdk.ErrorResponse			"Malformed or invalid request"
//	@Failure		409		{object}	feroxsdk.ErrorResponse			"Username or email already taken"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req feroxsdk.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		feroxsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	account, err := h.AccountService.CreateAccount(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSDKAccount(account))
}

// HandleList returns all accounts.
//
//	@Summary		List accounts
//	@Description	Returns all accounts in creation order, without password material.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		feroxsdk.Account		"All accounts"
//	@Failure		500	{object}	feroxsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts, err := h.AccountService.ListAccounts(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]feroxsdk.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toSDKAccount(a))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet fetches a single account by id.
//
//	@Summary		Get account
//	@Description	Returns a single account by id.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string					true	"Account id"
//	@Success		200	{object}	feroxsdk.Account		"The account"
//	@Failure		404	{object}	feroxsdk.ErrorResponse	"Account not found"
//	@Router			/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, err := h.AccountService.GetAccountByID(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKAccount(account))
}

// HandleStatus reports activation and link state.
//
//	@Summary		Get account status
//	@Description	Reports whether the account is active and whether a Discord identity is linked.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string						true	"Account id"
//	@Success		200	{object}	feroxsdk.StatusResponse		"Activation and link state"
//	@Failure		404	{object}	feroxsdk.ErrorResponse		"Account not found"
//	@Router			/v1/users/{id}/status [get].
func (h *UsersHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status, err := h.AccountService.CheckStatus(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, feroxsdk.StatusResponse{
		IsActive:      status.IsActive,
		DiscordLinked: status.DiscordLinked,
	})
}

// HandleActivationCode regenerates the activation code.
//
//	@Summary		Regenerate activation code
//	@Description	Replaces the activation code on an inactive account. Active accounts are rejected.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string								true	"Account id"
//	@Success		200	{object}	feroxsdk.ActivationCodeResponse		"The new activation code"
//	@Failure		404	{object}	feroxsdk.ErrorResponse				"Account not found"
//	@Failure		409	{object}	feroxsdk.ErrorResponse				"Account already active"
//	@Router			/v1/users/{id}/activation-code [post].
func (h *UsersHandler) HandleActivationCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code, err := h.ActivationService.GenerateActivationCode(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, feroxsdk.ActivationCodeResponse{
		ActivationCode: code,
	})
}
