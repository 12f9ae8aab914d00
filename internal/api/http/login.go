package http

import (
	"encoding/json"
	"net/http"

	"github.com/feroxapp/ferox/internal/api/service"
	"github.com/feroxapp/ferox/pkg/feroxsdk"
	"github.com/feroxapp/ferox/pkg/httpx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles credential login.
//
//	@Summary		Log in
//	@Description	Verifies username and password and returns a session token alongside the account.
//	@Description	Inactive accounts receive a 403 carrying the activation code needed to finish setup.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		feroxsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	feroxsdk.LoginResponse	"Session token and account"
//	@Failure		401		{object}	feroxsdk.ErrorResponse	"Invalid credentials"
//	@Failure		403		{object}	feroxsdk.ErrorResponse	"Account not active (includes account_id, activation_code)"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req feroxsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		feroxsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Username == "" || req.Password == "" {
		feroxsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, account, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, feroxsdk.LoginResponse{
		Token:   token,
		Account: toSDKAccount(account),
	})
}
