package http

import (
	"encoding/json"
	"net/http"

	"github.com/feroxapp/ferox/internal/api/service"
	"github.com/feroxapp/ferox/pkg/feroxsdk"
	"github.com/feroxapp/ferox/pkg/httpx"
)

type RecoveryHandler struct {
	RecoveryService *service.RecoveryService
}

// HandleRecover starts password recovery.
//
//	@Summary		Start password recovery
//	@Description	Issues a short-lived recovery code and delivers it to the account's linked
//	@Description	Discord via DM. The account is identified by username or email.
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		feroxsdk.RecoverRequest		true	"Username or email"
//	@Success		200		{object}	feroxsdk.MessageResponse	"Code issued and delivered"
//	@Failure		404		{object}	feroxsdk.ErrorResponse		"No account for that handle"
//	@Failure		409		{object}	feroxsdk.ErrorResponse		"Account has no linked Discord"
//	@Failure		502		{object}	feroxsdk.ErrorResponse		"Delivery failed; code remains valid"
//	@Router			/v1/recover [post].
func (h *RecoveryHandler) HandleRecover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req feroxsdk.RecoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.User == "" {
		feroxsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.RecoveryService.StartRecovery(ctx, req.User); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, feroxsdk.MessageResponse{
		Message: "recovery code sent",
	})
}

// HandleValidate checks a recovery code without consuming it.
//
//	@Summary		Validate recovery code
//	@Description	Reports whether a recovery code is currently valid. Mismatched or expired
//	@Description	codes yield valid=false, not an error.
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		feroxsdk.ValidateRecoveryRequest	true	"Handle and code"
//	@Success		200		{object}	feroxsdk.ValidateRecoveryResponse	"Validity verdict"
//	@Failure		404		{object}	feroxsdk.ErrorResponse				"No account for that handle"
//	@Router			/v1/validate-recovery [post].
func (h *RecoveryHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req feroxsdk.ValidateRecoveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.User == "" || req.Code == "" {
		feroxsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	valid, err := h.RecoveryService.ValidateRecoveryCode(ctx, req.User, req.Code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, feroxsdk.ValidateRecoveryResponse{Valid: valid})
}

// HandleReset consumes a recovery code and replaces the password.
//
//	@Summary		Reset password
//	@Description	Consumes a valid recovery code and sets the new password. The code is
//	@Description	single-use; recovery state is cleared on success.
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		feroxsdk.ResetPasswordRequest	true	"Handle, code and new password"
//	@Success		200		{object}	feroxsdk.MessageResponse		"Password replaced"
//	@Failure		404		{object}	feroxsdk.ErrorResponse			"Unknown handle or invalid code"
//	@Router			/v1/reset-password [post].
func (h *RecoveryHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req feroxsdk.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.User == "" || req.Code == "" {
		feroxsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.RecoveryService.ResetPassword(ctx, req.User, req.Code, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, feroxsdk.MessageResponse{
		Message: "password updated",
	})
}
