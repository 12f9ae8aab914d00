package feroxsdk

import "time"

// Account is the public view of an account. The password hash never leaves
// the server.
type Account struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	IsActive bool    `json:"is_active"`

	// ActivationCode is present only while the account is pending activation.
	ActivationCode *string `json:"activation_code,omitempty"`

	DiscordID       *string `json:"discord_id,omitempty"`
	DiscordUsername *string `json:"discord_username,omitempty"`
	DiscordAvatar   *string `json:"discord_avatar,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrorResponse is the standard error envelope shape, exposed for Swagger.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// LoginRequest is the POST /v1/login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token alongside the account.
type LoginResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

// CreateAccountRequest is the POST /v1/users body. Email is optional.
type CreateAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// StatusResponse is the GET /v1/users/{id}/status body.
type StatusResponse struct {
	IsActive      bool `json:"is_active"`
	DiscordLinked bool `json:"discord_linked"`
}

// ActivationCodeResponse is the POST /v1/users/{id}/activation-code body.
type ActivationCodeResponse struct {
	ActivationCode string `json:"activation_code"`
}

// LinkRequest is the POST /v1/link body, sent by the bot on /link.
type LinkRequest struct {
	Code            string `json:"code"`
	DiscordID       string `json:"discord_id"`
	DiscordUsername string `json:"discord_username"`
	DiscordAvatar   string `json:"discord_avatar,omitempty"`
}

// RecoverRequest is the POST /v1/recover body. User is a username or email.
type RecoverRequest struct {
	User string `json:"user"`
}

// ValidateRecoveryRequest is the POST /v1/validate-recovery body.
type ValidateRecoveryRequest struct {
	User string `json:"user"`
	Code string `json:"code"`
}

// ValidateRecoveryResponse reports code validity without consuming it.
type ValidateRecoveryResponse struct {
	Valid bool `json:"valid"`
}

// ResetPasswordRequest is the POST /v1/reset-password body.
type ResetPasswordRequest struct {
	User        string `json:"user"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

// MessageResponse is a minimal acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the /livez and /readyz body.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks carries per-dependency readiness detail.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
