package domain

import "time"

// Account is a registered user of the service. Nullable columns map to
// pointer fields.
type Account struct {
	ID           string
	Username     string
	PasswordHash string  // argon2 encoded
	Email        *string // nullable, unique when set
	IsActive     bool

	// ActivationCode is set on creation and cleared when redeemed.
	ActivationCode *string

	// Discord identity, present once the account is linked.
	DiscordID       *string
	DiscordUsername *string
	DiscordAvatar   *string

	// Password recovery state. The code is short-lived and single-use.
	RecoveryCode        *string
	RecoveryCodeExpires *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Linked reports whether the account has a Discord identity attached.
func (a Account) Linked() bool {
	return a.DiscordID != nil && *a.DiscordID != ""
}

// RecoveryCodeValid reports whether the stored recovery code matches and has
// not expired as of now.
func (a Account) RecoveryCodeValid(code string, now time.Time) bool {
	if a.RecoveryCode == nil || a.RecoveryCodeExpires == nil {
		return false
	}
	if *a.RecoveryCode != code {
		return false
	}
	return now.Before(*a.RecoveryCodeExpires)
}

// AccountPatch is a partial update applied to an account. Nil fields are
// left untouched; a non-nil pointer-to-nil clears a nullable column.
type AccountPatch struct {
	Username     *string
	PasswordHash *string
	Email        **string
	IsActive     *bool

	ActivationCode **string

	DiscordID       **string
	DiscordUsername **string
	DiscordAvatar   **string

	RecoveryCode        **string
	RecoveryCodeExpires **time.Time
}

// Set returns a patch field that sets a nullable column to v.
func Set[T any](v T) **T {
	p := &v
	return &p
}

// Clear returns a patch field that nulls a nullable column.
func Clear[T any]() **T {
	var p *T
	return &p
}

// IsZero reports whether the patch changes nothing.
func (p AccountPatch) IsZero() bool {
	return p.Username == nil &&
		p.PasswordHash == nil &&
		p.Email == nil &&
		p.IsActive == nil &&
		p.ActivationCode == nil &&
		p.DiscordID == nil &&
		p.DiscordUsername == nil &&
		p.DiscordAvatar == nil &&
		p.RecoveryCode == nil &&
		p.RecoveryCodeExpires == nil
}
