package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/feroxapp/ferox/internal/api/domain"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so the repo works inside and
// outside transactions.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type accountsRepo struct {
	db dbtx
}

const accountColumns = `id, username, password_hash, email, is_active,
	activation_code, discord_id, discord_username, discord_avatar,
	recovery_code, recovery_code_expires, created_at, updated_at`

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (
			id, username, password_hash, email, is_active,
			activation_code, discord_id, discord_username, discord_avatar,
			recovery_code, recovery_code_expires
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.Username,
		a.PasswordHash,
		mapOptionalString(a.Email),
		a.IsActive,
		mapOptionalString(a.ActivationCode),
		mapOptionalString(a.DiscordID),
		mapOptionalString(a.DiscordUsername),
		mapOptionalString(a.DiscordAvatar),
		mapOptionalString(a.RecoveryCode),
		mapOptionalTime(a.RecoveryCodeExpires),
	)
	return mapConstraint(err)
}

func (r *accountsRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	return r.getWhere(ctx, "id = ?", id)
}

func (r *accountsRepo) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	return r.getWhere(ctx, "username = ? COLLATE NOCASE", username)
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.getWhere(ctx, "email = ?", email)
}

func (r *accountsRepo) GetByActivationCode(ctx context.Context, code string) (domain.Account, error) {
	return r.getWhere(ctx, "activation_code = ?", code)
}

func (r *accountsRepo) GetByDiscordID(ctx context.Context, discordID string) (domain.Account, error) {
	return r.getWhere(ctx, "discord_id = ?", discordID)
}

func (r *accountsRepo) getWhere(ctx context.Context, where string, arg any) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE `+where, arg)

	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update builds the SET clause from the typed patch. Only fields the patch
// names are touched; updated_at is always bumped.
func (r *accountsRepo) Update(ctx context.Context, id string, p domain.AccountPatch) error {
	if p.IsZero() {
		return nil
	}

	var (
		sets []string
		args []any
	)

	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if p.Username != nil {
		set("username", *p.Username)
	}
	if p.PasswordHash != nil {
		set("password_hash", *p.PasswordHash)
	}
	if p.Email != nil {
		set("email", mapOptionalString(*p.Email))
	}
	if p.IsActive != nil {
		set("is_active", *p.IsActive)
	}
	if p.ActivationCode != nil {
		set("activation_code", mapOptionalString(*p.ActivationCode))
	}
	if p.DiscordID != nil {
		set("discord_id", mapOptionalString(*p.DiscordID))
	}
	if p.DiscordUsername != nil {
		set("discord_username", mapOptionalString(*p.DiscordUsername))
	}
	if p.DiscordAvatar != nil {
		set("discord_avatar", mapOptionalString(*p.DiscordAvatar))
	}
	if p.RecoveryCode != nil {
		set("recovery_code", mapOptionalString(*p.RecoveryCode))
	}
	if p.RecoveryCodeExpires != nil {
		set("recovery_code_expires", mapOptionalTime(*p.RecoveryCodeExpires))
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE accounts SET %s WHERE id = ?`, strings.Join(sets, ", "))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapConstraint(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *accountsRepo) ClearExpiredRecoveryCodes(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET recovery_code = NULL,
			recovery_code_expires = NULL,
			updated_at = CURRENT_TIMESTAMP
		WHERE recovery_code_expires IS NOT NULL
		  AND recovery_code_expires <= ?`,
		now.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (domain.Account, error) {
	var (
		a                   domain.Account
		email               sql.NullString
		activationCode      sql.NullString
		discordID           sql.NullString
		discordUsername     sql.NullString
		discordAvatar       sql.NullString
		recoveryCode        sql.NullString
		recoveryCodeExpires sql.NullTime
	)

	err := s.Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
		&email,
		&a.IsActive,
		&activationCode,
		&discordID,
		&discordUsername,
		&discordAvatar,
		&recoveryCode,
		&recoveryCodeExpires,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, err
	}

	a.Email = mapNullStringPtr(email)
	a.ActivationCode = mapNullStringPtr(activationCode)
	a.DiscordID = mapNullStringPtr(discordID)
	a.DiscordUsername = mapNullStringPtr(discordUsername)
	a.DiscordAvatar = mapNullStringPtr(discordAvatar)
	a.RecoveryCode = mapNullStringPtr(recoveryCode)
	a.RecoveryCodeExpires = mapNullTimePtr(recoveryCodeExpires)

	return a, nil
}

func mapNullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: (*t).UTC(), Valid: true}
}
