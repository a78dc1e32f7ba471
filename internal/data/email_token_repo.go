package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/target/chat-portal/internal/data/pgxutil"
	apperrors "github.com/target/chat-portal/internal/errors"
	"github.com/target/chat-portal/internal/ports"
)

var _ ports.EmailTokenRepository = (*EmailTokenRepo)(nil)

const (
	emailTokenUpsertQuery = `
		INSERT INTO email_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at, created_at = now()`
	emailTokenByUserQuery = `SELECT user_id, token, expires_at FROM email_tokens WHERE user_id = $1`
)

// EmailTokenRepo stores one pending confirmation code per user.
type EmailTokenRepo struct {
	DB *sql.DB
}

// NewEmailTokenRepo creates an EmailTokenRepo backed by db.
func NewEmailTokenRepo(db *sql.DB) *EmailTokenRepo {
	return &EmailTokenRepo{DB: db}
}

// Save stores t, replacing any earlier code for the same user.
func (r *EmailTokenRepo) Save(ctx context.Context, t ports.EmailToken) error {
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, emailTokenUpsertQuery, t.UserID, t.Token, t.ExpiresAt)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("save email token: %w", apperrors.MapDBError(err))
	}
	return nil
}

// FindByUser returns the pending code for userID, or nil when there is none.
func (r *EmailTokenRepo) FindByUser(ctx context.Context, userID string) (*ports.EmailToken, error) {
	var out ports.EmailToken
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, emailTokenByUserQuery, userID)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[ports.EmailToken])
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find email token: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}
