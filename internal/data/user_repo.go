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

var _ ports.UserRepository = (*UserRepo)(nil)

const (
	userColumns = `id, username, email::text AS email, password_hash, confirmed_email, created_at`

	userInsertQuery = `
		INSERT INTO users (id, username, email, password_hash, confirmed_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	userByEmailQuery    = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	userByUsernameQuery = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	userDeleteQuery     = `DELETE FROM users WHERE id = $1`
)

// UserRepo stores accounts for the dev auth gateway in PostgreSQL.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a UserRepo backed by db.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a UserRepo with a custom TimeProvider (useful for testing).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

// Create inserts u. Unique violations come back as Conflict errors naming the field.
func (r *UserRepo) Create(ctx context.Context, u *ports.UserRecord) error {
	if u == nil {
		return errors.New("user record is required")
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = r.timeProvider.Now()
	}

	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, userInsertQuery,
			u.ID, u.Username, u.Email, u.PasswordHash, u.ConfirmedEmail, u.CreatedAt)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("create user: %w", apperrors.MapDBError(err))
	}
	return nil
}

// FindByEmail looks a user up by email, ignoring case.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*ports.UserRecord, error) {
	return r.findOne(ctx, userByEmailQuery, email)
}

// FindByUsername looks a user up by exact username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*ports.UserRecord, error) {
	return r.findOne(ctx, userByUsernameQuery, username)
}

// Delete removes the user; its email token goes with it via ON DELETE CASCADE.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, userDeleteQuery, id)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("delete user: %w", apperrors.MapDBError(err))
	}
	return nil
}

func (r *UserRepo) findOne(ctx context.Context, q string, arg string) (*ports.UserRecord, error) {
	var out ports.UserRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, arg)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[ports.UserRecord])
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}
