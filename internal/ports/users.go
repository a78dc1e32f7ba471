package ports

import (
	"context"
	"time"
)

// UserRecord is a persisted account as the dev gateway stores it.
type UserRecord struct {
	ID             string    `db:"id"`
	Username       string    `db:"username"`
	Email          string    `db:"email"`
	PasswordHash   []byte    `db:"password_hash"`
	ConfirmedEmail bool      `db:"confirmed_email"`
	CreatedAt      time.Time `db:"created_at"`
}

// UserRepository persists accounts. Finders return (nil, nil) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, u *UserRecord) error
	FindByEmail(ctx context.Context, email string) (*UserRecord, error)
	FindByUsername(ctx context.Context, username string) (*UserRecord, error)
	// Delete removes the user and its email token. A missing id is not an error.
	Delete(ctx context.Context, id string) error
}

// EmailToken is a pending email confirmation code.
type EmailToken struct {
	UserID    string    `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}

// EmailTokenRepository stores email confirmation codes.
type EmailTokenRepository interface {
	Save(ctx context.Context, t EmailToken) error
	FindByUser(ctx context.Context, userID string) (*EmailToken, error)
}
