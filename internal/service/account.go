package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/target/chat-portal/internal/domain/account"
	apperrors "github.com/target/chat-portal/internal/errors"
	"github.com/target/chat-portal/internal/ports"
	"golang.org/x/crypto/bcrypt"
)

const (
	emailTokenDigits     = 6
	defaultEmailTokenTTL = 24 * time.Hour
)

// AccountStores groups the repositories AccountService writes to.
type AccountStores struct {
	Users  ports.UserRepository
	Tokens ports.EmailTokenRepository
}

// AccountConfig tunes AccountService. Zero values use defaults.
type AccountConfig struct {
	TokenTTL   time.Duration
	BcryptCost int
	Now        func() time.Time
}

// AccountServiceOptions groups dependencies for AccountService.
type AccountServiceOptions struct {
	Stores AccountStores // Required
	Config AccountConfig
	Logger *slog.Logger
}

// AccountService registers accounts for the dev auth gateway.
type AccountService struct {
	users    ports.UserRepository
	tokens   ports.EmailTokenRepository
	tokenTTL time.Duration
	cost     int
	now      func() time.Time
	logger   *slog.Logger
}

var _ ports.AccountRegistrar = (*AccountService)(nil)

// NewAccountService constructs an AccountService.
func NewAccountService(opts AccountServiceOptions) *AccountService {
	if opts.Stores.Users == nil || opts.Stores.Tokens == nil {
		panic("AccountService requires user and token repositories")
	}
	s := &AccountService{
		users:    opts.Stores.Users,
		tokens:   opts.Stores.Tokens,
		tokenTTL: opts.Config.TokenTTL,
		cost:     opts.Config.BcryptCost,
		now:      opts.Config.Now,
		logger:   opts.Logger,
	}
	if s.tokenTTL <= 0 {
		s.tokenTTL = defaultEmailTokenTTL
	}
	if s.cost == 0 {
		s.cost = bcrypt.DefaultCost
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "account_service")
	return s
}

// CreateUser validates the input, rejects a taken email and then a taken
// username, stores the bcrypt-hashed account and issues an email
// confirmation code. New accounts are unverified.
func (s *AccountService) CreateUser(ctx context.Context, in ports.CreateUserInput) (account.AuthResult, error) {
	creds := account.Credentials{Username: in.Username, Email: in.Email, Password: in.Password}
	if field, violation, failed := account.Validate(creds).First(); failed {
		return account.AuthResult{}, apperrors.ValidationField(string(field), violation.Message)
	}

	if err := s.ensureAvailable(ctx, in); err != nil {
		return account.AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return account.AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	rec := &ports.UserRecord{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err = s.users.Create(ctx, rec); err != nil {
		return account.AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	if err = s.issueEmailToken(ctx, rec.ID); err != nil {
		s.rollbackUser(ctx, rec.ID)
		return account.AuthResult{}, err
	}

	s.logger.InfoContext(ctx, "account created", "user_id", rec.ID, "username", rec.Username)
	return account.AuthResult{
		Success: true,
		User: &account.User{
			ID:       rec.ID,
			Username: rec.Username,
			Email:    rec.Email,
			Verified: rec.ConfirmedEmail,
		},
	}, nil
}

func (s *AccountService) issueEmailToken(ctx context.Context, userID string) error {
	code, err := newEmailToken(emailTokenDigits)
	if err != nil {
		return fmt.Errorf("generate email token: %w", err)
	}
	token := ports.EmailToken{UserID: userID, Token: code, ExpiresAt: s.now().Add(s.tokenTTL)}
	if err = s.tokens.Save(ctx, token); err != nil {
		return fmt.Errorf("save email token: %w", err)
	}
	return nil
}

// rollbackUser removes a user whose registration could not complete so the
// email and username stay free for a retry. The caller's context may already
// be canceled, so the delete runs on a detached one.
func (s *AccountService) rollbackUser(ctx context.Context, userID string) {
	if err := s.users.Delete(context.WithoutCancel(ctx), userID); err != nil {
		s.logger.ErrorContext(ctx, "rollback of partial account failed", "user_id", userID, "error", err)
	}
}

func (s *AccountService) ensureAvailable(ctx context.Context, in ports.CreateUserInput) error {
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return apperrors.FieldConflict(string(account.FieldEmail))
	}

	existing, err = s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return fmt.Errorf("find user by username: %w", err)
	}
	if existing != nil {
		return apperrors.FieldConflict(string(account.FieldUsername))
	}
	return nil
}

// newEmailToken returns n random decimal digits.
func newEmailToken(n int) (string, error) {
	buf := make([]byte, n)
	ten := big.NewInt(10)
	for i := range buf {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		buf[i] = byte('0' + d.Int64())
	}
	return string(buf), nil
}
