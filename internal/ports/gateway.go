// Package ports defines interfaces (hexagonal ports) between the web client,
// the auth service and storage. Implementations live in internal/adapters and
// internal/data; orchestration in internal/service.
package ports

import (
	"context"

	"github.com/target/chat-portal/internal/domain/account"
)

// AuthGateway is the client side of the remote authentication service.
type AuthGateway interface {
	// CreateUser registers a new account. It fails with a transport or server
	// error when the remote endpoint is unreachable or rejects the request.
	CreateUser(ctx context.Context, email, password, username string) (account.AuthResult, error)
}

// AccountRegistrar is the server side of CreateUser, implemented by the dev gateway service.
type AccountRegistrar interface {
	CreateUser(ctx context.Context, in CreateUserInput) (account.AuthResult, error)
}

// CreateUserInput carries the create-user request fields.
type CreateUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}
