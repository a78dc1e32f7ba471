package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/chat-portal/internal/domain/account"
	apperrors "github.com/target/chat-portal/internal/errors"
	"github.com/target/chat-portal/internal/mocks"
	"go.uber.org/mock/gomock"
)

func TestPrototypeService_Run_CallsGatewayOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockAuthGateway(ctrl)
	demo := account.Credentials{Username: "tester", Email: "test@test.com", Password: "testtest"}
	svc := NewPrototypeService(PrototypeServiceOptions{Gateway: gateway, Demo: demo})

	want := account.AuthResult{Success: true, User: &account.User{ID: "u-1", Username: "tester"}}
	gateway.EXPECT().CreateUser(gomock.Any(), "test@test.com", "testtest", "tester").Return(want, nil).Times(1)

	run := svc.Run(context.Background())
	require.NoError(t, run.Err)
	assert.True(t, run.Called())
	assert.Equal(t, want, run.Result)
}

func TestPrototypeService_Run_GatewayFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockAuthGateway(ctrl)
	demo := account.Credentials{Username: "tester", Email: "test@test.com", Password: "testtest"}
	svc := NewPrototypeService(PrototypeServiceOptions{Gateway: gateway, Demo: demo})

	gateway.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(account.AuthResult{}, apperrors.New(apperrors.ErrCodeUnavailable, "auth service unreachable"))

	run := svc.Run(context.Background())
	require.Error(t, run.Err)
	assert.True(t, apperrors.IsUnavailable(run.Err))
	assert.False(t, run.Result.Success)
}

func TestPrototypeService_Run_InvalidDemoSkipsCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockAuthGateway(ctrl)
	demo := account.Credentials{Username: "test", Email: "test@test.com", Password: "testtest"}
	svc := NewPrototypeService(PrototypeServiceOptions{Gateway: gateway, Demo: demo})

	run := svc.Run(context.Background())
	assert.False(t, run.Called())
	assert.Contains(t, run.Violations, account.FieldUsername)
	assert.NoError(t, run.Err)
}
