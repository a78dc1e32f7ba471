// Package mocks holds gomock doubles for the ports interfaces.
//
// To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	gateway := mocks.NewMockAuthGateway(ctrl)
//	gateway.EXPECT().CreateUser(gomock.Any(), "a@b.com", gomock.Any(), "abcde").Return(result, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ports_mock.go github.com/target/chat-portal/internal/ports AccountRegistrar,AuthGateway,EmailTokenRepository,NoticeStore,UserRepository
