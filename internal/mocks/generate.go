// Package mocks provides mock implementations for testing the session
// lifecycle.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the service API port. Regenerate after interface changes with:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	mockAPI := api.NewMockAPI(ctrl)
//	mockAPI.EXPECT().GetProfile(gomock.Any(), "jane").Return(user, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=api -destination=api/api.go github.com/holidaze/holidaze-go/internal/service API
