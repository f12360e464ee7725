// Package services contains the application services of the warnwave client:
// authentication (register, login, logout, session restore) and the
// profile-image update pipeline.
package services

import (
	"context"
	"fmt"

	"github.com/warnwave/warnwave-cli/internal/client/api"
	"github.com/warnwave/warnwave-cli/internal/client/session"
	"github.com/warnwave/warnwave-cli/internal/logging"
)

// AuthService drives the session lifecycle.
//
// Contract:
//   - Register: create an account; the backend logs the user in, so a
//     successful registration yields an authenticated session.
//   - Login: authenticate and install the session.
//   - Logout: drop the session everywhere; never fails the caller.
//   - Restore: load the persisted token at startup (no backend call).
//   - Close: release the underlying API client.
//
// Credential failures leave the session untouched: the store stays anonymous.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context)
	Close(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  *session.Store
	log    logging.Logger
}

func NewAuthService(client api.Client, store *session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &authService{client: client, store: store, log: log.With("component", "auth")}
}

func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	token, user, err := a.client.Register(ctx, username, password)
	if err != nil {
		return fmt.Errorf("registration error: %w", err)
	}

	a.store.Set(ctx, token, user)
	a.log.Info(ctx, "registered and logged in", "username", user.Username)
	return nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	token, user, err := a.client.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	a.store.Set(ctx, token, user)
	a.log.Info(ctx, "logged in", "username", user.Username)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.store.Clear(ctx)
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) Restore(ctx context.Context) {
	a.store.Rehydrate(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
