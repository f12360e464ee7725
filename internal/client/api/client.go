// Package api talks to the warnwave backend. The backend is a black box:
// this package only knows its three endpoints and maps transport/status
// failures to sentinel errors the rest of the client can match on.
package api

import (
	"context"

	"github.com/warnwave/warnwave-cli/internal/client/models"
)

type Client interface {
	// Register creates an account; the backend logs the new user in and
	// returns the session token with the initial profile.
	Register(ctx context.Context, username string, password []byte) (string, *models.Profile, error)

	// Login exchanges credentials for a session token and profile.
	Login(ctx context.Context, username string, password []byte) (string, *models.Profile, error)

	// UpdateProfileImage associates a hosted image URL with the account
	// behind the token and returns the updated profile.
	UpdateProfileImage(ctx context.Context, token string, imageURL string) (*models.Profile, error)

	Close() error
}
