package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/warnwave/warnwave-cli/internal/client/api"
	"github.com/warnwave/warnwave-cli/internal/client/models"
	"github.com/warnwave/warnwave-cli/internal/client/session"
	"github.com/warnwave/warnwave-cli/internal/client/shell"
)

type fakeAPI struct {
	token string
	user  *models.Profile
	err   error

	lastUsername string
	lastPassword []byte

	associateCalls int
	associateToken string
	associateURL   string
	associateUser  *models.Profile
	associateErr   error
}

func (f *fakeAPI) Register(_ context.Context, username string, password []byte) (string, *models.Profile, error) {
	f.lastUsername, f.lastPassword = username, append([]byte(nil), password...)
	return f.token, f.user, f.err
}

func (f *fakeAPI) Login(_ context.Context, username string, password []byte) (string, *models.Profile, error) {
	f.lastUsername, f.lastPassword = username, append([]byte(nil), password...)
	return f.token, f.user, f.err
}

func (f *fakeAPI) UpdateProfileImage(_ context.Context, token string, imageURL string) (*models.Profile, error) {
	f.associateCalls++
	f.associateToken, f.associateURL = token, imageURL
	return f.associateUser, f.associateErr
}

func (f *fakeAPI) Close() error { return nil }

func TestLogin_Success_InstallsSession(t *testing.T) {
	f := &fakeAPI{token: "abc", user: &models.Profile{Username: "alice"}}
	store := session.NewStore(nil, nil)
	svc := NewAuthService(f, store, nil)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "alice", []byte("swipe-up-left")))

	require.Equal(t, "alice", f.lastUsername)
	require.Equal(t, "abc", store.Token())
	require.Equal(t, "alice", store.User().Username)
	require.True(t, store.Authenticated())
}

func TestLogin_Success_UpdatesShell(t *testing.T) {
	f := &fakeAPI{token: "abc", user: &models.Profile{Username: "alice"}}
	store := session.NewStore(nil, nil)
	sh := shell.New()
	store.Subscribe(sh.OnSessionChange)
	svc := NewAuthService(f, store, nil)

	require.NoError(t, svc.Login(context.Background(), "alice", []byte("swipe-up-left")))

	require.True(t, sh.Authenticated())
	require.Equal(t, shell.DefaultAvatar, sh.AvatarURL())
}

func TestLogin_CredentialError_SessionUntouched(t *testing.T) {
	f := &fakeAPI{err: api.ErrUnauthorized}
	store := session.NewStore(nil, nil)
	svc := NewAuthService(f, store, nil)

	err := svc.Login(context.Background(), "alice", []byte("wrong"))
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.Equal(t, "", store.Token())
	require.False(t, store.Authenticated())
}

func TestRegister_Success_AutoLogin(t *testing.T) {
	f := &fakeAPI{token: "fresh", user: &models.Profile{Username: "bob"}}
	store := session.NewStore(nil, nil)
	svc := NewAuthService(f, store, nil)

	require.NoError(t, svc.Register(context.Background(), "bob", []byte("pw")))
	require.Equal(t, "fresh", store.Token())
	require.Equal(t, "bob", store.User().Username)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	f := &fakeAPI{err: api.ErrAlreadyExists}
	store := session.NewStore(nil, nil)
	svc := NewAuthService(f, store, nil)

	err := svc.Register(context.Background(), "alice", []byte("pw"))
	require.ErrorIs(t, err, api.ErrAlreadyExists)
	require.False(t, store.Authenticated())
}

func TestLogout_ClearsSession(t *testing.T) {
	store := session.NewStore(nil, nil)
	store.Set(context.Background(), "abc", &models.Profile{Username: "alice"})

	svc := NewAuthService(&fakeAPI{}, store, nil)
	require.NoError(t, svc.Logout(context.Background()))

	require.Equal(t, "", store.Token())
	require.Nil(t, store.User())
}

func TestLogout_Twice(t *testing.T) {
	store := session.NewStore(nil, nil)
	svc := NewAuthService(&fakeAPI{}, store, nil)
	ctx := context.Background()

	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))
	require.False(t, store.Authenticated())
}

func TestLogin_BackendUnavailable(t *testing.T) {
	f := &fakeAPI{err: api.ErrUnavailable}
	store := session.NewStore(nil, nil)
	svc := NewAuthService(f, store, nil)

	err := svc.Login(context.Background(), "alice", []byte("pw"))
	require.ErrorIs(t, err, api.ErrUnavailable)
	require.False(t, store.Authenticated())
}

func TestLogin_WrappedErrorKeepsCause(t *testing.T) {
	cause := errors.New("weird")
	f := &fakeAPI{err: cause}
	svc := NewAuthService(f, session.NewStore(nil, nil), nil)

	err := svc.Login(context.Background(), "alice", []byte("pw"))
	require.ErrorIs(t, err, cause)
}
