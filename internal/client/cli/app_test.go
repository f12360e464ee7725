package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warnwave/warnwave-cli/internal/client/models"
)

func TestStatus(t *testing.T) {
	ctx := context.Background()
	profile := &fakeProfile{}
	app := newTestApp(t, &fakeAuth{}, profile)

	assert.Equal(t, "anonymous", app.status())

	app.store.Set(ctx, "token1", &models.Profile{Username: "alice"})
	assert.Equal(t, "alice", app.status())

	profile.uploading = true
	assert.Equal(t, "uploading...", app.status())
	profile.uploading = false

	// a rehydrated session has a token but no profile yet
	app.store.Set(ctx, "token1", nil)
	assert.Equal(t, "restored", app.status())
}

func TestIsLoggedIn(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, &fakeAuth{}, &fakeProfile{})

	assert.False(t, app.isLoggedIn())
	app.store.Set(ctx, "token1", &models.Profile{Username: "alice"})
	assert.True(t, app.isLoggedIn())
}

func TestSetAvatar_Success(t *testing.T) {
	profile := &fakeProfile{user: &models.Profile{Username: "alice", ProfileImage: "https://img.example/a.png"}}
	app := newTestApp(t, &fakeAuth{}, profile)

	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(path, []byte("pngdata"), 0o600))
	stubInput(t, path, nil)

	require.NoError(t, app.SetAvatar(context.Background()))
	assert.Equal(t, "avatar.png", profile.filename)
	assert.Equal(t, []byte("pngdata"), profile.data)
}

func TestSetAvatar_FileMissing(t *testing.T) {
	profile := &fakeProfile{}
	app := newTestApp(t, &fakeAuth{}, profile)
	stubInput(t, filepath.Join(t.TempDir(), "nope.png"), nil)

	require.Error(t, app.SetAvatar(context.Background()))
	assert.Nil(t, profile.data)
}

func TestSetAvatar_UploadError(t *testing.T) {
	profile := &fakeProfile{err: errors.New("host down")}
	app := newTestApp(t, &fakeAuth{}, profile)

	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(path, []byte("pngdata"), 0o600))
	stubInput(t, path, nil)

	require.Error(t, app.SetAvatar(context.Background()))
}

func TestSetAvatar_ReadFileSeam(t *testing.T) {
	profile := &fakeProfile{user: &models.Profile{Username: "alice"}}
	app := newTestApp(t, &fakeAuth{}, profile)
	stubInput(t, "/virtual/img.jpg", nil)

	orig := readFile
	t.Cleanup(func() { readFile = orig })
	readFile = func(name string) ([]byte, error) {
		assert.Equal(t, "/virtual/img.jpg", name)
		return []byte("jpegdata"), nil
	}

	require.NoError(t, app.SetAvatar(context.Background()))
	assert.Equal(t, "img.jpg", profile.filename)
}
