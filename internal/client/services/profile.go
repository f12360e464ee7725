package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/warnwave/warnwave-cli/internal/client/api"
	"github.com/warnwave/warnwave-cli/internal/client/imagehost"
	"github.com/warnwave/warnwave-cli/internal/client/models"
	"github.com/warnwave/warnwave-cli/internal/client/session"
	"github.com/warnwave/warnwave-cli/internal/logging"
)

var (
	// ErrUploadFailed covers both the hosting and the associating phase.
	// The UI shows one generic notice either way; the wrapped cause is for logs.
	ErrUploadFailed = errors.New("image upload failed")

	// ErrUploadInProgress rejects a second attempt while one is running.
	ErrUploadInProgress = errors.New("an upload is already in progress")

	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmptyImage       = errors.New("empty image file")
)

type uploadPhase string

const (
	phaseHosting     uploadPhase = "hosting"
	phaseAssociating uploadPhase = "associating"
)

// uploadAttempt is the transient record of one user-initiated image change.
// It lives for the duration of UpdateImage and is never persisted.
type uploadAttempt struct {
	id       string
	filename string
	phase    uploadPhase
}

// ProfileService sequences the two-phase profile-image update: host the
// bytes externally, then associate the resulting URL with the backend under
// the current session token.
type ProfileService interface {
	// UpdateImage runs one upload attempt and returns the updated profile.
	// On any failure the attempt is abandoned wholesale: a URL obtained in
	// the hosting phase is discarded, the stored profile stays as it was,
	// and the caller must re-trigger the whole attempt.
	UpdateImage(ctx context.Context, filename string, data []byte) (*models.Profile, error)

	// Uploading reports whether an attempt is currently running. Callers use
	// it to disable the trigger; UpdateImage enforces it regardless.
	Uploading() bool
}

type profileService struct {
	host   imagehost.Host
	client api.Client
	store  *session.Store
	log    logging.Logger

	mu        sync.Mutex
	uploading bool
}

func NewProfileService(host imagehost.Host, client api.Client, store *session.Store, log logging.Logger) ProfileService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &profileService{host: host, client: client, store: store, log: log.With("component", "upload")}
}

func (s *profileService) Uploading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploading
}

func (s *profileService) UpdateImage(ctx context.Context, filename string, data []byte) (*models.Profile, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	token := s.store.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	if !s.begin() {
		return nil, ErrUploadInProgress
	}
	defer s.end()

	att := &uploadAttempt{id: uuid.NewString(), filename: filename, phase: phaseHosting}
	log := s.log.With("attempt", att.id)

	url, err := s.host.Upload(ctx, filename, data)
	if err != nil {
		log.Error(ctx, "hosting phase failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	att.phase = phaseAssociating

	user, err := s.client.UpdateProfileImage(ctx, token, url)
	if err != nil {
		// the hosted URL is dropped on the floor, nothing was committed
		log.Error(ctx, "associating phase failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	s.store.Set(ctx, token, user)
	log.Info(ctx, "profile image updated", "url", user.ProfileImage)
	return user, nil
}

func (s *profileService) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploading {
		return false
	}
	s.uploading = true
	return true
}

func (s *profileService) end() {
	s.mu.Lock()
	s.uploading = false
	s.mu.Unlock()
}
