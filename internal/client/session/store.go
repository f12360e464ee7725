// Package session owns the authentication session: the token/profile pair,
// its persistence across restarts, and change notifications for the UI.
package session

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/warnwave/warnwave-cli/internal/client/models"
	sessionrepo "github.com/warnwave/warnwave-cli/internal/client/repositories/session"
	"github.com/warnwave/warnwave-cli/internal/dbx"
	"github.com/warnwave/warnwave-cli/internal/logging"
)

// Keys in the durable session table.
const (
	tokenKey        = "token"
	tokenSavedAtKey = "token_saved_at"
)

// Store holds the current session. The token and the profile change together:
// Set installs both under one lock, Clear removes both, so no reader ever
// observes a token without its profile or vice versa.
//
// Durability is best-effort. When the local database is unavailable the store
// keeps working in memory only; persistence failures are logged, never
// surfaced (a blocked store must not break login).
type Store struct {
	mu    sync.Mutex
	token string
	user  *models.Profile

	db  *sql.DB // nil means memory-only
	log logging.Logger

	subs   map[int]func(*models.Profile)
	nextID int
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Store{
		db:   db,
		log:  log.With("component", "session"),
		subs: make(map[int]func(*models.Profile)),
	}
}

// Token returns the current token, or "" when the session is anonymous.
// A rehydrated session may carry a token without a profile; the token is
// trusted optimistically until a backend call rejects it.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns a copy of the current profile, or nil when anonymous.
func (s *Store) User() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// Authenticated reports whether a profile is present.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// Set installs the token/profile pair and persists the token.
func (s *Store) Set(ctx context.Context, token string, user *models.Profile) {
	s.mu.Lock()
	s.token = token
	s.user = user.Clone()
	s.mu.Unlock()

	if err := s.persistToken(ctx, token); err != nil {
		s.log.Warn(ctx, "could not persist session token, session is in-memory only", "error", err)
	}

	s.notify()
}

// Clear drops the session from memory and durable storage. Safe to call on an
// already-anonymous store.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if s.db != nil {
		repo := sessionrepo.NewSQLiteRepository(s.db)
		if err := repo.Clear(ctx); err != nil {
			s.log.Warn(ctx, "could not clear persisted session", "error", err)
		}
	}

	s.notify()
}

// Rehydrate loads the persisted token at startup. The token is not validated
// against the backend; the only check is local: a token that parses as a JWT
// with a passed expiry is discarded. The profile stays absent until the next
// successful login, so the UI starts anonymous either way.
func (s *Store) Rehydrate(ctx context.Context) {
	if s.db == nil {
		return
	}

	repo := sessionrepo.NewSQLiteRepository(s.db)
	value, err := repo.Get(ctx, tokenKey)
	if err != nil {
		s.log.Warn(ctx, "could not read persisted session", "error", err)
		return
	}
	if len(value) == 0 {
		return
	}

	token := string(value)
	if tokenExpired(token, time.Now()) {
		s.log.Info(ctx, "persisted token expired, discarding")
		if err := repo.Clear(ctx); err != nil {
			s.log.Warn(ctx, "could not clear expired session", "error", err)
		}
		return
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.log.Info(ctx, "session token restored")
}

// Subscribe registers fn to be called with the new profile (nil when the
// session becomes anonymous) after every Set/Clear. The returned function
// cancels the subscription.
func (s *Store) Subscribe(fn func(*models.Profile)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	user := s.user.Clone()
	fns := make([]func(*models.Profile), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(user.Clone())
	}
}

// persistToken writes the token and its save timestamp in one transaction so
// a crash cannot leave the table half-written.
func (s *Store) persistToken(ctx context.Context, token string) error {
	if s.db == nil {
		return nil
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := sessionrepo.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, tokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, tokenSavedAtKey, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
}

// tokenExpired reports whether the token is a JWT whose exp claim has passed.
// Opaque tokens (anything that does not parse as a JWT) and JWTs without an
// exp claim are trusted optimistically.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
