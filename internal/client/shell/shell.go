// Package shell is the presentation state machine of the warnwave client:
// anonymous vs authenticated, plus the login/register modal pair. The state
// is process-local and never persisted.
package shell

import (
	"fmt"
	"io"
	"sync"

	"github.com/warnwave/warnwave-cli/internal/client/models"
)

// DefaultAvatar is shown whenever the profile has no image of its own.
const DefaultAvatar = "https://ui-avatars.com/api/?name=User&background=0D8ABC&color=fff&rounded=true"

type Modal int

const (
	ModalNone Modal = iota
	ModalLogin
	ModalRegister
)

func (m Modal) String() string {
	switch m {
	case ModalLogin:
		return "login"
	case ModalRegister:
		return "register"
	default:
		return "none"
	}
}

// Shell tracks what the UI shows. The two modals are mutually exclusive:
// opening one closes the other.
type Shell struct {
	mu    sync.Mutex
	user  *models.Profile
	modal Modal
}

func New() *Shell {
	return &Shell{}
}

// OnSessionChange is the session-store subscriber: nil means anonymous.
func (s *Shell) OnSessionChange(user *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

func (s *Shell) OpenLogin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = ModalLogin
}

func (s *Shell) OpenRegister() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = ModalRegister
}

func (s *Shell) CloseModals() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = ModalNone
}

func (s *Shell) Modal() Modal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal
}

func (s *Shell) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// AvatarURL falls back to DefaultAvatar when the profile carries no image.
// The fallback is a rendering concern only; the stored profile keeps its
// empty value.
func (s *Shell) AvatarURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || s.user.ProfileImage == "" {
		return DefaultAvatar
	}
	return s.user.ProfileImage
}

// Render writes the current view.
func (s *Shell) Render(w io.Writer) {
	s.mu.Lock()
	user := s.user
	modal := s.modal
	s.mu.Unlock()

	fmt.Fprintln(w, "warnwave: safe gesture-based authentication")

	if user != nil {
		avatar := user.ProfileImage
		if avatar == "" {
			avatar = DefaultAvatar
		}
		fmt.Fprintf(w, "logged in as %s\n", user.Username)
		fmt.Fprintf(w, "avatar: %s\n", avatar)
	} else {
		fmt.Fprintln(w, "login or register to get started")
	}

	if modal != ModalNone {
		fmt.Fprintf(w, "[%s form open]\n", modal)
	}
}
