// Package models defines the client-side view of backend-owned records.
package models

// Profile is the backend-owned record describing the authenticated user.
// The backend is the source of truth: the whole record is replaced on every
// successful login, registration, or profile-image update. An empty
// ProfileImage means the user has not set one; rendering falls back to a
// placeholder avatar.
type Profile struct {
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Clone returns an independent copy so callers cannot mutate shared state.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
