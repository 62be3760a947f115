// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of transport/adapter concerns.
package auth

import (
	"time"

	"github.com/holidaze/holidaze-go/internal/domain/model"
)

// Credentials is a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is an account creation request. Registering does not log the
// user in; callers follow up with a login call.
type Registration struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Password     string       `json:"password"`
	Avatar       *model.Media `json:"avatar,omitempty"`
	VenueManager bool         `json:"venueManager"`
}

// Account is the authenticated profile the remote API returns from a
// successful login: the user profile plus the bearer token.
type Account struct {
	model.User
	AccessToken string `json:"accessToken"`
}

// Session is the client-side record persisted for an authenticated user.
// Token is the opaque bearer token issued by the remote API.
type Session struct {
	Token   string      `json:"token"`
	User    *model.User `json:"user"`
	SavedAt time.Time   `json:"saved_at,omitzero"`
}

// WellFormed reports whether the session holds both a token and an
// identifiable user. Partial records are treated as absent.
func (s Session) WellFormed() bool {
	return s.Token != "" && s.User != nil && s.User.Name != ""
}
