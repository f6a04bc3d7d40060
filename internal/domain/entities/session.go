package entities

import "time"

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session mirrors the identity provider session.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
}

// Expired reports whether the access token expires before now+leeway.
func (s Session) Expired(now time.Time, leeway time.Duration) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Add(leeway).Before(s.ExpiresAt)
}

type SessionState string

const (
	SessionStateLoading  SessionState = "loading"
	SessionStateResolved SessionState = "resolved"
)

type AuthEventType string

const (
	AuthEventInitialSession AuthEventType = "INITIAL_SESSION"
	AuthEventSignedIn       AuthEventType = "SIGNED_IN"
	AuthEventTokenRefreshed AuthEventType = "TOKEN_REFRESHED"
	AuthEventSignedOut      AuthEventType = "SIGNED_OUT"
)

// AuthEvent is delivered to session subscribers. Session is nil when there
// is no signed-in user.
type AuthEvent struct {
	Type    AuthEventType
	Session *Session
}
