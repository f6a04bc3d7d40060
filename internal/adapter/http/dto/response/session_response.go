package response

import (
	"time"

	"assistec/internal/domain/entities"
)

// SessionResponse never exposes the tokens.
type SessionResponse struct {
	State         entities.SessionState `json:"state"`
	Configured    bool                  `json:"configured"`
	Authenticated bool                  `json:"authenticated"`
	User          *entities.User        `json:"user"`
	ExpiresAt     *time.Time            `json:"expires_at,omitempty"`
}

func FromSession(state entities.SessionState, configured bool, s *entities.Session) SessionResponse {
	res := SessionResponse{State: state, Configured: configured}
	if s == nil {
		return res
	}
	user := s.User
	res.Authenticated = true
	res.User = &user
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		res.ExpiresAt = &exp
	}
	return res
}
