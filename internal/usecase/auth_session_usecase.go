package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/logger"
	"assistec/internal/usecase/interfaces"
)

var (
	ErrAuthNotConfigured = errors.New("authentication provider not configured")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidMagicLink  = errors.New("invalid magic link")
	ErrInvalidSession    = errors.New("session without user")
)

// RefreshLeeway is how long before expiry the access token is renewed.
const RefreshLeeway = 15 * time.Minute

// IAuthSessionUseCase mirrors the identity provider session of the shop
// operator. The state starts as loading and becomes resolved once Start
// has checked the stored session; it never goes back to loading.
type IAuthSessionUseCase interface {
	Start(ctx context.Context) error
	Subscribe(fn func(entities.AuthEvent)) (unsubscribe func())
	SignInWithMagicLink(ctx context.Context, email string) error
	CompleteMagicLink(ctx context.Context, tokenHash, linkType string) (entities.Session, error)
	SignOut(ctx context.Context) error
	Refresh(ctx context.Context) error
	State() entities.SessionState
	Session() *entities.Session
	User() *entities.User
	Configured() bool
}

type AuthSessionUseCase struct {
	provider interfaces.IIdentityProvider
	store    interfaces.ISessionRepository
	now      func() time.Time

	mu      sync.RWMutex
	state   entities.SessionState
	session *entities.Session
	version uint64
	events  broadcaster[authUpdate]
}

// authUpdate is a published event tagged with the session version it
// produced.
type authUpdate struct {
	version uint64
	event   entities.AuthEvent
}

var _ IAuthSessionUseCase = (*AuthSessionUseCase)(nil)

// NewAuthSessionUseCase builds the session in the loading state. store may be
// nil, in which case the session lives only in memory.
func NewAuthSessionUseCase(provider interfaces.IIdentityProvider, store interfaces.ISessionRepository) *AuthSessionUseCase {
	return &AuthSessionUseCase{
		provider: provider,
		store:    store,
		now:      time.Now,
		state:    entities.SessionStateLoading,
	}
}

func (u *AuthSessionUseCase) Configured() bool {
	return u.provider != nil && u.provider.Configured()
}

// Start restores the stored session, validating it with the provider, and
// resolves the state. It always resolves, even when it returns an error.
func (u *AuthSessionUseCase) Start(ctx context.Context) error {
	log := logger.For("auth.session")
	if !u.Configured() {
		log.Warn().Msg("identity provider not configured; requests are not authenticated")
		u.resolve(nil)
		return nil
	}
	if u.store == nil {
		u.resolve(nil)
		return nil
	}

	stored, err := u.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed loading stored session")
		u.resolve(nil)
		return err
	}
	if stored == nil {
		u.resolve(nil)
		return nil
	}

	sess, err := u.validate(ctx, *stored)
	if err != nil {
		log.Info().Err(err).Msg("stored session rejected")
		u.clearStore(ctx)
		u.resolve(nil)
		return nil
	}
	u.saveStore(ctx, sess)
	log.Info().Str("user_id", sess.User.ID).Msg("session restored")
	u.resolve(&sess)
	return nil
}

// validate refreshes an expiring token and checks the user with the
// provider. A rejected access token gets one refresh attempt.
func (u *AuthSessionUseCase) validate(ctx context.Context, s entities.Session) (entities.Session, error) {
	if s.Expired(u.now(), RefreshLeeway) {
		refreshed, err := u.provider.Refresh(ctx, s.RefreshToken)
		if err != nil {
			return entities.Session{}, err
		}
		s = *refreshed
	}
	user, err := u.provider.GetUser(ctx, s.AccessToken)
	if err != nil {
		refreshed, rerr := u.provider.Refresh(ctx, s.RefreshToken)
		if rerr != nil {
			return entities.Session{}, err
		}
		s = *refreshed
		if user, err = u.provider.GetUser(ctx, s.AccessToken); err != nil {
			return entities.Session{}, err
		}
	}
	if user == nil || user.ID == "" {
		return entities.Session{}, ErrInvalidSession
	}
	s.User = *user
	return s, nil
}

func (u *AuthSessionUseCase) resolve(s *entities.Session) {
	u.set(s, entities.AuthEventInitialSession)
}

// Subscribe registers fn for session changes. When the state is already
// resolved fn immediately receives the current session as INITIAL_SESSION.
// Events published for changes already covered by that replay are skipped,
// and later events are delivered only after it.
func (u *AuthSessionUseCase) Subscribe(fn func(entities.AuthEvent)) func() {
	var delivery sync.Mutex

	u.mu.Lock()
	seen := u.version
	resolved := u.state == entities.SessionStateResolved
	current := copySession(u.session)
	unsubscribe := u.events.subscribe(func(up authUpdate) {
		if up.version <= seen {
			return
		}
		delivery.Lock()
		defer delivery.Unlock()
		fn(up.event)
	})
	delivery.Lock()
	u.mu.Unlock()

	if resolved {
		fn(entities.AuthEvent{Type: entities.AuthEventInitialSession, Session: current})
	}
	delivery.Unlock()
	return unsubscribe
}

func (u *AuthSessionUseCase) SignInWithMagicLink(ctx context.Context, email string) error {
	if !u.Configured() {
		return ErrAuthNotConfigured
	}
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return (fieldErrors{{Field: "email", Message: "Email inválido"}}).err(ErrInvalidEmail)
	}
	if err := u.provider.SendMagicLink(ctx, email); err != nil {
		logger.For("auth.session").Warn().Err(err).Msg("magic link request failed")
		return err
	}
	logger.For("auth.session").Info().Msg("magic link sent")
	return nil
}

func (u *AuthSessionUseCase) CompleteMagicLink(ctx context.Context, tokenHash, linkType string) (entities.Session, error) {
	if !u.Configured() {
		return entities.Session{}, ErrAuthNotConfigured
	}
	tokenHash = strings.TrimSpace(tokenHash)
	if tokenHash == "" {
		return entities.Session{}, ErrInvalidMagicLink
	}
	sess, err := u.provider.VerifyTokenHash(ctx, tokenHash, strings.TrimSpace(linkType))
	if err != nil {
		logger.For("auth.session").Warn().Err(err).Msg("magic link verification failed")
		return entities.Session{}, err
	}
	if sess.User.ID == "" {
		if user, err := u.provider.GetUser(ctx, sess.AccessToken); err == nil {
			sess.User = *user
		}
	}
	if sess.User.ID == "" {
		logger.For("auth.session").Warn().Msg("magic link session has no user")
		return entities.Session{}, ErrInvalidMagicLink
	}
	s := *sess
	u.saveStore(ctx, s)
	u.set(&s, entities.AuthEventSignedIn)
	logger.For("auth.session").Info().Str("user_id", s.User.ID).Msg("signed in")
	return s, nil
}

// SignOut is a no-op when the provider is not configured. A provider
// failure is logged and the local session is dropped anyway.
func (u *AuthSessionUseCase) SignOut(ctx context.Context) error {
	if !u.Configured() {
		return nil
	}
	if s := u.Session(); s != nil {
		if err := u.provider.SignOut(ctx, s.AccessToken); err != nil {
			logger.For("auth.session").Warn().Err(err).Msg("provider sign-out failed")
		}
	}
	u.clearStore(ctx)
	u.set(nil, entities.AuthEventSignedOut)
	logger.For("auth.session").Info().Msg("signed out")
	return nil
}

// Refresh renews the access token when it expires within RefreshLeeway.
// When renewal fails after the token has already expired the session is
// signed out locally.
func (u *AuthSessionUseCase) Refresh(ctx context.Context) error {
	if !u.Configured() {
		return ErrAuthNotConfigured
	}
	current := u.Session()
	if current == nil || !current.Expired(u.now(), RefreshLeeway) {
		return nil
	}
	refreshed, err := u.provider.Refresh(ctx, current.RefreshToken)
	if err != nil {
		logger.For("auth.session").Warn().Err(err).Msg("token refresh failed")
		if current.Expired(u.now(), 0) {
			u.clearStore(ctx)
			u.set(nil, entities.AuthEventSignedOut)
		}
		return err
	}
	s := *refreshed
	if s.User.ID == "" {
		s.User = current.User
	}
	u.saveStore(ctx, s)
	u.set(&s, entities.AuthEventTokenRefreshed)
	logger.For("auth.session").Debug().Time("expires_at", s.ExpiresAt).Msg("token refreshed")
	return nil
}

func (u *AuthSessionUseCase) State() entities.SessionState {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.state
}

// Session returns a copy of the current session, nil when signed out.
func (u *AuthSessionUseCase) Session() *entities.Session {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return copySession(u.session)
}

// User returns the signed-in user, nil when signed out.
func (u *AuthSessionUseCase) User() *entities.User {
	s := u.Session()
	if s == nil || s.User.ID == "" {
		return nil
	}
	return &s.User
}

func (u *AuthSessionUseCase) set(s *entities.Session, event entities.AuthEventType) {
	u.mu.Lock()
	u.state = entities.SessionStateResolved
	u.session = s
	u.version++
	version := u.version
	u.mu.Unlock()
	u.events.publish(authUpdate{version: version, event: entities.AuthEvent{Type: event, Session: copySession(s)}})
}

func (u *AuthSessionUseCase) saveStore(ctx context.Context, s entities.Session) {
	if u.store == nil {
		return
	}
	if err := u.store.Save(ctx, s); err != nil {
		logger.For("auth.session").Error().Err(err).Msg("failed persisting session")
	}
}

func (u *AuthSessionUseCase) clearStore(ctx context.Context) {
	if u.store == nil {
		return
	}
	if err := u.store.Clear(ctx); err != nil {
		logger.For("auth.session").Error().Err(err).Msg("failed clearing stored session")
	}
}

func copySession(s *entities.Session) *entities.Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
