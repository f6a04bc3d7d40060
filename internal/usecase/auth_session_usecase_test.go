package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"assistec/internal/domain/entities"
	mock_interfaces "assistec/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var authNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func freshSession() entities.Session {
	return entities.Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    authNow.Add(time.Hour),
		User:         entities.User{ID: "u1", Email: "dono@loja.com"},
	}
}

func newAuth(t *testing.T) (*AuthSessionUseCase, *mock_interfaces.MockIIdentityProvider, *mock_interfaces.MockISessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
	store := mock_interfaces.NewMockISessionRepository(ctrl)
	provider.EXPECT().Configured().Return(true).AnyTimes()
	uc := NewAuthSessionUseCase(provider, store)
	uc.now = func() time.Time { return authNow }
	return uc, provider, store
}

func TestAuthSessionUseCase_Start(t *testing.T) {
	t.Run("unconfigured resolves without user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		provider.EXPECT().Configured().Return(false).AnyTimes()
		uc := NewAuthSessionUseCase(provider, nil)

		if uc.State() != entities.SessionStateLoading {
			t.Fatalf("expected loading before start")
		}
		if err := uc.Start(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.State() != entities.SessionStateResolved || uc.User() != nil {
			t.Fatalf("expected resolved without user")
		}
	})

	t.Run("no stored session", func(t *testing.T) {
		uc, _, store := newAuth(t)
		store.EXPECT().Load(gomock.Any()).Return(nil, nil)

		var events []entities.AuthEvent
		uc.Subscribe(func(e entities.AuthEvent) { events = append(events, e) })

		if err := uc.Start(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 || events[0].Type != entities.AuthEventInitialSession || events[0].Session != nil {
			t.Fatalf("unexpected events: %+v", events)
		}
	})

	t.Run("valid stored session is restored", func(t *testing.T) {
		uc, provider, store := newAuth(t)
		s := freshSession()
		store.EXPECT().Load(gomock.Any()).Return(&s, nil)
		provider.EXPECT().GetUser(gomock.Any(), "access").Return(&entities.User{ID: "u1", Email: "dono@loja.com", Name: "Dono"}, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		if err := uc.Start(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u := uc.User(); u == nil || u.Name != "Dono" {
			t.Fatalf("expected restored user, got %+v", u)
		}
	})

	t.Run("expiring stored session is refreshed", func(t *testing.T) {
		uc, provider, store := newAuth(t)
		s := freshSession()
		s.ExpiresAt = authNow.Add(time.Minute)
		refreshed := freshSession()
		refreshed.AccessToken = "access-2"

		store.EXPECT().Load(gomock.Any()).Return(&s, nil)
		provider.EXPECT().Refresh(gomock.Any(), "refresh").Return(&refreshed, nil)
		provider.EXPECT().GetUser(gomock.Any(), "access-2").Return(&refreshed.User, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		if err := uc.Start(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s := uc.Session(); s == nil || s.AccessToken != "access-2" {
			t.Fatalf("expected refreshed session, got %+v", s)
		}
	})

	t.Run("rejected stored session is cleared", func(t *testing.T) {
		uc, provider, store := newAuth(t)
		s := freshSession()
		store.EXPECT().Load(gomock.Any()).Return(&s, nil)
		provider.EXPECT().GetUser(gomock.Any(), "access").Return(nil, errors.New("invalid token"))
		provider.EXPECT().Refresh(gomock.Any(), "refresh").Return(nil, errors.New("invalid grant"))
		store.EXPECT().Clear(gomock.Any()).Return(nil)

		if err := uc.Start(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.State() != entities.SessionStateResolved || uc.Session() != nil {
			t.Fatalf("expected resolved without session")
		}
	})

	t.Run("rejected token is refreshed and the user fetched again", func(t *testing.T) {
		uc, provider, store := newAuth(t)
		s := freshSession()
		renewed := entities.Session{AccessToken: "access-2", RefreshToken: "refresh-2", ExpiresAt: authNow.Add(time.Hour)}
		store.EXPECT().Load(gomock.Any()).Return(&s, nil)
		gomock.InOrder(
			provider.EXPECT().GetUser(gomock.Any(), "access").Return(nil, errors.New("invalid token")),
			provider.EXPECT().Refresh(gomock.Any(), "refresh").Return(&renewed, nil),
			provider.EXPECT().GetUser(gomock.Any(), "access-2").Return(&entities.User{ID: "u1"}, nil),
		)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		if err := uc.Start(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u := uc.User(); u == nil || u.ID != "u1" {
			t.Fatalf("expected user u1, got %+v", u)
		}
	})

	t.Run("refreshed session without user is rejected", func(t *testing.T) {
		uc, provider, store := newAuth(t)
		s := freshSession()
		renewed := entities.Session{AccessToken: "access-2", RefreshToken: "refresh-2", ExpiresAt: authNow.Add(time.Hour)}
		store.EXPECT().Load(gomock.Any()).Return(&s, nil)
		provider.EXPECT().GetUser(gomock.Any(), "access").Return(nil, errors.New("invalid token"))
		provider.EXPECT().Refresh(gomock.Any(), "refresh").Return(&renewed, nil)
		provider.EXPECT().GetUser(gomock.Any(), "access-2").Return(nil, errors.New("user not found"))
		store.EXPECT().Clear(gomock.Any()).Return(nil)

		if err := uc.Start(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.Session() != nil || uc.User() != nil {
			t.Fatalf("expected no session, got %+v", uc.Session())
		}
	})

	t.Run("provider user without id is rejected", func(t *testing.T) {
		uc, provider, store := newAuth(t)
		s := freshSession()
		store.EXPECT().Load(gomock.Any()).Return(&s, nil)
		provider.EXPECT().GetUser(gomock.Any(), "access").Return(&entities.User{}, nil)
		store.EXPECT().Clear(gomock.Any()).Return(nil)

		if err := uc.Start(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.User() != nil {
			t.Fatalf("expected no user")
		}
	})

	t.Run("store failure still resolves", func(t *testing.T) {
		uc, _, store := newAuth(t)
		store.EXPECT().Load(gomock.Any()).Return(nil, errors.New("dynamo down"))

		if err := uc.Start(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
		if uc.State() != entities.SessionStateResolved {
			t.Fatalf("expected resolved state")
		}
	})
}

func TestAuthSessionUseCase_Subscribe(t *testing.T) {
	uc, _, store := newAuth(t)
	store.EXPECT().Load(gomock.Any()).Return(nil, nil)
	if err := uc.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var events []entities.AuthEvent
	unsubscribe := uc.Subscribe(func(e entities.AuthEvent) { events = append(events, e) })
	if len(events) != 1 || events[0].Type != entities.AuthEventInitialSession {
		t.Fatalf("expected immediate INITIAL_SESSION, got %+v", events)
	}

	// A publish of the change the replay already covered is not delivered.
	uc.mu.RLock()
	version := uc.version
	uc.mu.RUnlock()
	uc.events.publish(authUpdate{version: version, event: entities.AuthEvent{Type: entities.AuthEventInitialSession}})
	if len(events) != 1 {
		t.Fatalf("expected a single INITIAL_SESSION, got %+v", events)
	}

	unsubscribe()
	unsubscribe()
	store.EXPECT().Clear(gomock.Any()).Return(nil)
	if err := uc.SignOut(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected no events after unsubscribe, got %+v", events)
	}
}

func TestAuthSessionUseCase_MagicLink(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		uc := NewAuthSessionUseCase(nil, nil)
		if err := uc.SignInWithMagicLink(context.Background(), "a@b.com"); !errors.Is(err, ErrAuthNotConfigured) {
			t.Fatalf("expected ErrAuthNotConfigured, got %v", err)
		}
		if _, err := uc.CompleteMagicLink(context.Background(), "hash", ""); !errors.Is(err, ErrAuthNotConfigured) {
			t.Fatalf("expected ErrAuthNotConfigured, got %v", err)
		}
		if err := uc.Refresh(context.Background()); !errors.Is(err, ErrAuthNotConfigured) {
			t.Fatalf("expected ErrAuthNotConfigured, got %v", err)
		}
		if err := uc.SignOut(context.Background()); err != nil {
			t.Fatalf("sign out must be a no-op, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc, _, _ := newAuth(t)
		if err := uc.SignInWithMagicLink(context.Background(), "dono"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("send", func(t *testing.T) {
		uc, provider, _ := newAuth(t)
		provider.EXPECT().SendMagicLink(gomock.Any(), "dono@loja.com").Return(nil)
		if err := uc.SignInWithMagicLink(context.Background(), " dono@loja.com "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("complete signs in", func(t *testing.T) {
		uc, provider, store := newAuth(t)
		s := freshSession()
		provider.EXPECT().VerifyTokenHash(gomock.Any(), "hash", "magiclink").Return(&s, nil)
		store.EXPECT().Save(gomock.Any(), s).Return(nil)

		var events []entities.AuthEvent
		uc.Subscribe(func(e entities.AuthEvent) { events = append(events, e) })

		got, err := uc.CompleteMagicLink(context.Background(), "hash", "magiclink")
		if err != nil || got.User.ID != "u1" {
			t.Fatalf("unexpected result err=%v session=%+v", err, got)
		}
		if len(events) != 1 || events[0].Type != entities.AuthEventSignedIn || events[0].Session.AccessToken != "access" {
			t.Fatalf("unexpected events: %+v", events)
		}
		if uc.State() != entities.SessionStateResolved {
			t.Fatalf("expected resolved state")
		}
	})

	t.Run("complete without user", func(t *testing.T) {
		uc, provider, _ := newAuth(t)
		s := freshSession()
		s.User = entities.User{}
		provider.EXPECT().VerifyTokenHash(gomock.Any(), "hash", "").Return(&s, nil)
		provider.EXPECT().GetUser(gomock.Any(), "access").Return(nil, errors.New("invalid token"))

		if _, err := uc.CompleteMagicLink(context.Background(), "hash", ""); !errors.Is(err, ErrInvalidMagicLink) {
			t.Fatalf("expected ErrInvalidMagicLink, got %v", err)
		}
		if uc.User() != nil {
			t.Fatalf("expected no user")
		}
	})

	t.Run("complete with empty hash", func(t *testing.T) {
		uc, _, _ := newAuth(t)
		if _, err := uc.CompleteMagicLink(context.Background(), " ", ""); !errors.Is(err, ErrInvalidMagicLink) {
			t.Fatalf("expected ErrInvalidMagicLink, got %v", err)
		}
	})
}

func TestAuthSessionUseCase_SignOutAndRefresh(t *testing.T) {
	signedIn := func(t *testing.T, s entities.Session) (*AuthSessionUseCase, *mock_interfaces.MockIIdentityProvider, *mock_interfaces.MockISessionRepository) {
		uc, provider, store := newAuth(t)
		provider.EXPECT().VerifyTokenHash(gomock.Any(), "hash", "").Return(&s, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		if _, err := uc.CompleteMagicLink(context.Background(), "hash", ""); err != nil {
			t.Fatalf("sign in failed: %v", err)
		}
		return uc, provider, store
	}

	t.Run("sign out survives provider failure", func(t *testing.T) {
		uc, provider, store := signedIn(t, freshSession())
		provider.EXPECT().SignOut(gomock.Any(), "access").Return(errors.New("network"))
		store.EXPECT().Clear(gomock.Any()).Return(nil)

		var events []entities.AuthEvent
		uc.Subscribe(func(e entities.AuthEvent) { events = append(events, e) })

		if err := uc.SignOut(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.Session() != nil || events[len(events)-1].Type != entities.AuthEventSignedOut {
			t.Fatalf("expected signed out, events=%+v", events)
		}
	})

	t.Run("refresh skipped when token is fresh", func(t *testing.T) {
		uc, _, _ := signedIn(t, freshSession())
		if err := uc.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("refresh renews expiring token", func(t *testing.T) {
		s := freshSession()
		s.ExpiresAt = authNow.Add(5 * time.Minute)
		uc, provider, store := signedIn(t, s)
		renewed := entities.Session{AccessToken: "access-2", RefreshToken: "refresh-2", ExpiresAt: authNow.Add(time.Hour)}
		provider.EXPECT().Refresh(gomock.Any(), "refresh").Return(&renewed, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		var events []entities.AuthEvent
		uc.Subscribe(func(e entities.AuthEvent) { events = append(events, e) })

		if err := uc.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := uc.Session()
		if got.AccessToken != "access-2" || got.User.ID != "u1" {
			t.Fatalf("unexpected session: %+v", got)
		}
		if events[len(events)-1].Type != entities.AuthEventTokenRefreshed {
			t.Fatalf("expected TOKEN_REFRESHED, got %+v", events)
		}
	})

	t.Run("failed refresh of expired token signs out", func(t *testing.T) {
		s := freshSession()
		s.ExpiresAt = authNow.Add(-time.Minute)
		uc, provider, store := signedIn(t, s)
		provider.EXPECT().Refresh(gomock.Any(), "refresh").Return(nil, errors.New("invalid grant"))
		store.EXPECT().Clear(gomock.Any()).Return(nil)

		if err := uc.Refresh(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
		if uc.Session() != nil {
			t.Fatalf("expected session dropped")
		}
	})
}
