package interfaces

import (
	"context"

	"assistec/internal/domain/entities"
)

// IIdentityProvider is the hosted identity service behind magic-link sign-in.
type IIdentityProvider interface {
	Configured() bool
	SendMagicLink(ctx context.Context, email string) error
	VerifyTokenHash(ctx context.Context, tokenHash, linkType string) (*entities.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*entities.Session, error)
	GetUser(ctx context.Context, accessToken string) (*entities.User, error)
	SignOut(ctx context.Context, accessToken string) error
}
