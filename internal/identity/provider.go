// Package identity wraps the external identity provider. Only its externally
// observed contract is used: a session read, a session-change subscription,
// and the sign-in/sign-up/sign-out calls. The application reads nothing from
// a session beyond id, email and the metadata bag.
package identity

import (
	"context"

	"pawfinder/internal/domain"
)

// Provider is the externally observed identity contract. Session returns nil
// when nobody is signed in; that is not an error.
type Provider interface {
	Session(ctx context.Context) (*domain.Session, error)
	OnSessionChange(fn func(*domain.Session)) (unsubscribe func())
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*domain.Session, error)
	SignOut(ctx context.Context) error
	UpdateProfile(ctx context.Context, metadata map[string]any) error
	DeleteAccount(ctx context.Context) error
}

// Disabled stands in when no provider is configured. Session reports nobody
// signed in; every other operation returns the uniform not-configured error
// instead of failing loudly, so the rest of the app keeps working.
type Disabled struct{}

func (Disabled) Session(context.Context) (*domain.Session, error) { return nil, nil }

func (Disabled) OnSessionChange(func(*domain.Session)) func() { return func() {} }

func (Disabled) SignIn(context.Context, string, string) (*domain.Session, error) {
	return nil, domain.ErrNotConfigured
}

func (Disabled) SignUp(context.Context, string, string, map[string]any) (*domain.Session, error) {
	return nil, domain.ErrNotConfigured
}

func (Disabled) SignOut(context.Context) error { return domain.ErrNotConfigured }

func (Disabled) UpdateProfile(context.Context, map[string]any) error {
	return domain.ErrNotConfigured
}

// DeleteAccount can never be implemented client-side, configured or not.
func (Disabled) DeleteAccount(context.Context) error { return domain.ErrUnsupported }
