package service

import (
	"context"

	"github.com/MarkAnthonyM/BlockPlot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService drives the authorization-code login flow and resolves session
// tokens to principals.
type AuthService interface {
	// StartLogin returns a fresh anti-CSRF state and the provider authorize
	// URL carrying it.
	StartLogin(ctx context.Context) (models.LoginStart, error)
	// CompleteLogin checks state against the value remembered in the state
	// cookie, exchanges code, verifies the identity token, resolves the user
	// and issues a session.
	CompleteLogin(ctx context.Context, code, state, cookieState string) (models.LoginResult, error)
	// Logout removes the session under token, if any, and returns the
	// provider logout URL to redirect to.
	Logout(ctx context.Context, token string) string
	// ResolveSession returns the principal behind a live session token.
	ResolveSession(ctx context.Context, token string) (models.Principal, error)
}

// UserDirectory maps verified identities to local users.
type UserDirectory interface {
	// GetOrCreate returns the user with claims.Subject, creating it on first
	// sight. It does not touch last_login_at.
	GetOrCreate(ctx context.Context, claims models.VerifiedClaims) (models.User, error)
}

// SkillblockService creates skillblocks on behalf of a user.
type SkillblockService interface {
	CreateSkillblock(ctx context.Context, user models.User, form models.NewSkillblockForm) (models.Skillblock, error)
}

// SyncService reconciles a user's skillblock series with the analytics
// source.
type SyncService interface {
	// SyncUser returns the up-to-date series of every skillblock of user.
	// On any failure nothing is returned and blocks_last_synced_at is left
	// untouched.
	SyncUser(ctx context.Context, user models.User) ([]models.TimeData, error)
}

// SessionStore is the subset of the in-memory session store the services
// need.
type SessionStore interface {
	Put(token string, s models.Session)
	Get(token string) (models.Session, error)
	Remove(token string)
}

// TokenVerifier validates identity tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (models.VerifiedClaims, error)
}

// IDGenerator produces unguessable opaque identifiers.
type IDGenerator interface {
	Random() string
}
