// Package auth verifies identity tokens issued by the OAuth2/OIDC provider.
package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/models"
	"github.com/golang-jwt/jwt/v5"
)

// KeyProvider supplies the key material a token signature is checked with.
type KeyProvider interface {
	// Algorithms lists the accepted "alg" header values.
	Algorithms() []string
	// VerificationKey returns the key for token. Failures to obtain key
	// material wrap [ErrKeyFetchFailed].
	VerificationKey(ctx context.Context, token *jwt.Token) (any, error)
}

// Verifier checks identity tokens against one provider. The signature is
// verified before any claim is read; then audience, issuer, expiry and
// subject are checked in that order.
type Verifier struct {
	keys     KeyProvider
	audience string
	issuer   string
	now      func() time.Time
	parser   *jwt.Parser
}

// NewVerifier builds a Verifier expecting the given audience and issuer
// (e.g. "https://{domain}/").
func NewVerifier(keys KeyProvider, audience, issuer string) *Verifier {
	return &Verifier{
		keys:     keys,
		audience: audience,
		issuer:   issuer,
		now:      time.Now,
		parser: jwt.NewParser(
			jwt.WithValidMethods(keys.Algorithms()),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Verify validates rawToken and returns its claims.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (models.VerifiedClaims, error) {
	claims := &models.IdentityClaims{}

	_, err := v.parser.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (any, error) {
		return v.keys.VerificationKey(ctx, t)
	})
	if err != nil {
		return models.VerifiedClaims{}, classifyParseError(err)
	}

	if !slices.Contains(claims.Audience, v.audience) {
		return models.VerifiedClaims{}, fmt.Errorf("%w: got %v", ErrAudienceMismatch, []string(claims.Audience))
	}

	if claims.Issuer != v.issuer {
		return models.VerifiedClaims{}, fmt.Errorf("%w: got %q", ErrIssuerMismatch, claims.Issuer)
	}

	if claims.ExpiresAt == nil {
		return models.VerifiedClaims{}, fmt.Errorf("%w: exp claim is missing", ErrExpired)
	}
	if !v.now().Before(claims.ExpiresAt.Time) {
		return models.VerifiedClaims{}, ErrExpired
	}

	if claims.Subject == "" {
		return models.VerifiedClaims{}, fmt.Errorf("%w: empty subject", ErrMalformedToken)
	}

	return models.VerifiedClaims{
		Subject:   claims.Subject,
		Email:     claims.Email,
		GivenName: claims.GivenName,
		Nickname:  claims.Nickname,
		Picture:   claims.Picture,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, ErrKeyFetchFailed):
		return err
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrMalformedToken, err)
	default:
		// bad signature, unexpected alg or an unusable key
		return fmt.Errorf("%w: %w", ErrSignatureInvalid, err)
	}
}
