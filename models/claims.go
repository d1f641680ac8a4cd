package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims is the claim set of an identity token issued by the
// OAuth2/OIDC provider.
type IdentityClaims struct {
	jwt.RegisteredClaims

	Email     string `json:"email"`
	GivenName string `json:"given_name"`
	Nickname  string `json:"nickname"`
	Picture   string `json:"picture"`
}

// VerifiedClaims are the claims of an identity token that passed signature,
// audience, issuer and expiry checks.
type VerifiedClaims struct {
	Subject   string
	Email     string
	GivenName string
	Nickname  string
	Picture   string
	// ExpiresAt is the token expiry in epoch seconds.
	ExpiresAt int64
}
