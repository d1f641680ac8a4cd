package auth

import "errors"

// Verification failures. Every error returned by [Verifier.Verify] wraps
// exactly one of them.
var (
	ErrSignatureInvalid = errors.New("token signature is invalid")
	ErrAudienceMismatch = errors.New("token audience mismatch")
	ErrIssuerMismatch   = errors.New("token issuer mismatch")
	ErrExpired          = errors.New("token is expired")
	ErrKeyFetchFailed   = errors.New("verification key could not be obtained")
	ErrMalformedToken   = errors.New("token is malformed")
)
