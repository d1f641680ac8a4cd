// Package crypto seals analytics API keys before they are written to the
// users table and opens them again for fetching.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// KeySealer encrypts and decrypts secrets stored at rest.
//
// Scheme:
//
//	key    = Argon2id(sealSecret, fixed salt)   once, at construction
//	sealed = base64(nonce || AES-256-GCM(key, nonce, plaintext))
type KeySealer interface {
	// Seal encrypts plaintext and returns a base64 blob safe to store.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. It fails if the blob was altered or sealed with a
	// different secret.
	Open(sealed string) (string, error)
}
