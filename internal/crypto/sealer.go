// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

var (
	ErrEmptySealSecret = errors.New("key seal secret is empty")
	ErrSealedTooShort  = errors.New("sealed value too short")
	ErrOpenFailed      = errors.New("sealed value could not be opened")
)

// sealSalt domain-separates the derived key. The secret itself carries the
// entropy; the salt only has to be fixed so the key is stable across restarts.
var sealSalt = []byte("blockplot/api-key-seal/v1")

// aesGCMSealer is the private implementation of [KeySealer].
type aesGCMSealer struct {
	gcm cipher.AEAD
}

// NewKeySealer derives a 256-bit key from secret with Argon2id (time cost 1,
// 64 MiB, 4 threads) and returns an AES-256-GCM [KeySealer] using it.
// Returns [ErrEmptySealSecret] when secret is empty.
func NewKeySealer(secret string) (KeySealer, error) {
	if secret == "" {
		return nil, ErrEmptySealSecret
	}

	key := argon2.IDKey([]byte(secret), sealSalt, 1, 64*1024, 4, 32)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesGCMSealer{gcm: gcm}, nil
}

// Seal implements [KeySealer]. A fresh random nonce is prepended to the
// ciphertext: blob = nonce ‖ ciphertext.
func (s *aesGCMSealer) Seal(plaintext string) (string, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := s.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [KeySealer].
func (s *aesGCMSealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrOpenFailed, err)
	}

	nonceSize := s.gcm.NonceSize()
	if len(blob) < nonceSize+s.gcm.Overhead() {
		return "", ErrSealedTooShort
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := s.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	return string(plaintext), nil
}
