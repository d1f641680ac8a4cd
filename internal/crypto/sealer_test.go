package crypto

import (
	"encoding/base64"
	"errors"
	"testing"
)

func mustSealer(t *testing.T, secret string) KeySealer {
	t.Helper()
	s, err := NewKeySealer(secret)
	if err != nil {
		t.Fatalf("NewKeySealer error: %v", err)
	}
	return s
}

func TestNewKeySealer_EmptySecret(t *testing.T) {
	if _, err := NewKeySealer(""); !errors.Is(err, ErrEmptySealSecret) {
		t.Fatalf("err = %v, want ErrEmptySealSecret", err)
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	s := mustSealer(t, "seal-secret")

	sealed, err := s.Seal("abc123")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if sealed == "abc123" {
		t.Fatalf("sealed value equals plaintext")
	}

	got, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("Open = %q, want %q", got, "abc123")
	}
}

func TestSeal_FreshNonce(t *testing.T) {
	s := mustSealer(t, "seal-secret")

	a, _ := s.Seal("abc123")
	b, _ := s.Seal("abc123")
	if a == b {
		t.Fatalf("expected two seals of the same key to differ")
	}
}

func TestOpen_StableAcrossInstances(t *testing.T) {
	sealed, err := mustSealer(t, "seal-secret").Seal("abc123")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	got, err := mustSealer(t, "seal-secret").Open(sealed)
	if err != nil {
		t.Fatalf("Open with a second instance error: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("Open = %q, want %q", got, "abc123")
	}
}

func TestOpen_WrongSecret(t *testing.T) {
	sealed, _ := mustSealer(t, "seal-secret").Seal("abc123")

	if _, err := mustSealer(t, "other-secret").Open(sealed); !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("err = %v, want ErrOpenFailed", err)
	}
}

func TestOpen_Tampered(t *testing.T) {
	s := mustSealer(t, "seal-secret")
	sealed, _ := s.Seal("abc123")

	blob, _ := base64.StdEncoding.DecodeString(sealed)
	blob[len(blob)-1] ^= 0xFF

	if _, err := s.Open(base64.StdEncoding.EncodeToString(blob)); !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("err = %v, want ErrOpenFailed", err)
	}
}

func TestOpen_Malformed(t *testing.T) {
	s := mustSealer(t, "seal-secret")

	if _, err := s.Open("not base64!"); !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("err = %v, want ErrOpenFailed", err)
	}
	if _, err := s.Open(base64.StdEncoding.EncodeToString([]byte("short"))); !errors.Is(err, ErrSealedTooShort) {
		t.Fatalf("err = %v, want ErrSealedTooShort", err)
	}
}
