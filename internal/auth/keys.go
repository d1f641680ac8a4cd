package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"
)

// SharedSecret verifies HS256 tokens with a symmetric key.
type SharedSecret struct {
	secret []byte
}

// NewSharedSecret returns a KeyProvider for HS256 tokens signed with secret.
func NewSharedSecret(secret string) *SharedSecret {
	return &SharedSecret{secret: []byte(secret)}
}

func (s *SharedSecret) Algorithms() []string {
	return []string{jwt.SigningMethodHS256.Alg()}
}

func (s *SharedSecret) VerificationKey(context.Context, *jwt.Token) (any, error) {
	return s.secret, nil
}

const (
	jwksPath = "/.well-known/jwks.json"
	// minRefreshInterval throttles refetches triggered by unknown key ids.
	minRefreshInterval = 30 * time.Second
)

// JWKSKeySet verifies RS256 tokens with the provider-hosted key set, cached
// by key id for ttl.
type JWKSKeySet struct {
	client *utils.HTTPClient
	ttl    time.Duration
	now    func() time.Time
	group  singleflight.Group

	mu      sync.RWMutex
	keys    map[string]*rsa.PublicKey
	fetched time.Time
}

// NewJWKSKeySet returns a key set fetched from client's base URL at
// /.well-known/jwks.json.
func NewJWKSKeySet(client *utils.HTTPClient, ttl time.Duration) *JWKSKeySet {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &JWKSKeySet{
		client: client,
		ttl:    ttl,
		now:    time.Now,
		keys:   make(map[string]*rsa.PublicKey),
	}
}

func (k *JWKSKeySet) Algorithms() []string {
	return []string{jwt.SigningMethodRS256.Alg()}
}

func (k *JWKSKeySet) VerificationKey(ctx context.Context, token *jwt.Token) (any, error) {
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, errors.New("token header has no kid")
	}
	return k.Key(ctx, kid)
}

// Key returns the public key with id kid, refreshing the set when it is
// stale or does not know kid. A stale key is served if the refresh fails.
func (k *JWKSKeySet) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	k.mu.RLock()
	key, ok := k.keys[kid]
	fetched := k.fetched
	k.mu.RUnlock()
	age := k.now().Sub(fetched)

	if ok && age < k.ttl {
		return key, nil
	}
	if !ok && !fetched.IsZero() && age < minRefreshInterval {
		return nil, fmt.Errorf("%w: unknown kid %q", ErrKeyFetchFailed, kid)
	}

	keys, err := k.refresh(ctx)
	if err != nil {
		if ok {
			return key, nil
		}
		return nil, err
	}

	key, ok = keys[kid]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kid %q", ErrKeyFetchFailed, kid)
	}
	return key, nil
}

type jsonWebKeySet struct {
	Keys []struct {
		Kty string `json:"kty"`
		Kid string `json:"kid"`
		Use string `json:"use"`
		N   string `json:"n"`
		E   string `json:"e"`
	} `json:"keys"`
}

// refresh refetches the key set. Concurrent callers share one request, and
// a set fetched less than minRefreshInterval ago is returned as is.
func (k *JWKSKeySet) refresh(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	v, err, _ := k.group.Do(jwksPath, func() (any, error) {
		k.mu.RLock()
		keys, fetched := k.keys, k.fetched
		k.mu.RUnlock()
		if !fetched.IsZero() && k.now().Sub(fetched) < minRefreshInterval {
			return keys, nil
		}
		return k.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]*rsa.PublicKey), nil
}

func (k *JWKSKeySet) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	var set jsonWebKeySet
	resp, err := k.client.R().
		SetContext(ctx).
		SetResult(&set).
		Get(jwksPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyFetchFailed, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: jwks endpoint returned %d", ErrKeyFetchFailed, resp.StatusCode())
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, jwk := range set.Keys {
		if jwk.Kty != "RSA" || (jwk.Use != "" && jwk.Use != "sig") {
			continue
		}
		pub, err := rsaPublicKey(jwk.N, jwk.E)
		if err != nil {
			continue
		}
		keys[jwk.Kid] = pub
	}

	k.mu.Lock()
	k.keys = keys
	k.fetched = k.now()
	k.mu.Unlock()
	return keys, nil
}

func rsaPublicKey(n, e string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, err
	}

	exp := 0
	for _, b := range eBytes {
		exp = exp<<8 | int(b)
	}
	if exp == 0 {
		return nil, errors.New("zero exponent")
	}

	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: exp}, nil
}
