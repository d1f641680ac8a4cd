// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.KeySealSecret == "" {
		return fmt.Errorf("%w: key seal secret is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.MaxSkillblocks < 1 {
		return fmt.Errorf("%w: max skillblocks must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Auth.Domain == "" || cfg.Auth.ClientID == "" || cfg.Auth.ClientSecret == "" || cfg.Auth.RedirectURL == "" {
		return fmt.Errorf("%w: domain, client id, client secret and redirect url are required", ErrInvalidAuthConfigs)
	}
	switch cfg.Auth.SigningMode {
	case SigningModeRS256:
	case SigningModeHS256:
		if cfg.Auth.SharedSecret == "" {
			return fmt.Errorf("%w: HS256 requires a shared secret", ErrInvalidAuthConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown signing mode %q", ErrInvalidAuthConfigs, cfg.Auth.SigningMode)
	}

	if cfg.Analytics.BaseURL == "" || cfg.Analytics.RequestTimeout <= 0 {
		return ErrInvalidAnalyticsConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

// SecureCookies reports whether cookies carry the Secure attribute.
func (a Auth) SecureCookies() bool {
	return !a.InsecureCookies
}

// ExpectedAudience returns the API audience requested on the authorize
// redirect, falling back to the client id.
func (a Auth) ExpectedAudience() string {
	if a.Audience != "" {
		return a.Audience
	}
	return a.ClientID
}

// Issuer returns the issuer identity tokens must carry: "https://{domain}/".
func (a Auth) Issuer() string {
	return "https://" + a.Domain + "/"
}

// ProviderURL returns the base URL of the provider's token and JWKS
// endpoints.
func (a Auth) ProviderURL() string {
	return "https://" + a.Domain
}
