// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the external services the backend depends on:
// the OAuth2/OIDC identity provider and the time-analytics source.
//
// Non-2xx replies are mapped to the sentinel errors in errors.go by
// mapHTTPError, so callers can use [errors.Is] regardless of the service
// (e.g. [ErrUnauthorized] for 401/403, [ErrExternalService] otherwise).
package adapter

import (
	"context"

	"github.com/MarkAnthonyM/BlockPlot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AnalyticsSource fetches per-day time totals from the analytics provider.
type AnalyticsSource interface {
	// FetchDaily returns the rows of query. Several rows may belong to the
	// same day; aggregating them is the caller's job.
	FetchDaily(ctx context.Context, query models.AnalyticsQuery) ([]models.AnalyticsRow, error)
}

// IdentityProvider is the server-to-server side of the authorization-code
// flow.
type IdentityProvider interface {
	// ExchangeCode trades an authorization code for the provider's tokens.
	ExchangeCode(ctx context.Context, code string) (models.TokenResponse, error)
}
