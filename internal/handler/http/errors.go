// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoPrincipal is returned when a protected handler runs without the
	// session middleware having attached a principal to the request.
	ErrNoPrincipal = errors.New("no authenticated principal in request context")

	// ErrMalformedForm is returned when the new skillblock form body cannot
	// be parsed.
	ErrMalformedForm = errors.New("malformed form body")
)
