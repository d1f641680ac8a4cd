// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/service"
	"github.com/MarkAnthonyM/BlockPlot/internal/utils"
)

// withSession resolves the session cookie to a principal and attaches it to
// the request context with [utils.WithPrincipal]. Requests without a live
// session are rejected with 401 and a JSON error body; a stale cookie is
// cleared on the way out.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		token := cookieValue(r, sessionCookieName)

		principal, err := h.services.AuthService.ResolveSession(r.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				if token != "" {
					h.clearSessionCookie(w)
				}
				log.Debug().Err(err).Str("func", "*Handler.withSession").Msg("request without a live session")
				utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
				return
			}
			log.Err(err).Str("func", "*Handler.withSession").Msg("error resolving session")
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(r.Context(), principal)))
	})
}
