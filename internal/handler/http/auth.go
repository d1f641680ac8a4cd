package http

import (
	"net/http"

	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/utils"
)

// startLogin remembers a fresh state in a short-lived cookie and redirects
// the user agent to the provider authorize endpoint.
func (h *Handler) startLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	start, err := h.services.AuthService.StartLogin(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.startLogin").Msg("error starting login")
		writeError(w, err)
		return
	}

	h.setStateCookie(w, start.State)
	http.Redirect(w, r, start.AuthorizeURL, http.StatusFound)
}

// processLogin is the provider callback. The state cookie is single use and
// cleared whatever the outcome.
func (h *Handler) processLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := r.URL.Query()
	cookieState := cookieValue(r, stateCookieName)
	h.clearStateCookie(w)

	result, err := h.services.AuthService.CompleteLogin(r.Context(), query.Get("code"), query.Get("state"), cookieState)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.processLogin").Int("status", status).Msg("login failed")

		if status == http.StatusUnauthorized && h.auth.UnauthorizedURL != "" {
			http.Redirect(w, r, h.auth.UnauthorizedURL, http.StatusFound)
			return
		}
		writeError(w, err)
		return
	}

	h.setSessionCookie(w, result.SessionToken, result.Session)
	log.Info().Str("func", "*Handler.processLogin").Int64("user_id", result.Session.UserID).Msg("user logged in")

	http.Redirect(w, r, h.auth.PostLoginURL, http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token := cookieValue(r, sessionCookieName)

	redirectTo := h.services.AuthService.Logout(r.Context(), token)
	h.clearSessionCookie(w)

	http.Redirect(w, r, redirectTo, http.StatusFound)
}

// home returns the session snapshot of the caller.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, ErrNoPrincipal)
		return
	}

	if _, err := utils.WriteJSON(w, principal.Session, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.home").Msg("error writing response")
	}
}
