package http

import (
	"net/http"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/models"
)

const (
	sessionCookieName = "session"
	stateCookieName   = "state"
)

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, s models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(s.ExpiresAt, 0).UTC(),
		HttpOnly: true,
		Secure:   h.auth.SecureCookies(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	h.clearCookie(w, sessionCookieName)
}

// setStateCookie remembers the anti-CSRF state between the authorize
// redirect and the callback. Lax same-site keeps it on the top-level
// redirect back from the provider.
func (h *Handler) setStateCookie(w http.ResponseWriter, state string) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int(h.auth.StateTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.auth.SecureCookies(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearStateCookie(w http.ResponseWriter) {
	h.clearCookie(w, stateCookieName)
}

func (h *Handler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.auth.SecureCookies(),
		SameSite: http.SameSiteLaxMode,
	})
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
