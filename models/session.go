package models

// Session is the server-side record behind a session cookie: a snapshot of
// the user's identity taken at login.
type Session struct {
	UserID      int64  `json:"user_id"`
	AuthSubject string `json:"-"`

	// ExpiresAt is the expiry of the identity token the session was derived
	// from, in epoch seconds.
	ExpiresAt int64 `json:"expires"`

	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	Nickname   string `json:"nickname"`
	Picture    string `json:"picture"`
	BlockCount int    `json:"block_count"`
	KeyPresent bool   `json:"key_present"`
}

// IsExpired reports whether the session is no longer valid at unix time now.
func (s Session) IsExpired(now int64) bool {
	return now >= s.ExpiresAt
}

// Principal is the authenticated caller attached to a request context once
// the session cookie has been resolved to a live session and its user.
type Principal struct {
	Token   string
	Session Session
	User    User
}
