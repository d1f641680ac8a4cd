package models

// TokenRequest is the body of the authorization-code exchange POSTed to the
// identity provider token endpoint.
type TokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
	RedirectURI  string `json:"redirect_uri"`
}

// TokenResponse is the token endpoint reply.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// LoginStart is what a login attempt needs to redirect the user agent: the
// anti-CSRF state to remember and the provider authorize URL carrying it.
type LoginStart struct {
	State        string
	AuthorizeURL string
}

// LoginResult is the outcome of a completed login callback.
type LoginResult struct {
	SessionToken string
	Session      Session
}
