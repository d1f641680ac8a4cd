package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/config"
	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/utils"
	"github.com/MarkAnthonyM/BlockPlot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIdentityProvider(serverURL string) IdentityProvider {
	cfg := config.Auth{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8000/process",
	}
	return NewIdentityProvider(utils.NewHTTPClient(serverURL, 5*time.Second), cfg, logger.Nop())
}

func TestExchangeCode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth/token", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.TokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.TokenRequest{
			GrantType:    "authorization_code",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			Code:         "the-code",
			RedirectURI:  "http://localhost:8000/process",
		}, req)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","id_token":"it","token_type":"Bearer","expires_in":86400}`))
	}))
	defer srv.Close()

	got, err := newTestIdentityProvider(srv.URL).ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, models.TokenResponse{AccessToken: "at", IDToken: "it", TokenType: "Bearer", ExpiresIn: 86400}, got)
}

func TestExchangeCode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "invalid grant", status: http.StatusForbidden, body: `{"error":"invalid_grant"}`, wantErr: ErrUnauthorized},
		{name: "provider down", status: http.StatusServiceUnavailable, body: "", wantErr: ErrExternalService},
		{name: "no id token", status: http.StatusOK, body: `{"access_token":"at"}`, wantErr: ErrMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestIdentityProvider(srv.URL).ExchangeCode(context.Background(), "code")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExchangeCode_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestIdentityProvider(url).ExchangeCode(context.Background(), "code")
	assert.ErrorIs(t, err, ErrExternalService)
}
