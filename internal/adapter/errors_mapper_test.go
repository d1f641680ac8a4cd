package adapter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getWithBody(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError_Success(t *testing.T) {
	assert.NoError(t, mapHTTPError(getWithBody(t, http.StatusOK, "ok")))
}

func TestMapHTTPError_TruncatesOnRuneBoundary(t *testing.T) {
	body := strings.Repeat("a", maxErrorBody-1) + strings.Repeat("é", 10)
	err := mapHTTPError(getWithBody(t, http.StatusBadGateway, body))

	require.ErrorIs(t, err, ErrExternalService)
	assert.True(t, utf8.ValidString(err.Error()))
	assert.True(t, strings.HasSuffix(err.Error(), strings.Repeat("a", maxErrorBody-1)))
}

func TestMapHTTPError_EmptyBodyUsesStatusText(t *testing.T) {
	err := mapHTTPError(getWithBody(t, http.StatusForbidden, "  "))

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), http.StatusText(http.StatusForbidden))
}
