package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/config"
	"github.com/MarkAnthonyM/BlockPlot/internal/handler"
	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name           string
		requestTimeout time.Duration
		wantWrite      time.Duration
	}{
		{name: "request timeout extends write deadline", requestTimeout: time.Minute, wantWrite: time.Minute + readHeaderTimeout},
		{name: "no request timeout leaves write deadline unset", requestTimeout: 0, wantWrite: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newHTTPServer(h, config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: tt.requestTimeout}, logger.Nop())

			assert.Equal(t, "127.0.0.1:0", s.server.Addr)
			assert.Equal(t, readHeaderTimeout, s.server.ReadHeaderTimeout)
			assert.Equal(t, tt.wantWrite, s.server.WriteTimeout)
		})
	}
}

func TestServer_ReturnsErrorWhenAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	s := &server{
		httpServer: newHTTPServer(h, config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop()),
		logger:     logger.Nop(),
	}

	done := make(chan error, 1)
	go func() { done <- s.serve(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errServeFailed)
	case <-time.After(5 * time.Second):
		s.Shutdown()
		t.Fatal("serve kept waiting after the listener failed")
	}
}

func TestServer_StopsCleanlyOnCancel(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	s := &server{
		httpServer: newHTTPServer(h, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestHTTPServer_ShutdownBeforeServeIsClean(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	s := newHTTPServer(h, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	// handler is reachable through the configured server
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	s.Shutdown()

	done := make(chan struct{})
	go func() {
		assert.NoError(t, s.RunServer())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunServer did not return on a closed server")
	}
}
