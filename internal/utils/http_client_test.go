package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a.local", 0)
	client2 := NewHTTPClient("http://a.local", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_BaseURLAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ping" {
			t.Errorf("expected path /ping, got %s", r.URL.Path)
		}
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("expected user agent %q, got %q", userAgent, got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL+"/", time.Second)
	resp, err := client.R().Get("/ping")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode())
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("http://a.local", 3*time.Second)
	if client.GetClient().Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", client.GetClient().Timeout)
	}
}
