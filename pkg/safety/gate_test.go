package safety

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsSafe_AllowsCleanURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"safe": true}`))
	}))
	defer srv.Close()

	gate := NewGate(srv.URL, "", time.Second)

	assert.True(t, gate.IsSafe(context.Background(), "https://example.com"))
}

func TestIsSafe_BlocksFlaggedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"safe": false}`))
	}))
	defer srv.Close()

	gate := NewGate(srv.URL, "", time.Second)

	assert.False(t, gate.IsSafe(context.Background(), "https://malware.test"))
}

func TestIsSafe_FailsOpenOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gate := NewGate(srv.URL, "", time.Second)

	assert.True(t, gate.IsSafe(context.Background(), "https://example.com"))
}

func TestIsSafe_FailsOpenWhenUnreachable(t *testing.T) {
	gate := NewGate("http://127.0.0.1:1", "", 200*time.Millisecond)

	assert.True(t, gate.IsSafe(context.Background(), "https://example.com"))
}

func TestIsSafe_DisabledWithoutEndpoint(t *testing.T) {
	gate := NewGate("", "", time.Second)

	assert.True(t, gate.IsSafe(context.Background(), "https://example.com"))
}
