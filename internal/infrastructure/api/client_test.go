package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go-medical-console/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(config.APIConfig{BaseURL: srv.URL + "/", Timeout: time.Second}, log)
}

func TestBearerTokenSkippedForLoginAndRegister(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]string{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen[r.URL.Path] = r.Header.Get("Authorization")
		mu.Unlock()
		w.Write([]byte(`{"data":[]}`))
	})

	ctx := WithToken(context.Background(), "tok-123")
	for _, path := range []string{"/patients", "/login", "/register", "/rendez-vous/mes-rendez-vous"} {
		_, err := c.Get(ctx, path)
		require.NoError(t, err)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "Bearer tok-123", seen["/patients"])
	assert.Equal(t, "Bearer tok-123", seen["/rendez-vous/mes-rendez-vous"])
	assert.Empty(t, seen["/login"])
	assert.Empty(t, seen["/register"])
}

func TestNon2xxBecomesHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Données invalides","errors":{"email":["L'email est déjà utilisé"]}}`))
	})

	_, err := c.Post(context.Background(), "/secretaires", map[string]string{"email": "a@b.fr"})
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
	assert.Equal(t, "Données invalides", httpErr.Message)
	assert.Equal(t, "L'email est déjà utilisé", httpErr.Fields["email"])
	assert.Equal(t, http.StatusUnprocessableEntity, StatusOf(err))
}

func TestPayloadIsSentAsJSON(t *testing.T) {
	var mu sync.Mutex
	var contentType, body string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		mu.Lock()
		contentType = r.Header.Get("Content-Type")
		body = string(raw)
		mu.Unlock()
		w.Write([]byte(`{"success":true}`))
	})

	_, err := c.Patch(context.Background(), "/rendez-vous/4/statut", map[string]string{"statut": "confirme"})
	require.NoError(t, err)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "application/json", contentType)
	assert.JSONEq(t, `{"statut":"confirme"}`, body)
}

func TestCancelledContextIsUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, "/departements")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 0, StatusOf(err))
}
