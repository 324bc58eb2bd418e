package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/notas-cli/internal/client/config"
	"github.com/dcastano/notas-cli/internal/client/models"
)

// Uses the real wiring NewApp assembles (transport, sqlite session store,
// 401 hook): a mid-session 401 must drop both the persisted session and the
// in-memory identity, so the prompt falls back to guest.
func TestApp_UnauthorizedResponseForcesGuest(t *testing.T) {
	stubInput(t)
	ctx := context.Background()

	r := chi.NewRouter()
	r.Get("/notas", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"token expirado"}`))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	app, err := NewApp(ctx, &config.Config{
		APIBaseURL:     srv.URL,
		RequestTimeout: time.Second,
		DatabaseDSN:    "file:cli_unauthorized?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	app.user = &models.User{ID: "u1", Name: "Ana"}
	require.Equal(t, "(Ana)", app.getStatus())

	require.Error(t, app.List(ctx))

	assert.False(t, app.isLoggedIn(), "a 401 must drop the in-memory identity")
	assert.Equal(t, "(guest)", app.getStatus())
	assert.False(t, app.session.IsAuthenticated(ctx), "persisted session must be gone too")
	assert.Nil(t, app.session.CurrentUser(ctx))
}
