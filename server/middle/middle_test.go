package middle

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/ltlsynth/server/token"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func Test_RequireAuth_rejectsMissingToken(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	mw := RequireAuth(testSecret, 0)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_RequireAuth_acceptsValidToken(t *testing.T) {
	tok, err := token.Generate(testSecret)
	require.NoError(t, err)

	var loggedIn bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loggedIn, _ = r.Context().Value(AuthLoggedIn).(bool)
		w.WriteHeader(http.StatusOK)
	})
	mw := RequireAuth(testSecret, 0)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)

	assert.True(t, loggedIn)
	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_DontPanic_convertsPanicToHTTP500(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	mw := DontPanic()(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func Test_RequireAuth_appliesUnauthedDelay(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	mw := RequireAuth(testSecret, 10*time.Millisecond)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	start := time.Now()
	mw.ServeHTTP(w, req)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}
