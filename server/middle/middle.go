// Package middle contains middleware for use with the ltlsynth daemon.
package middle

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/dekarrin/ltlsynth/server/result"
	"github.com/dekarrin/ltlsynth/server/token"
)

type mwFunc http.HandlerFunc

func (sf mwFunc) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	sf(w, req)
}

// Middleware is a function that takes a handler and returns a new handler
// which wraps the given one and provides some additional functionality.
type Middleware func(next http.Handler) http.Handler

// AuthKey is a key in the context of a request populated by RequireAuth.
type AuthKey int64

const (
	// AuthLoggedIn reports whether the request carried a valid bearer token.
	AuthLoggedIn AuthKey = iota
)

// authHandler validates the bearer token on every request and rejects ones
// that lack a valid one, mirroring the teacher's AuthHandler but against a
// single configured secret rather than a per-user signing key looked up
// from a database.
type authHandler struct {
	secret        []byte
	unauthedDelay time.Duration
	next          http.Handler
}

func (ah *authHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	tok, err := token.FromRequest(req)
	if err == nil {
		err = token.Validate(tok, ah.secret)
	}
	if err != nil {
		r := result.Unauthorized("", err.Error())
		time.Sleep(ah.unauthedDelay)
		r.WriteResponse(w)
		return
	}

	ctx := context.WithValue(req.Context(), AuthLoggedIn, true)
	ah.next.ServeHTTP(w, req.WithContext(ctx))
}

// RequireAuth returns middleware that rejects any request without a valid
// bearer token signed with secret.
func RequireAuth(secret []byte, unauthDelay time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return &authHandler{secret: secret, unauthedDelay: unauthDelay, next: next}
	}
}

// DontPanic returns a Middleware that performs a panic check as it exits. If
// the function is panicking, it will write out an HTTP response with a
// generic message to the client and add it to the log.
func DontPanic() Middleware {
	return func(next http.Handler) http.Handler {
		return mwFunc(func(w http.ResponseWriter, r *http.Request) {
			defer panicTo500(w, r)
			next.ServeHTTP(w, r)
		})
	}
}

func panicTo500(w http.ResponseWriter, req *http.Request) (panicVal interface{}) {
	if panicErr := recover(); panicErr != nil {
		r := result.TextErr(
			http.StatusInternalServerError,
			"An internal server error occurred",
			fmt.Sprintf("panic: %v\nSTACK TRACE: %s", panicErr, string(debug.Stack())),
		)
		r.WriteResponse(w)
		return true
	}
	return false
}
