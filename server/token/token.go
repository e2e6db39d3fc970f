// Package token issues and validates the bearer JWTs that protect the job
// API, mirroring the teacher's server/token.go generate/validate pair but
// signed against a single configured secret instead of a per-user signing
// key, since the daemon has one fixed API client rather than a user table.
package token

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dekarrin/ltlsynth/internal/ltlerrors"
)

// issuer is the constant "iss" claim on every token this package issues.
const issuer = "ltlsynthd"

// subject is the constant "sub" claim; there is exactly one principal, the
// holder of the configured API key.
const subject = "api-client"

// Generate returns a signed, short-lived JWT for the configured secret.
func Generate(secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"iss": issuer,
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	tokStr, err := tok.SignedString(secret)
	if err != nil {
		return "", ltlerrors.New("sign token", err)
	}
	return tokStr, nil
}

// Validate checks that tok is a well-formed, unexpired JWT signed with
// secret and issued by this package.
func Validate(tok string, secret []byte) error {
	_, err := jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithIssuer(issuer), jwt.WithLeeway(time.Minute))

	if err != nil {
		return ltlerrors.New("validate token", err, ltlerrors.ErrBadCredentials)
	}
	return nil
}

// FromRequest extracts the bearer token from req's Authorization header.
func FromRequest(req *http.Request) (string, error) {
	authHeader := strings.TrimSpace(req.Header.Get("Authorization"))
	if authHeader == "" {
		return "", ltlerrors.New("no authorization header present", ltlerrors.ErrBadCredentials)
	}

	authParts := strings.SplitN(authHeader, " ", 2)
	if len(authParts) != 2 {
		return "", ltlerrors.New("authorization header not in Bearer format", ltlerrors.ErrBadCredentials)
	}

	scheme := strings.TrimSpace(strings.ToLower(authParts[0]))
	tok := strings.TrimSpace(authParts[1])
	if scheme != "bearer" {
		return "", ltlerrors.New(fmt.Sprintf("authorization scheme %q is not Bearer", authParts[0]), ltlerrors.ErrBadCredentials)
	}

	return tok, nil
}
