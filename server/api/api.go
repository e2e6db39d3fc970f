// Package api provides the HTTP API endpoints for the ltlsynth daemon.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dekarrin/ltlsynth/internal/ltlerrors"
	"github.com/dekarrin/ltlsynth/server/jobs"
	"github.com/dekarrin/ltlsynth/server/result"
)

const (
	// PathPrefix is the prefix of all paths in the API. Routers should
	// mount a sub-router that routes all requests to the API at this path.
	PathPrefix = "/api/v1"
)

// API holds parameters for endpoints needed to run and the service layer
// that performs the actual work. To use API, create one and assign the
// result of its HTTP* methods as handlers to a router.
type API struct {
	// Backend is the service that the API calls to submit and look up
	// synthesis jobs.
	Backend *jobs.Service

	// UnauthDelay is the amount of time a request pauses before responding
	// with an HTTP-401 or HTTP-500, to deprioritize such requests.
	UnauthDelay time.Duration

	// Secret is the secret used to sign and validate JWT tokens.
	Secret []byte

	// APIKey is the single credential accepted by the login endpoint.
	APIKey string
}

// parseJSON decodes req's body into v, which must be a pointer. Returns an
// error satisfying errors.Is(err, ltlerrors.ErrBodyUnmarshal) if the body
// itself could not be decoded as JSON.
func parseJSON(req *http.Request, v interface{}) error {
	contentType := req.Header.Get("Content-Type")

	if strings.ToLower(contentType) != "application/json" {
		return fmt.Errorf("request content-type is not application/json")
	}

	bodyData, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("could not read request body: %w", err)
	}
	defer func() {
		req.Body.Close()
		req.Body = io.NopCloser(bytes.NewBuffer(bodyData))
	}()

	err = json.Unmarshal(bodyData, v)
	if err != nil {
		return ltlerrors.New("malformed JSON in request", err, ltlerrors.ErrBodyUnmarshal)
	}

	return nil
}

// EndpointFunc is a handler that returns a Result instead of writing
// directly to an http.ResponseWriter, so common response and logging
// behavior lives in one place (Endpoint).
type EndpointFunc func(req *http.Request) result.Result

// Endpoint wraps an EndpointFunc into a standard http.HandlerFunc: it
// recovers from panics, logs the outcome, applies the unauthorized-response
// delay where applicable, and writes the response.
func (api API) Endpoint(ep EndpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer panicTo500(w, req)
		r := ep(req)

		if r.Status == 0 {
			logHTTPResponse("ERROR", req, http.StatusInternalServerError, "endpoint result was never populated")
			http.Error(w, "An internal server error occurred", http.StatusInternalServerError)
			return
		}

		if err := r.PrepareMarshaledResponse(); err != nil {
			newResp := result.Err(r.Status, "An internal server error occurred", "could not marshal JSON response: "+err.Error())
			newResp.WriteResponse(w)
			return
		}

		if r.IsErr {
			logHTTPResponse("ERROR", req, r.Status, r.InternalMsg)
		} else {
			logHTTPResponse("INFO", req, r.Status, r.InternalMsg)
		}

		if r.Status == http.StatusUnauthorized || r.Status == http.StatusForbidden || r.Status == http.StatusInternalServerError {
			time.Sleep(api.UnauthDelay)
		}

		r.WriteResponse(w)
	}
}

func panicTo500(w http.ResponseWriter, req *http.Request) (panicVal interface{}) {
	if panicErr := recover(); panicErr != nil {
		result.TextErr(
			http.StatusInternalServerError,
			"An internal server error occurred",
			fmt.Sprintf("panic: %v\nSTACK TRACE: %s", panicErr, string(debug.Stack())),
		).WriteResponse(w)
		return true
	}
	return false
}

func logHTTPResponse(level string, req *http.Request, respStatus int, msg string) {
	if len(level) > 5 {
		level = level[0:5]
	}
	for len(level) < 5 {
		level += " "
	}

	remoteAddrParts := strings.SplitN(req.RemoteAddr, ":", 2)
	remoteIP := remoteAddrParts[0]

	log.Printf("%s %s %s %s: HTTP-%d %s", level, remoteIP, req.Method, req.URL.Path, respStatus, msg)
}
