package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/dekarrin/ltlsynth/server/result"
	"github.com/dekarrin/ltlsynth/server/token"
)

// LoginRequest is the body of POST /api/v1/login.
type LoginRequest struct {
	APIKey string `json:"api_key"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// HTTPCreateLogin returns a HandlerFunc that exchanges a valid API key for a
// bearer JWT.
func (api API) HTTPCreateLogin() http.HandlerFunc {
	return api.Endpoint(api.epCreateLogin)
}

func (api API) epCreateLogin(req *http.Request) result.Result {
	loginData := LoginRequest{}
	if err := parseJSON(req, &loginData); err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	if loginData.APIKey == "" {
		return result.BadRequest("api_key: property is empty or missing from request", "empty api key")
	}

	if subtle.ConstantTimeCompare([]byte(loginData.APIKey), []byte(api.APIKey)) != 1 {
		return result.Unauthorized("The supplied API key is incorrect", "bad api key presented")
	}

	tok, err := token.Generate(api.Secret)
	if err != nil {
		return result.InternalServerError("could not generate JWT: " + err.Error())
	}

	return result.Created(LoginResponse{Token: tok}, "client successfully logged in")
}
