package api

import (
	"net/http"

	"github.com/dekarrin/ltlsynth/internal/version"
	"github.com/dekarrin/ltlsynth/server/result"
)

// InfoModel is the response body of GET /api/v1/info.
type InfoModel struct {
	Version string `json:"version"`
}

// HTTPGetInfo returns a HandlerFunc that reports the daemon's version.
func (api API) HTTPGetInfo() http.HandlerFunc {
	return api.Endpoint(api.epGetInfo)
}

func (api API) epGetInfo(req *http.Request) result.Result {
	resp := InfoModel{Version: version.Current}
	return result.OK(resp, "client got API info")
}
