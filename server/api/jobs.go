package api

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dekarrin/ltlsynth/internal/ltlerrors"
	"github.com/dekarrin/ltlsynth/server/jobstore"
	"github.com/dekarrin/ltlsynth/server/result"
)

// CreateJobRequest is the body of POST /api/v1/jobs: a base64-encoded TOML
// sample file plus the solve options to run it with.
type CreateJobRequest struct {
	Sample      string `json:"sample"`
	MaxSize     int    `json:"max_size,omitempty"`
	Multithread bool   `json:"multithread,omitempty"`
}

// JobModel is the JSON representation of a jobstore.Job returned to clients.
type JobModel struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Formula    string `json:"formula,omitempty"`
	FailReason string `json:"fail_reason,omitempty"`
}

func toJobModel(job jobstore.Job) JobModel {
	return JobModel{
		ID:         job.ID.String(),
		Status:     string(job.Status),
		Formula:    job.Formula,
		FailReason: job.FailReason,
	}
}

// HTTPCreateJob returns a HandlerFunc that submits a new synthesis job.
func (api API) HTTPCreateJob() http.HandlerFunc {
	return api.Endpoint(api.epCreateJob)
}

func (api API) epCreateJob(req *http.Request) result.Result {
	var reqData CreateJobRequest
	if err := parseJSON(req, &reqData); err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	if reqData.Sample == "" {
		return result.BadRequest("sample: property is empty or missing from request", "empty sample")
	}

	raw, err := base64.StdEncoding.DecodeString(reqData.Sample)
	if err != nil {
		return result.BadRequest("sample: must be base64-encoded TOML", err.Error())
	}

	job, err := api.Backend.Submit(req.Context(), raw, reqData.MaxSize, reqData.Multithread)
	if err != nil {
		return result.BadRequest(err.Error(), "submit job: "+err.Error())
	}

	return result.Response(http.StatusAccepted, toJobModel(job), "job %s submitted", job.ID)
}

// HTTPGetJob returns a HandlerFunc that reports a submitted job's status.
func (api API) HTTPGetJob() http.HandlerFunc {
	return api.Endpoint(api.epGetJob)
}

func (api API) epGetJob(req *http.Request) result.Result {
	idStr := chi.URLParam(req, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		return result.BadRequest("id: not a valid job ID", err.Error())
	}

	job, err := api.Backend.Get(req.Context(), id)
	if err != nil {
		if errors.Is(err, ltlerrors.ErrNotFound) {
			return result.NotFound("job %s not found", idStr)
		}
		return result.InternalServerError(err.Error())
	}

	return result.OK(toJobModel(job), "job %s status retrieved", idStr)
}
