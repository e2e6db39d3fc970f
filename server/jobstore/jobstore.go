// Package jobstore defines the persistence interface for synthesis jobs
// submitted to the daemon, playing the role that server/dao plays for the
// teacher's game/user data: a Store interface with interchangeable sqlite
// and in-memory implementations (see server/jobstore/sqlite and
// server/jobstore/inmem).
package jobstore

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a Job.
type Status string

const (
	Pending Status = "pending"
	Running Status = "running"
	Done    Status = "done"
	Failed  Status = "failed"
)

// Job is a single synthesis request: the raw TOML sample it was submitted
// with, the solve options to run it with, and (once the worker pool has
// picked it up) its outcome.
type Job struct {
	ID uuid.UUID

	Status Status

	// Sample is the raw TOML sample-file body the job was submitted with.
	// It is kept rather than the parsed *ltl.Sample so a Job round-trips
	// through storage without depending on the ltl package's types.
	Sample []byte

	MaxSize     int
	Multithread bool

	// Formula is the rendered result, set once Status is Done.
	Formula string

	// FailReason is a human-readable explanation, set once Status is Failed.
	FailReason string

	Created  time.Time
	Modified time.Time
}

// Store holds persisted Jobs and lets the worker pool claim pending work.
type Store interface {
	// Create inserts a new job in Pending status and returns it with its
	// generated ID and timestamps filled in.
	Create(ctx context.Context, job Job) (Job, error)

	// GetByID retrieves a job by ID. Returns an error satisfying
	// errors.Is(err, ltlerrors.ErrNotFound) if no such job exists.
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)

	// ClaimNext atomically transitions the oldest Pending job to Running and
	// returns it. The second return value is false if there is no pending
	// work.
	ClaimNext(ctx context.Context) (Job, bool, error)

	// Update overwrites the stored job with the given value, matched by ID.
	Update(ctx context.Context, job Job) error

	Close() error
}
