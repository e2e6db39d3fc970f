// Package inmem is an in-memory jobstore.Store, for running the daemon
// without a durable backing store (e.g. local experimentation), mirroring
// the teacher's server/dao/inmem package's mutex-guarded-map approach.
package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dekarrin/ltlsynth/internal/ltlerrors"
	"github.com/dekarrin/ltlsynth/server/jobstore"
)

func New() *Store {
	return &Store{
		jobs: make(map[uuid.UUID]jobstore.Job),
	}
}

type Store struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]jobstore.Job
}

func (s *Store) Create(ctx context.Context, job jobstore.Job) (jobstore.Job, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return jobstore.Job{}, ltlerrors.New("generate job ID", err)
	}

	now := time.Now()
	job.ID = id
	job.Status = jobstore.Pending
	job.Created = now
	job.Modified = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[id] = job

	return job, nil
}

func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (jobstore.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return jobstore.Job{}, ltlerrors.New("", ltlerrors.ErrNotFound)
	}
	return job, nil
}

// ClaimNext returns the oldest Pending job, in submission order, and marks
// it Running before returning.
func (s *Store) ClaimNext(ctx context.Context) (jobstore.Job, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var oldest *jobstore.Job
	for id := range s.jobs {
		j := s.jobs[id]
		if j.Status != jobstore.Pending {
			continue
		}
		if oldest == nil || j.Created.Before(oldest.Created) {
			jCopy := j
			oldest = &jCopy
		}
	}
	if oldest == nil {
		return jobstore.Job{}, false, nil
	}

	oldest.Status = jobstore.Running
	oldest.Modified = time.Now()
	s.jobs[oldest.ID] = *oldest

	return *oldest, true, nil
}

func (s *Store) Update(ctx context.Context, job jobstore.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[job.ID]; !ok {
		return ltlerrors.New("", ltlerrors.ErrNotFound)
	}
	job.Modified = time.Now()
	s.jobs[job.ID] = job
	return nil
}

func (s *Store) Close() error { return nil }
