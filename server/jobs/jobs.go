// Package jobs is the service layer between the HTTP API and the synthesis
// engine: it accepts submitted samples, hands them to a fixed-size worker
// pool, and records results in a jobstore.Store. It plays the role the
// teacher's server/tunas.Service plays for game/user operations, but here
// there is exactly one operation worth asynchronous dispatch: searching for
// a formula.
package jobs

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dekarrin/ltlsynth/internal/ltlerrors"
	"github.com/dekarrin/ltlsynth/internal/render"
	"github.com/dekarrin/ltlsynth/internal/sampleio"
	"github.com/dekarrin/ltlsynth/ltl"
	"github.com/dekarrin/ltlsynth/server/jobstore"
)

// Service submits samples for asynchronous synthesis and reports on their
// progress.
type Service struct {
	store   jobstore.Store
	workers int

	wg       sync.WaitGroup
	stopOnce sync.Once
	stop     chan struct{}
}

// New starts a Service with the given number of worker goroutines pulling
// from store. Workers keep running until Stop is called.
func New(store jobstore.Store, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	s := &Service{
		store:   store,
		workers: workers,
		stop:    make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		s.wg.Add(1)
		go s.work()
	}
	return s
}

// Stop signals all worker goroutines to exit and waits for them to drain.
func (s *Service) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	s.wg.Wait()
}

// Submit records a new job from a raw TOML sample body and solve options,
// returning immediately with the job's ID; the worker pool processes it
// asynchronously.
func (s *Service) Submit(ctx context.Context, sample []byte, maxSize int, multithread bool) (jobstore.Job, error) {
	if _, _, err := sampleio.Parse(sample); err != nil {
		return jobstore.Job{}, err
	}

	return s.store.Create(ctx, jobstore.Job{
		Sample:      sample,
		MaxSize:     maxSize,
		Multithread: multithread,
	})
}

// Get retrieves a job's current status and (if done) result.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (jobstore.Job, error) {
	return s.store.GetByID(ctx, id)
}

// work is the body of one worker goroutine: repeatedly claim the oldest
// pending job and run it to completion.
func (s *Service) work() {
	defer s.wg.Done()

	for {
		select {
		case <-s.stop:
			return
		default:
		}

		job, ok, err := s.store.ClaimNext(context.Background())
		if err != nil {
			log.Printf("ERROR: claim next job: %s", err.Error())
			continue
		}
		if !ok {
			select {
			case <-s.stop:
				return
			case <-time.After(50 * time.Millisecond):
			}
			continue
		}

		s.run(job)
	}
}

func (s *Service) run(job jobstore.Job) {
	sample, vocab, err := sampleio.Parse(job.Sample)
	if err != nil {
		job.Status = jobstore.Failed
		job.FailReason = ltlerrors.New("parsing sample", err).Error()
		s.save(job)
		return
	}

	opts := ltl.SolveOptions{
		Parallel: job.Multithread,
		MaxSize:  job.MaxSize,
		Logger: func(event string, size int) {
			log.Printf("job %s: %s size=%d", job.ID, event, size)
		},
	}

	phi, found := ltl.Solve(sample, opts)
	if !found {
		job.Status = jobstore.Failed
		job.FailReason = ltlerrors.ErrNoFormulaFound.Error()
		s.save(job)
		return
	}

	job.Status = jobstore.Done
	job.Formula = render.Formula(phi, vocab)
	s.save(job)
}

func (s *Service) save(job jobstore.Job) {
	if err := s.store.Update(context.Background(), job); err != nil {
		log.Printf("ERROR: save job %s result: %s", job.ID, err.Error())
	}
}
