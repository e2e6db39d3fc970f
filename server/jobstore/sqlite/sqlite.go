// Package sqlite is a durable jobstore.Store backed by a pure-Go sqlite
// driver, mirroring the connection setup and error-wrapping conventions of
// the teacher's server/dao/sqlite package.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"

	"github.com/dekarrin/ltlsynth/internal/ltlerrors"
	"github.com/dekarrin/ltlsynth/server/jobstore"
)

type Store struct {
	db *sql.DB
}

// New opens (creating if necessary) the sqlite database at file and ensures
// the jobs table exists.
func New(file string) (*Store, error) {
	db, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, wrapDBError(err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	const stmt = `CREATE TABLE IF NOT EXISTS jobs (
		id TEXT NOT NULL PRIMARY KEY,
		status TEXT NOT NULL,
		sample BLOB NOT NULL,
		max_size INTEGER NOT NULL,
		multithread INTEGER NOT NULL,
		formula TEXT NOT NULL,
		fail_reason TEXT NOT NULL,
		created INTEGER NOT NULL,
		modified INTEGER NOT NULL
	);`
	_, err := s.db.Exec(stmt)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
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

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO jobs (id, status, sample, max_size, multithread, formula, fail_reason, created, modified)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID.String(), string(job.Status), job.Sample, job.MaxSize, boolToInt(job.Multithread),
		job.Formula, job.FailReason, job.Created.Unix(), job.Modified.Unix(),
	)
	if err != nil {
		return jobstore.Job{}, wrapDBError(err)
	}

	return job, nil
}

func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (jobstore.Job, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT status, sample, max_size, multithread, formula, fail_reason, created, modified
		 FROM jobs WHERE id = ?`, id.String())

	job := jobstore.Job{ID: id}
	if err := scanJob(row.Scan, &job); err != nil {
		return jobstore.Job{}, err
	}
	return job, nil
}

// ClaimNext picks the oldest job still Pending and transitions it to
// Running in a single transaction, so concurrent workers never claim the
// same job twice.
func (s *Store) ClaimNext(ctx context.Context) (jobstore.Job, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return jobstore.Job{}, false, wrapDBError(err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT id, sample, max_size, multithread, formula, fail_reason, created, modified
		 FROM jobs WHERE status = ? ORDER BY created ASC LIMIT 1`, string(jobstore.Pending))

	var job jobstore.Job
	var idStr string
	var sampleBytes []byte
	var multithread int
	var created, modified int64
	err = row.Scan(&idStr, &sampleBytes, &job.MaxSize, &multithread, &job.Formula, &job.FailReason, &created, &modified)
	if errors.Is(err, sql.ErrNoRows) {
		return jobstore.Job{}, false, nil
	}
	if err != nil {
		return jobstore.Job{}, false, wrapDBError(err)
	}

	job.ID, err = uuid.Parse(idStr)
	if err != nil {
		return jobstore.Job{}, false, ltlerrors.New("stored job ID is invalid", err)
	}
	job.Sample = sampleBytes
	job.Multithread = multithread != 0
	job.Created = time.Unix(created, 0)
	job.Modified = time.Now()
	job.Status = jobstore.Running

	_, err = tx.ExecContext(ctx, `UPDATE jobs SET status = ?, modified = ? WHERE id = ?`,
		string(jobstore.Running), job.Modified.Unix(), idStr)
	if err != nil {
		return jobstore.Job{}, false, wrapDBError(err)
	}

	if err := tx.Commit(); err != nil {
		return jobstore.Job{}, false, wrapDBError(err)
	}

	return job, true, nil
}

func (s *Store) Update(ctx context.Context, job jobstore.Job) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET status=?, sample=?, max_size=?, multithread=?, formula=?, fail_reason=?, modified=? WHERE id=?`,
		string(job.Status), job.Sample, job.MaxSize, boolToInt(job.Multithread),
		job.Formula, job.FailReason, time.Now().Unix(), job.ID.String(),
	)
	if err != nil {
		return wrapDBError(err)
	}
	rowsAff, err := res.RowsAffected()
	if err != nil {
		return wrapDBError(err)
	}
	if rowsAff < 1 {
		return ltlerrors.New("", ltlerrors.ErrNotFound)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func scanJob(scan func(dest ...any) error, job *jobstore.Job) error {
	var status string
	var sampleBytes []byte
	var multithread int
	var created, modified int64

	err := scan(&status, &sampleBytes, &job.MaxSize, &multithread, &job.Formula, &job.FailReason, &created, &modified)
	if errors.Is(err, sql.ErrNoRows) {
		return ltlerrors.New("", ltlerrors.ErrNotFound)
	}
	if err != nil {
		return wrapDBError(err)
	}

	job.Status = jobstore.Status(status)
	job.Sample = sampleBytes
	job.Multithread = multithread != 0
	job.Created = time.Unix(created, 0)
	job.Modified = time.Unix(modified, 0)
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func wrapDBError(err error) error {
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == 19 {
			return ltlerrors.New("", ltlerrors.ErrAlreadyExists)
		}
		return ltlerrors.New(sqlite.ErrorCodeString[sqliteErr.Code()], ltlerrors.ErrDB)
	} else if errors.Is(err, sql.ErrNoRows) {
		return ltlerrors.New("", ltlerrors.ErrNotFound)
	}
	return ltlerrors.New(err.Error(), ltlerrors.ErrDB)
}
