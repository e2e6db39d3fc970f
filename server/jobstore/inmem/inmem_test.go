package inmem

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/ltlsynth/internal/ltlerrors"
	"github.com/dekarrin/ltlsynth/server/jobstore"
)

func Test_CreateGetByID_roundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	job, err := s.Create(ctx, jobstore.Job{Sample: []byte("sample"), MaxSize: 4})
	require.NoError(t, err)
	assert.Equal(t, jobstore.Pending, job.Status)
	assert.NotEqual(t, job.ID.String(), "")

	got, err := s.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job, got)
}

func Test_GetByID_missingIsNotFound(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.GetByID(ctx, mustRandomID(t))
	assert.ErrorIs(t, err, ltlerrors.ErrNotFound)
}

func Test_ClaimNext_returnsOldestPendingFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.Create(ctx, jobstore.Job{Sample: []byte("a")})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = s.Create(ctx, jobstore.Job{Sample: []byte("b")})
	require.NoError(t, err)

	claimed, ok, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, jobstore.Running, claimed.Status)

	stored, err := s.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, jobstore.Running, stored.Status)
}

func Test_ClaimNext_emptyWhenNothingPending(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, ok, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_Update_setsStatusAndResult(t *testing.T) {
	s := New()
	ctx := context.Background()

	job, err := s.Create(ctx, jobstore.Job{Sample: []byte("a")})
	require.NoError(t, err)

	job.Status = jobstore.Done
	job.Formula = "G(p0)"
	require.NoError(t, s.Update(ctx, job))

	got, err := s.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, jobstore.Done, got.Status)
	assert.Equal(t, "G(p0)", got.Formula)
}

func Test_Update_missingIsNotFound(t *testing.T) {
	s := New()
	err := s.Update(context.Background(), jobstore.Job{ID: mustRandomID(t)})
	assert.True(t, errors.Is(err, ltlerrors.ErrNotFound))
}

func mustRandomID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewRandom()
	require.NoError(t, err)
	return id
}
