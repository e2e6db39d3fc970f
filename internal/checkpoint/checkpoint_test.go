package checkpoint

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/ltlsynth/internal/ltlerrors"
	"github.com/dekarrin/ltlsynth/ltl"
)

func Test_SaveLoad_roundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.rz")
	want := ltl.CheckpointState{NextSize: 7}

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_Load_missingFileIsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.rz")
	_, err := Load(path)
	assert.True(t, errors.Is(err, ltlerrors.ErrNotFound))
}

func Test_LoadOrFresh_returnsZeroValueWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.rz")
	state, err := LoadOrFresh(path)
	require.NoError(t, err)
	assert.Equal(t, ltl.CheckpointState{}, state)
}

func Test_LoadOrFresh_returnsSavedStateWhenPresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.rz")
	want := ltl.CheckpointState{NextSize: 4}
	require.NoError(t, Save(path, want))

	got, err := LoadOrFresh(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
