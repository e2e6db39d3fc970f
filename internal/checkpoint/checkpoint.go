// Package checkpoint (de)serializes ltl.CheckpointState to and from disk
// using rezi binary encoding, the same encode-to-bytes/decode-from-bytes
// shape the teacher's sqlite DAO uses for its game.State blobs, adapted from
// a base64-in-a-DB-column sink to a plain file on disk.
package checkpoint

import (
	"errors"
	"fmt"
	"os"

	"github.com/dekarrin/rezi"

	"github.com/dekarrin/ltlsynth/internal/ltlerrors"
	"github.com/dekarrin/ltlsynth/ltl"
)

// Save writes state to path as a rezi-encoded binary blob.
func Save(path string, state ltl.CheckpointState) error {
	data := rezi.EncBinary(state.NextSize)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ltlerrors.New(fmt.Sprintf("%q: writing checkpoint", path), err)
	}
	return nil
}

// Load reads and decodes a checkpoint previously written by Save. It
// returns ltlerrors.ErrNotFound if path does not exist, which callers use to
// distinguish "never checkpointed" from a genuine I/O failure.
func Load(path string) (ltl.CheckpointState, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ltl.CheckpointState{}, ltlerrors.New(fmt.Sprintf("%q: no checkpoint present", path), ltlerrors.ErrNotFound)
	}
	if err != nil {
		return ltl.CheckpointState{}, ltlerrors.New(fmt.Sprintf("%q: reading checkpoint", path), err)
	}

	var nextSize int
	if _, err := rezi.DecBinary(data, &nextSize); err != nil {
		return ltl.CheckpointState{}, ltlerrors.New(fmt.Sprintf("%q: decoding checkpoint", path), err)
	}
	return ltl.CheckpointState{NextSize: nextSize}, nil
}

// LoadOrFresh is Load, but returns a zero-value CheckpointState (search
// starts at size 1) instead of an error when no checkpoint file exists yet.
func LoadOrFresh(path string) (ltl.CheckpointState, error) {
	state, err := Load(path)
	if err == nil {
		return state, nil
	}
	if errors.Is(err, ltlerrors.ErrNotFound) {
		return ltl.CheckpointState{}, nil
	}
	return ltl.CheckpointState{}, err
}
