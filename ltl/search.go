package ltl

import (
	"context"
	"runtime"
	"sync"
)

// defaultParallelThreshold is the size below which the overhead of
// dispatching work to a worker pool dominates the actual consistency
// checking, so the serial path is preferred. It is a performance knob, not
// a correctness concern (§4.4).
const defaultParallelThreshold = 6

// SolveOptions configures one Solve call.
type SolveOptions struct {
	// Parallel selects data-parallel dispatch over independent candidates
	// within a size, once that size is at or above ParallelThreshold.
	Parallel bool

	// ParallelThreshold overrides defaultParallelThreshold. Zero means use
	// the default.
	ParallelThreshold int

	// MaxSize bounds the search: if no consistent formula of size <=
	// MaxSize exists, Solve returns (nil, false) instead of running
	// forever. Zero (the default) means unbounded, matching the base
	// specification's "solve never terminates without a hit".
	MaxSize int

	// Logger, if non-nil, is called once per size attempted, with event
	// "searching" and that size, before any formula of that size is
	// generated. It is the caller-supplied sink mentioned in §9 — the core
	// has no logger of its own and no global state.
	Logger func(event string, size int)

	// Resume, if non-nil, starts the search at Resume.NextSize instead of
	// 1, for continuing a search interrupted between sizes (see
	// internal/checkpoint).
	Resume *CheckpointState
}

func (o SolveOptions) threshold() int {
	if o.ParallelThreshold > 0 {
		return o.ParallelThreshold
	}
	return defaultParallelThreshold
}

func (o SolveOptions) log(size int) {
	if o.Logger != nil {
		o.Logger("searching", size)
	}
}

// CheckpointState is the minimal state needed to resume an interrupted
// Solve call: the next size that has not yet been fully searched. See
// internal/checkpoint for (de)serialization.
type CheckpointState struct {
	NextSize int
}

// Solve iterates size = 1, 2, 3, ... and returns the first formula of that
// size consistent with sample, or (nil, false) if MaxSize is reached first.
// No candidate of size > the size currently being searched is ever built
// until that size is exhausted (§4.4's minimality guarantee).
func Solve(sample *Sample, opts SolveOptions) (*Formula, bool) {
	start := 1
	if opts.Resume != nil && opts.Resume.NextSize > start {
		start = opts.Resume.NextSize
	}

	for size := start; opts.MaxSize == 0 || size <= opts.MaxSize; size++ {
		opts.log(size)

		var found *Formula
		if opts.Parallel && size >= opts.threshold() {
			found = solveSizeParallel(sample, size)
		} else {
			found = solveSizeSerial(sample, size)
		}
		if found != nil {
			return found, true
		}
	}
	return nil, false
}

// solveSizeSerial enumerates every formula of the given size in the fixed
// skeleton/formula enumeration order and returns the first one consistent
// with sample, giving a fully deterministic result.
func solveSizeSerial(sample *Sample, size int) *Formula {
	for _, skel := range GenSkeletons(size) {
		for _, phi := range GenFormulae(skel, sample.Vars) {
			if sample.Consistent(phi) {
				return phi
			}
		}
	}
	return nil
}

// solveSizeParallel partitions the candidates of the given size across a
// worker pool sized to GOMAXPROCS and returns the first one any worker finds
// consistent. Workers race on a shared, cancellable context; once any
// worker reports a hit, the others abandon their remaining candidates
// rather than running to completion. The result is the smallest-size
// formula but, among candidates of that size, not necessarily the same one
// solveSizeSerial would return.
func solveSizeParallel(sample *Sample, size int) *Formula {
	skeletons := GenSkeletons(size)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	work := make(chan *Skeleton)
	go func() {
		defer close(work)
		for _, skel := range skeletons {
			select {
			case work <- skel:
			case <-ctx.Done():
				return
			}
		}
	}()

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	var (
		wg     sync.WaitGroup
		once   sync.Once
		result *Formula
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for skel := range work {
				for _, phi := range GenFormulae(skel, sample.Vars) {
					select {
					case <-ctx.Done():
						return
					default:
					}
					if sample.Consistent(phi) {
						once.Do(func() {
							result = phi
							cancel()
						})
						return
					}
				}
			}
		}()
	}
	wg.Wait()

	return result
}
