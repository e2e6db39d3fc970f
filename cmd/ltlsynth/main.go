/*
Ltlsynth searches for the smallest Linear Temporal Logic formula consistent
with a sample of labeled traces.

It reads a TOML sample file declaring a propositional vocabulary and sets of
positive and negative traces, then performs an enumerative search over
increasing formula size until a formula is found that holds on every
positive trace and fails on every negative one.

Usage:

	ltlsynth [flags]

The flags are:

	-v, --version
		Give the current version of ltlsynth and then exit.

	-f, --sample-file FILE
		Read the labeled sample from the given TOML file. Required.

	-n, --size MAX
		Bound the search to formulae of size at most MAX. If no consistent
		formula of that size or smaller exists, exit with a failure status
		instead of searching forever. Zero (the default) means unbounded.

	-m, --multithread
		Search candidates of a single size across a worker pool instead of
		one at a time.

	-c, --checkpoint FILE
		Record the search's progress to FILE after each size is attempted,
		and resume from it if FILE already exists.

	-l, --log FILE
		Append one line per size attempted to FILE.

Once a formula is found, it is printed to stdout rendered against the
sample's own vocabulary names.
*/
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/dekarrin/ltlsynth/internal/checkpoint"
	"github.com/dekarrin/ltlsynth/internal/render"
	"github.com/dekarrin/ltlsynth/internal/sampleio"
	"github.com/dekarrin/ltlsynth/internal/version"
	"github.com/dekarrin/ltlsynth/ltl"
)

const (
	// ExitSuccess indicates a formula was found (or --version was given).
	ExitSuccess = iota

	// ExitInitError indicates bad flags, a missing sample file, or a
	// malformed sample file.
	ExitInitError

	// ExitNoSolution indicates a bounded search (--size) completed without
	// finding a consistent formula.
	ExitNoSolution
)

var (
	returnCode     = ExitSuccess
	flagVersion    = pflag.BoolP("version", "v", false, "Give the current version of ltlsynth and then exit.")
	flagSampleFile = pflag.StringP("sample-file", "f", "", "The TOML sample file to search against.")
	flagMaxSize    = pflag.IntP("size", "n", 0, "Bound the search to formulae of at most this size. 0 means unbounded.")
	flagMultithread = pflag.BoolP("multithread", "m", false, "Search within a size across a worker pool.")
	flagCheckpoint = pflag.StringP("checkpoint", "c", "", "Record and resume search progress using this file.")
	flagLogFile    = pflag.StringP("log", "l", "", "Append one line per size attempted to this file.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if *flagSampleFile == "" {
		fmt.Fprintf(os.Stderr, "ERROR: --sample-file/-f is required\nDo -h for help.\n")
		returnCode = ExitInitError
		return
	}

	sample, vocab, err := sampleio.Load(*flagSampleFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	var logger *log.Logger
	if *flagLogFile != "" {
		f, openErr := os.OpenFile(*flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "ERROR: opening log file: %s\n", openErr.Error())
			returnCode = ExitInitError
			return
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	var resume *ltl.CheckpointState
	if *flagCheckpoint != "" {
		state, loadErr := checkpoint.LoadOrFresh(*flagCheckpoint)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "ERROR: loading checkpoint: %s\n", loadErr.Error())
			returnCode = ExitInitError
			return
		}
		resume = &state
	}

	opts := ltl.SolveOptions{
		Parallel: *flagMultithread,
		MaxSize:  *flagMaxSize,
		Resume:   resume,
		Logger: func(event string, size int) {
			if logger != nil {
				logger.Printf("%s size=%d\n", event, size)
			}
			if *flagCheckpoint != "" {
				if saveErr := checkpoint.Save(*flagCheckpoint, ltl.CheckpointState{NextSize: size}); saveErr != nil {
					fmt.Fprintf(os.Stderr, "WARN: could not save checkpoint: %s\n", saveErr.Error())
				}
			}
		},
	}

	phi, found := ltl.Solve(sample, opts)

	fmt.Println(render.SearchResult(phi, found, sample, vocab))

	if !found {
		returnCode = ExitNoSolution
		return
	}
}
