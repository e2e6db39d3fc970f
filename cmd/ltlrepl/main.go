/*
Ltlrepl is an interactive session for exploring LTL formula synthesis.

It reads commands from stdin, either directly or (when connected to a tty)
through GNU Readline-based routines that give command history and editing.

Usage:

	ltlrepl [flags]

The flags are:

	-v, --version
		Give the current version of ltlsynth and then exit.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input, even if launched
		in a tty with stdin and stdout.

Once a session has started, it accepts these commands:

	LOAD <file>
		Load a TOML sample file as the current sample.

	SOLVE
		Search for the smallest formula consistent with the current sample
		and print it.

	SHOW [VOCABULARY]
		With no argument, print the current sample's formula search result
		again if one has been computed; with VOCABULARY, list the current
		sample's propositional variables.

	QUIT
		End the session.
*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/dekarrin/ltlsynth/internal/input"
	"github.com/dekarrin/ltlsynth/internal/render"
	"github.com/dekarrin/ltlsynth/internal/replcmd"
	"github.com/dekarrin/ltlsynth/internal/sampleio"
	"github.com/dekarrin/ltlsynth/internal/version"
	"github.com/dekarrin/ltlsynth/ltl"
)

const (
	// ExitSuccess indicates the session ended normally (QUIT, or EOF).
	ExitSuccess = iota

	// ExitSessionError indicates an unrecoverable error reading input or
	// initializing the session's readers.
	ExitSessionError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of ltlsynth and then exit.")
	forceDirect = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible.")
)

// session holds the state a REPL command can read or mutate.
type session struct {
	sample *ltl.Sample
	vocab  sampleio.Vocabulary
	last   *ltl.Formula
	found  bool
}

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

	var reader replcmd.Reader
	if !*forceDirect && isatty.IsTerminal(os.Stdin.Fd()) {
		rl, err := input.NewInteractiveReader()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: could not start readline: %s\n", err.Error())
			returnCode = ExitSessionError
			return
		}
		reader = rl
	} else {
		reader = input.NewDirectReader(os.Stdin)
	}
	defer reader.Close()

	ostream := bufio.NewWriter(os.Stdout)
	defer ostream.Flush()

	sess := &session{}

	for {
		cmd, err := replcmd.Get(reader, ostream)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitSessionError
			return
		}

		if cmd.Verb == "QUIT" {
			return
		}

		runCommand(sess, cmd, ostream)
	}
}

func runCommand(sess *session, cmd replcmd.Command, ostream *bufio.Writer) {
	switch cmd.Verb {
	case "LOAD":
		sample, vocab, err := sampleio.Load(cmd.Arg)
		if err != nil {
			fmt.Fprintf(ostream, "ERROR: %s\n", err.Error())
			ostream.Flush()
			return
		}
		sess.sample = sample
		sess.vocab = vocab
		sess.last = nil
		sess.found = false
		fmt.Fprintf(ostream, "loaded %q (%d variables, %d positive, %d negative)\n",
			cmd.Arg, vocab.Len(), len(sample.Positive), len(sample.Negative))
		ostream.Flush()
	case "SOLVE":
		if sess.sample == nil {
			fmt.Fprintln(ostream, "no sample loaded; use LOAD first")
			ostream.Flush()
			return
		}
		sess.last, sess.found = ltl.Solve(sess.sample, ltl.SolveOptions{})
		fmt.Fprintln(ostream, render.SearchResult(sess.last, sess.found, sess.sample, sess.vocab))
		ostream.Flush()
	case "SHOW":
		if sess.sample == nil {
			fmt.Fprintln(ostream, "no sample loaded; use LOAD first")
			ostream.Flush()
			return
		}
		if cmd.Arg == "VOCABULARY" {
			fmt.Fprintln(ostream, render.Vocabulary(sess.vocab))
		} else {
			fmt.Fprintln(ostream, render.SearchResult(sess.last, sess.found, sess.sample, sess.vocab))
		}
		ostream.Flush()
	}
}
