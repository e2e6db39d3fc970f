package replcmd

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ltlsynth/internal/ltlerrors"
)

// VerbAliases maps shorthand verbs to their canonical forms. Lookups are
// performed on the upper-cased first token of a line.
var VerbAliases = map[string]string{
	"L":    "LOAD",
	"S":    "SOLVE",
	"SH":   "SHOW",
	"Q":    "QUIT",
	"EXIT": "QUIT",
	"BYE":  "QUIT",
}

// ParseCommand parses a single line of REPL input. An empty or whitespace-
// only line returns a zero-value Command and a nil error, mirroring the
// teacher's command.ParseCommand convention of treating blank input as "no
// command" rather than an error.
func ParseCommand(toParse string) (Command, error) {
	var cmd Command

	trimmed := strings.TrimSpace(toParse)
	if trimmed == "" {
		return cmd, nil
	}

	fields := strings.Fields(trimmed)
	verb := strings.ToUpper(fields[0])
	if expanded, ok := VerbAliases[verb]; ok {
		verb = expanded
	}

	var arg string
	if len(fields) > 1 {
		arg = strings.TrimSpace(strings.Join(fields[1:], " "))
	}

	switch verb {
	case "LOAD":
		if arg == "" {
			return cmd, ltlerrors.New("LOAD requires a sample file path", ltlerrors.ErrBadCommand)
		}
	case "SHOW":
		// SHOW's argument, if any, is a keyword (e.g. VOCABULARY), not a
		// path, so it is canonicalized the way command verbs are.
		arg = strings.ToUpper(arg)
	case "SOLVE", "QUIT":
		// no required argument for either
	default:
		return cmd, ltlerrors.New(
			fmt.Sprintf("%q is not a recognized command; try LOAD, SOLVE, SHOW, or QUIT", fields[0]),
			ltlerrors.ErrBadCommand)
	}

	cmd.Verb = verb
	cmd.Arg = arg
	return cmd, nil
}
