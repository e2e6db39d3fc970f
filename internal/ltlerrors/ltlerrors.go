// Package ltlerrors holds the sentinel error values shared across the
// synthesis engine and its collaborators, along with an Error type that
// attaches a message to one or more wrapped causes. It plays the role that
// server/serr plays for the teacher's HTTP layer: a single compatible way to
// build and inspect errors with errors.Is, used by the sample loader, the
// CLI, the REPL, and the server daemon alike.
package ltlerrors

import "errors"

var (
	// ErrSampleParse indicates a sample file could not be parsed as the
	// expected structured format.
	ErrSampleParse = errors.New("malformed sample file")

	// ErrInconsistentWidth indicates a trace state has a width different
	// from the sample's declared number of propositional variables.
	ErrInconsistentWidth = errors.New("trace state width does not match sample width")

	// ErrEmptyTrace indicates a trace with zero states was supplied; traces
	// must be non-empty.
	ErrEmptyTrace = errors.New("trace has no states")

	// ErrNoFormulaFound indicates a bounded search (SolveOptions.MaxSize)
	// was exhausted without finding a consistent formula. Solve itself
	// reports that case as (nil, false) rather than as an error; the job
	// service records this error's message as a failed job's reason.
	ErrNoFormulaFound = errors.New("no consistent formula found within the given size bound")

	// ErrNotFound indicates a requested entity (e.g. a server job) does not
	// exist.
	ErrNotFound = errors.New("the requested entity could not be found")

	// ErrBadCredentials indicates a login attempt presented an invalid API
	// key.
	ErrBadCredentials = errors.New("the supplied credentials are incorrect")

	// ErrBadCommand indicates a REPL line could not be parsed as a
	// recognized command.
	ErrBadCommand = errors.New("unrecognized command")

	// ErrPermissions indicates the caller is authenticated but not allowed
	// to perform the requested operation.
	ErrPermissions = errors.New("you don't have permission to do that")

	// ErrAlreadyExists indicates a resource with the same identifying
	// information already exists.
	ErrAlreadyExists = errors.New("resource with same identifying information already exists")

	// ErrDB indicates an error occurred within the job store.
	ErrDB = errors.New("an error occurred with the job store")

	// ErrBadArgument indicates one or more arguments to a request were
	// invalid.
	ErrBadArgument = errors.New("one or more of the arguments is invalid")

	// ErrBodyUnmarshal indicates an HTTP request body could not be decoded.
	ErrBodyUnmarshal = errors.New("malformed data in request")
)

// Error is a message paired with zero or more causes. Calling errors.Is on
// an Error with a target that equals the Error itself, or equals (==) one
// of its causes, returns true; this lets callers test for e.g.
// ErrSampleParse without caring about the human-readable message wrapped
// around it.
type Error struct {
	msg   string
	cause []error
}

// New creates an Error with the given message and optional causes. A caller
// that wants errors.Is(err, ErrSampleParse) to hold should pass
// ErrSampleParse as one of causes.
func New(msg string, causes ...error) Error {
	e := Error{msg: msg}
	if len(causes) > 0 {
		e.cause = append([]error(nil), causes...)
	}
	return e
}

// Error returns the message, followed by the first cause's message if one
// is defined and msg itself was non-empty.
func (e Error) Error() string {
	if e.msg == "" && len(e.cause) > 0 {
		return e.cause[0].Error()
	}
	if len(e.cause) > 0 {
		return e.msg + ": " + e.cause[0].Error()
	}
	return e.msg
}

// Unwrap exposes every cause to the errors package (Go 1.20+ multi-error
// Unwrap), so errors.Is/errors.As can traverse into any of them.
func (e Error) Unwrap() []error {
	if len(e.cause) == 0 {
		return nil
	}
	return e.cause
}
