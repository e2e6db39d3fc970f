package replcmd

import (
	"bufio"
	"fmt"
)

// Reader is a type that can be used for getting command input; implemented
// by internal/input's DirectCommandReader and InteractiveCommandReader.
type Reader interface {
	// ReadCommand reads a single line of user input. It blocks until one is
	// ready. When error is io.EOF, the returned string is always empty.
	ReadCommand() (string, error)

	// Close releases any resources held by the Reader.
	Close() error
}

// Get reads lines from cmdStream until one parses as a non-empty Command,
// writing parse errors to ostream and re-prompting in between. It does not
// check whether the command is executable, only that ParseCommand accepts
// it.
func Get(cmdStream Reader, ostream *bufio.Writer) (Command, error) {
	var cmd Command
	gotValidCommand := false

	for !gotValidCommand {
		input, err := cmdStream.ReadCommand()
		if err != nil {
			return cmd, fmt.Errorf("could not get input: %w", err)
		}

		cmd, err = ParseCommand(input)
		if err != nil {
			errMsg := fmt.Sprintf("%v\nTry LOAD, SOLVE, SHOW, or QUIT\n", err)
			if _, werr := ostream.WriteString(errMsg); werr != nil {
				return cmd, fmt.Errorf("could not write output: %w", werr)
			}
			if ferr := ostream.Flush(); ferr != nil {
				return cmd, fmt.Errorf("could not flush output: %w", ferr)
			}
		} else if cmd.Verb != "" {
			gotValidCommand = true
		}
	}

	return cmd, nil
}
