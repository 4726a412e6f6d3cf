package main

import "errors"

// Exit codes per spec.md §6's command table.
const (
	exitOK             = 0
	exitIO             = 2
	exitEncode         = 3
	exitDecode         = 4
	exitCorrupt        = 5
	exitQuery          = 6
	exitUsage          = 1
)

// codedError pairs an error with the process exit code it should produce,
// so a command's RunE can return one error value and main still knows which
// exit(2|3|4|5|6) the table demands.
type codedError struct {
	code int
	err  error
}

func (c *codedError) Error() string { return c.err.Error() }
func (c *codedError) Unwrap() error { return c.err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}

	return &codedError{code: code, err: err}
}

func exitCodeOf(err error) int {
	if err == nil {
		return exitOK
	}

	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}

	return exitUsage
}
