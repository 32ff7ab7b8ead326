package shell

import (
	"errors"
	"fmt"
)

// Kind identifies which of the two error variants an Error holds.
type Kind int

const (
	// KindIO wraps a filesystem or process-spawn failure reported by the OS.
	KindIO Kind = iota + 1
	// KindMessage carries a description, e.g. a non-zero exit status.
	KindMessage
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Error is returned by every fallible Shell and Subprocess operation.
type Error struct {
	Kind Kind
	// Err is the underlying OS error for KindIO.
	Err error
	// Msg is the description for KindMessage.
	Msg string
	// ExitCode is set when a child process exited unsuccessfully.
	// It is 0 when the code was unavailable (see Signaled).
	ExitCode int
	// Exited reports whether this error came from a finished child process.
	Exited bool
	// Signaled reports whether the child was terminated by a signal.
	Signaled bool
}

func ioError(err error) *Error {
	return &Error{Kind: KindIO, Err: err}
}

func msgError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindMessage, Msg: fmt.Sprintf(format, args...)}
}

func exitError(code int, signaled bool) *Error {
	e := msgError("Subprocess failed with the exit code %d", code)
	if signaled {
		e.Msg += " (terminated by signal)"
	}
	e.ExitCode = code
	e.Exited = true
	e.Signaled = signaled
	return e
}

func (e *Error) Error() string {
	if e.Kind == KindIO {
		if e.Err == nil {
			return "io error"
		}
		return e.Err.Error()
	}
	return e.Msg
}

// Unwrap exposes the OS error of an IO failure.
func (e *Error) Unwrap() error {
	return e.Err
}

// IOError reports whether this is a wrapped OS failure.
func (e *Error) IOError() bool {
	return e.Kind == KindIO
}

// IsIO reports whether err is (or wraps) a shell IO error.
func IsIO(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindIO
}

// ExitCode returns the exit code recorded in err when it came from a child
// process that finished unsuccessfully.
func ExitCode(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Exited {
		return e.ExitCode, true
	}
	return 0, false
}
