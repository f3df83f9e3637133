package gmail

import (
	"errors"
	"fmt"
)

// Error kinds for the mail access layer. Callers branch on these with
// errors.Is; the concrete error values carry the operation context.
var (
	// ErrInvalidArgument marks requests rejected before any network call
	// (malformed input, empty ids, out-of-range batch sizes).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrProvider marks Gmail API failures. The provider's error is wrapped
	// verbatim and reachable via errors.Unwrap.
	ErrProvider = errors.New("provider error")
)

// kindError attaches one of the error kinds above to a concrete failure.
type kindError struct {
	kind error
	msg  string
	err  error
}

func (e *kindError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

func (e *kindError) Unwrap() error {
	return e.err
}

// invalidArgf creates an ErrInvalidArgument-kinded error.
func invalidArgf(format string, args ...interface{}) error {
	return &kindError{
		kind: ErrInvalidArgument,
		msg:  fmt.Sprintf(format, args...),
	}
}

// providerErrf wraps a Gmail API error with the attempted operation context.
func providerErrf(op string, err error) error {
	return &kindError{
		kind: ErrProvider,
		msg:  "failed " + op,
		err:  err,
	}
}
