package querier

import (
	"errors"
	"fmt"

	"github.com/darkclainer/revgo/pkg/lang"
)

// Error kinds. Every error returned by Remote is an *Error whose Kind is one
// of these, so errors.Is(err, ErrTransport) and alike work.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrTransport           = errors.New("transport failure")
	ErrShape               = errors.New("unexpected response shape")
)

type Error struct {
	Op   lang.Operation
	Kind error
	Err  error
}

func newError(op lang.Operation, kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Failure is the tagged form of an error, shaped like the success records.
type Failure struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func NewFailure(err error) *Failure {
	return &Failure{Message: err.Error()}
}
