package quiz

import "errors"

// ErrNotFound is returned by Store implementations when no row matches.
var ErrNotFound = errors.New("record not found")

// Kind classifies an engine failure so the transport layer can pick a status
// code without inspecting error strings.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindNotFound
	KindStore
)

// Error is the failure type returned by the scoring and ranking engines.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationErr(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func storeErr(msg string, err error) *Error {
	return &Error{Kind: KindStore, Msg: msg, Err: err}
}
