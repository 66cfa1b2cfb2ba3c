package common

import (
	"fmt"
)

type ErrorCode uint

type Error struct {
	code    string
	message string
	err     error
}

func NewError(name string, code ErrorCode, message string) Error {
	return Error{code: fmt.Sprintf("%s-%d", name, code), message: message}
}

func (e Error) MarshalJSON() ([]byte, error) {
	m := map[string]string{
		"code":    e.code,
		"message": e.message,
	}
	if e.err != nil {
		m["error"] = e.err.Error()
	}

	return EncodeJSON(m, false, false)
}

func (e Error) Error() string {
	b, _ := e.MarshalJSON()

	return TerminalLogString(string(b))
}

func (e Error) Code() string {
	return e.code
}

func (e Error) Message() string {
	return e.message
}

// New wraps the given error; the returned Error still matches the original
// by code.
func (e Error) New(err error) Error {
	return Error{code: e.code, message: e.message, err: err}
}

func (e Error) Newf(format string, args ...interface{}) Error {
	return Error{
		code: e.code,
		message: fmt.Sprintf(
			"%s; %s",
			e.message,
			fmt.Sprintf(format, args...),
		),
		err: e.err,
	}
}

func (e Error) AppendMessage(format string, args ...interface{}) Error {
	return e.Newf(format, args...)
}

func (e Error) Unwrap() error {
	return e.err
}

// Is supports xerrors.Is; two Errors match iff their codes match.
func (e Error) Is(err error) bool {
	ne, found := err.(Error)
	if !found {
		return false
	}

	return e.code == ne.code
}

func (e Error) Equal(n error) bool {
	ne, found := n.(Error)
	if !found {
		return false
	}

	return e.Code() == ne.Code()
}
