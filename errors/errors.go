// Package errors defines the coded error type used by doctags subpackages.
package errors

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	GrammarErrors = 1   // used by grammar
	ParserErrors  = 101 // used by parser
)

// Error carries a non-zero code from one of the class blocks declared in the
// root package. Errors of this type always signal a definitional problem
// (a faulty grammar or catalog), never a malformed input document.
type Error struct {
	Code    int
	Message string
}

func New(code int, msg string) *Error {
	return &Error{code, msg}
}

func (e *Error) Error() string {
	return e.Message
}

// Format creates an Error, formatting the message with fmt.Sprintf when
// params are given.
func Format(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return New(code, msg)
}
