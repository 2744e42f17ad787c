package pbinfo

import (
	"errors"
	"fmt"
	"strings"
)

// Application error codes.
const (
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	ENETWORK   = "network"
	EMALFORMED = "malformed"
	EPATTERN   = "pattern"
	EPARSE     = "parse"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pbinfo error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// UnknownIDError is returned when no problem page exists for an id.
type UnknownIDError struct {
	ID int
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("unknown problem id %d", e.ID)
}

// UnknownNameError is returned when the search endpoint has no exact match
// for a name. Suggestions holds every candidate the search returned, in order.
type UnknownNameError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownNameError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown problem name %q", e.Name)
	}
	return fmt.Sprintf("unknown problem name %q (did you mean: %s)", e.Name, strings.Join(e.Suggestions, ", "))
}

// FieldError records which metadata field was being extracted when
// extraction failed. The wrapped error keeps its code and message.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var idErr *UnknownIDError
	if errors.As(err, &idErr) {
		return ENOTFOUND
	}
	var nameErr *UnknownNameError
	if errors.As(err, &nameErr) {
		return ENOTFOUND
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var idErr *UnknownIDError
	if errors.As(err, &idErr) {
		return idErr.Error()
	}
	var nameErr *UnknownNameError
	if errors.As(err, &nameErr) {
		return nameErr.Error()
	}
	return "Internal error"
}
