package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind - tag of a condition raised by a handler.
type Kind int

const (
	InternalFault Kind = iota
	BadRequest
	NotFound
	MethodNotAllowed
)

// Status - http status code rendered for the kind.
func (k Kind) Status() int {
	switch k {
	case BadRequest:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case MethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// Category - short message placed in the error body.
func (k Kind) Category() string {
	return http.StatusText(k.Status())
}

func (k Kind) String() string {
	return k.Category()
}

// Error - a tagged failure result. Message is for logs, the client only sees the category.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewBadRequest(message string, cause error) *Error {
	return &Error{Kind: BadRequest, Message: message, Cause: cause}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

func NewMethodNotAllowed(message string) *Error {
	return &Error{Kind: MethodNotAllowed, Message: message}
}

func NewInternalFault(message string, cause error) *Error {
	return &Error{Kind: InternalFault, Message: message, Cause: cause}
}

// From - resolve any error into a tagged one, untagged errors become internal faults.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalFault("unhandled error", err)
}
