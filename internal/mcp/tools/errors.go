package tools

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ErrorKind classifies dispatch failures.
type ErrorKind int

const (
	KindInvalidParams ErrorKind = iota + 1
	KindMethodNotFound
	KindInvalidRequest
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidParams:
		return "invalid params"
	case KindMethodNotFound:
		return "method not found"
	case KindInvalidRequest:
		return "invalid request"
	case KindInternal:
		return "internal error"
	default:
		return fmt.Sprintf("error kind %d", int(k))
	}
}

// Code returns the JSON-RPC error code for the kind.
func (k ErrorKind) Code() int {
	switch k {
	case KindInvalidParams:
		return mcp.INVALID_PARAMS
	case KindMethodNotFound:
		return mcp.METHOD_NOT_FOUND
	case KindInvalidRequest:
		return mcp.INVALID_REQUEST
	default:
		return mcp.INTERNAL_ERROR
	}
}

// Error is the typed failure raised through the dispatch boundary.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Code() int { return e.Kind.Code() }

// KindOf reports the kind of a dispatch error, or zero when err is not one.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func invalidParams(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidParams, Message: fmt.Sprintf(format, args...)}
}

func methodNotFound(name string) *Error {
	return &Error{Kind: KindMethodNotFound, Message: fmt.Sprintf("unknown tool %q", name)}
}

func invalidRequest(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

func internalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: err.Error(), Err: err}
}
