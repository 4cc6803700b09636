package http

import (
	"io"

	"http-message/application/http/status"

	"github.com/pkg/errors"
)

// ParseError is the only error kind returned by this package.
// It carries a fixed description chosen where the failure happened.
type ParseError struct {
	desc string
}

func (e *ParseError) Error() string { return "HTTP parsing error: " + e.desc }

func (e *ParseError) Description() string { return e.desc }

var (
	ErrInvalidVersion  = &ParseError{"Invalid version"}
	ErrInvalidMethod   = &ParseError{"Invalid method"}
	ErrInvalidStatus   = &ParseError{"Invalid status"}
	ErrInvalidField    = &ParseError{"Invalid field"}
	ErrInvalidTarget   = &ParseError{"Invalid target"}
	ErrInvalidRequest  = &ParseError{"Invalid request"}
	ErrInvalidResponse = &ParseError{"Invalid response"}
	ErrUnexpectedEOF   = &ParseError{"Unexpected end of stream"}
	ErrTruncated       = &ParseError{"Truncated body"}

	ErrIntegerParse = &ParseError{"Failed to parse integer"}
	ErrIO           = &ParseError{"Failed to read from connection"}
)

// fromIOError converts a failure of the underlying stream.
// The cause is dropped on purpose: callers only react to the classification.
func fromIOError(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrUnexpectedEOF
	}
	return ErrIO
}

func fromIntError(error) error { return ErrIntegerParse }

// StatusOf returns the status a server would answer with when a request failed
// to parse with err. Errors that are not a [ParseError] map to 500.
func StatusOf(err error) status.Status {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return status.InternalServerError
	}

	switch pe {
	case ErrInvalidMethod:
		// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-9.1-10
		return status.NotImplemented
	case ErrIO:
		return status.InternalServerError
	default:
		return status.BadRequest
	}
}
