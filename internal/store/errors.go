package store

import (
	"errors"
	"fmt"
)

// Kind classifies a store failure.
type Kind int

// KindNotFound is not produced by Store, where absence is a successful
// result; it is part of the taxonomy for callers that treat absence as an
// error and maps to 404 in the HTTP layer.
const (
	KindNotFound Kind = iota + 1
	KindInvalidID
	KindDecodeFailed
	KindIOFailed
	KindNetworkFailed
	KindHTTPStatus
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidID:
		return "invalid_id"
	case KindDecodeFailed:
		return "decode_failed"
	case KindIOFailed:
		return "io_failed"
	case KindNetworkFailed:
		return "network_failed"
	case KindHTTPStatus:
		return "http_status"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is; a *Error matches the sentinel of its Kind.
var (
	ErrNotFound      = errors.New("asset not found")
	ErrInvalidID     = errors.New("invalid asset id")
	ErrDecodeFailed  = errors.New("base64 decode failed")
	ErrIOFailed      = errors.New("filesystem operation failed")
	ErrNetworkFailed = errors.New("network request failed")
	ErrHTTPStatus    = errors.New("unexpected http status")
)

var sentinels = map[Kind]error{
	KindNotFound:      ErrNotFound,
	KindInvalidID:     ErrInvalidID,
	KindDecodeFailed:  ErrDecodeFailed,
	KindIOFailed:      ErrIOFailed,
	KindNetworkFailed: ErrNetworkFailed,
	KindHTTPStatus:    ErrHTTPStatus,
}

// Error is returned by every Store operation.
type Error struct {
	Kind       Kind
	Op         string
	ID         string
	StatusCode int // set for KindHTTPStatus
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("%s %q: HTTP %d", e.Op, e.ID, e.StatusCode)
	case KindInvalidID:
		return fmt.Sprintf("%s: invalid id %q", e.Op, e.ID)
	}
	if e.Err == nil {
		return fmt.Sprintf("%s %q: %s", e.Op, e.ID, sentinels[e.Kind])
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.ID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the Kind of err, or 0 if err is not a store error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

func newErr(kind Kind, op, id string, err error) *Error {
	return &Error{Kind: kind, Op: op, ID: id, Err: err}
}
