package pagedb

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/xerrors"
)

// maxDiagnosticLen bounds the informational message carried by an Error
// to 10 kB; it is not meant to be parsed by callers.
const maxDiagnosticLen = 10 * 1024

// ErrorCode is a stable tag identifying the class of failure. Unlike the
// diagnostic message, the code is meant to be inspected and branched on by
// callers.
type ErrorCode int

const (
	// ErrOk indicates success. Errors are never constructed with this
	// code; it exists so a zero-value ErrorCode reads as "no error".
	ErrOk ErrorCode = iota
	// ErrMemory signals an allocation failure.
	ErrMemory
	// ErrInvalidPath signals that the database directory is unusable.
	ErrInvalidPath
	// ErrInternal signals that the underlying store returned an
	// unexpected condition.
	ErrInternal
	// ErrNoPage signals that a lookup for an expected page failed.
	ErrNoPage
	// ErrInvalidArgument signals a caller-supplied value that violates a
	// documented constraint, such as a URL whose key would exceed the
	// store's maximum key size.
	ErrInvalidArgument
	// ErrMapFull signals that the mmap region is exhausted and could not
	// be grown further (the growth cap was reached).
	ErrMapFull
)

func (c ErrorCode) String() string {
	switch c {
	case ErrOk:
		return "ok"
	case ErrMemory:
		return "memory"
	case ErrInvalidPath:
		return "invalid_path"
	case ErrInternal:
		return "internal"
	case ErrNoPage:
		return "no_page"
	case ErrInvalidArgument:
		return "invalid_argument"
	case ErrMapFull:
		return "map_full"
	default:
		return "unknown"
	}
}

// Error is the structured error object returned by this package's fallible
// operations. The diagnostic message is informational only: callers should
// branch on Code, never on the text of Message.
type Error struct {
	Code          ErrorCode
	Message       string
	CorrelationID string
	frame         xerrors.Frame
	wrapped       error
}

// newError builds an Error with a fresh correlation id and a captured call
// frame, truncating the diagnostic message to the documented bound.
func newError(code ErrorCode, wrapped error, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > maxDiagnosticLen {
		msg = msg[:maxDiagnosticLen]
	}
	return &Error{
		Code:          code,
		Message:       msg,
		CorrelationID: uuid.NewString(),
		frame:         xerrors.Caller(1),
		wrapped:       wrapped,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("pagedb: %s: %s [%s]", e.Code, e.Message, e.CorrelationID)
}

// Unwrap exposes the underlying cause, if any, for errors.Is/As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.wrapped
}

// FormatError implements xerrors.Formatter so that callers asking for
// %+v get a frame alongside the message.
func (e *Error) FormatError(p xerrors.Printer) (next error) {
	p.Print(e.Message)
	e.frame.Format(p)
	return e.wrapped
}

// lastErrorSlot is a thread-safe single-word convenience slot holding a
// per-PageDB "last error" for single-threaded, C-style callers. Per-call
// error returns remain authoritative; this slot is not cleared
// automatically and should not be relied on by concurrent callers.
type lastErrorSlot struct {
	mu  sync.Mutex
	err *Error
}

func (s *lastErrorSlot) set(err *Error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *lastErrorSlot) get() *Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
