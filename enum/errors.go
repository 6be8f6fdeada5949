package enum

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes reported by enumeration operations.
const (
	// CodeInvalidValue indicates a scalar that is not among the type's declared values.
	CodeInvalidValue = "INVALID_VALUE"

	// CodeUnknownKey indicates a key, direct or derived from a method name, that is not declared.
	CodeUnknownKey = "UNKNOWN_KEY"

	// CodeParseError indicates input that matched neither a declared key nor a declared value.
	CodeParseError = "PARSE_ERROR"

	// CodeUnknownMethod indicates a dynamic call that matched neither the is nor the make pattern.
	CodeUnknownMethod = "UNKNOWN_METHOD"

	// CodeTypeMismatch indicates scalar input of the wrong kind, including nil.
	CodeTypeMismatch = "TYPE_MISMATCH"

	// CodeInvalidDeclaration indicates a type whose declaration could not be loaded or is inconsistent.
	CodeInvalidDeclaration = "INVALID_DECLARATION"
)

// Sentinel errors matching each code through errors.Is.
var (
	ErrInvalidValue       = errors.New("invalid enum value")
	ErrUnknownKey         = errors.New("unknown enum key")
	ErrParse              = errors.New("enum parse error")
	ErrUnknownMethod      = errors.New("unknown method")
	ErrTypeMismatch       = errors.New("enum type mismatch")
	ErrInvalidDeclaration = errors.New("invalid enum declaration")
)

var sentinels = map[string]error{
	CodeInvalidValue:       ErrInvalidValue,
	CodeUnknownKey:         ErrUnknownKey,
	CodeParseError:         ErrParse,
	CodeUnknownMethod:      ErrUnknownMethod,
	CodeTypeMismatch:       ErrTypeMismatch,
	CodeInvalidDeclaration: ErrInvalidDeclaration,
}

// Error is the structured error returned by every enumeration operation.
type Error struct {
	// Type is the identity of the enumeration type involved.
	Type string

	// Op is the operation that failed (e.g. "New", "WithKey", "Parse").
	Op string

	// Code is one of the Code* constants.
	Code string

	// Message is a human-readable description.
	Message string

	// Suggestion is the closest declared key for unknown-key errors, if any.
	Suggestion string

	// Cause is the underlying error, if any.
	Cause error
}

func newError(typ, op, code, format string, args ...any) *Error {
	return &Error{
		Type:    typ,
		Op:      op,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithCause sets the underlying error and returns e.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// Error formats the error as "type [op/code]: message: cause".
//
//	Color [WithKey/UNKNOWN_KEY]: unknown enum key: SILVR (did you mean SILVER?)
func (e *Error) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%s [%s/%s]", e.Type, e.Op, e.Code))

	msg := e.Message
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %s?)", e.Suggestion)
	}
	if msg != "" {
		parts = append(parts, msg)
	}

	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel for e.Code, or another *Error with the same code
// and, when the target names one, the same type.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code && (t.Type == "" || e.Type == t.Type)
	}
	sentinel, ok := sentinels[e.Code]
	return ok && sentinel == target
}
