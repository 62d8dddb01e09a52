package class

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies every failure the tracker reports.
type Kind int

const (
	// KindNotFound indicates an unknown class id, command or help topic.
	KindNotFound Kind = iota + 1

	// KindOutOfRange indicates an assignment position outside 1..len.
	KindOutOfRange

	// KindInvalidValue indicates an argument that failed to parse as a number
	// or named an unknown choice.
	KindInvalidValue

	// KindInvalidFormat indicates a date or encoded record that could not be parsed.
	KindInvalidFormat

	// KindUnknownProperty indicates a modify target other than name or period.
	KindUnknownProperty

	// KindMissingArguments indicates fewer arguments than a command requires.
	KindMissingArguments

	// KindIOFailure indicates a read or write of a file failed.
	KindIOFailure
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindOutOfRange:
		return "out of range"
	case KindInvalidValue:
		return "invalid value"
	case KindInvalidFormat:
		return "invalid format"
	case KindUnknownProperty:
		return "unknown property"
	case KindMissingArguments:
		return "missing arguments"
	case KindIOFailure:
		return "io failure"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. Each matches any *Error of the same Kind.
var (
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrOutOfRange       = &Error{Kind: KindOutOfRange}
	ErrInvalidValue     = &Error{Kind: KindInvalidValue}
	ErrInvalidFormat    = &Error{Kind: KindInvalidFormat}
	ErrUnknownProperty  = &Error{Kind: KindUnknownProperty}
	ErrMissingArguments = &Error{Kind: KindMissingArguments}
	ErrIOFailure        = &Error{Kind: KindIOFailure}
)

// Error is a classified failure with the context needed to describe it.
type Error struct {
	Kind Kind

	// Subject names what was being looked up or parsed ("class", "period", "date").
	Subject string

	// Value is the offending input, verbatim.
	Value string

	// Index is the requested position (OutOfRange) or required count (MissingArguments).
	Index int

	// Count is the number of assignments (OutOfRange) or provided arguments (MissingArguments).
	Count int

	// Hint is appended to the message when set.
	Hint string

	// Err is the underlying cause, if any.
	Err error
}

// Error renders the message shown to the user.
func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindNotFound:
		msg = fmt.Sprintf("%s '%s' not found", e.Subject, e.Value)
	case KindOutOfRange:
		msg = fmt.Sprintf("no assignment at index %d", e.Index)
		if e.Count > 0 {
			msg += fmt.Sprintf(" (expected 1-%d)", e.Count)
		}
	case KindInvalidValue:
		msg = fmt.Sprintf("invalid %s '%s'", e.Subject, e.Value)
	case KindInvalidFormat:
		msg = fmt.Sprintf("failed to parse %s '%s'", e.Subject, e.Value)
	case KindUnknownProperty:
		msg = fmt.Sprintf("invalid property '%s'", e.Value)
	case KindMissingArguments:
		noun := "arguments"
		if e.Index == 1 {
			noun = "argument"
		}
		msg = fmt.Sprintf("expected %d %s (%d provided)", e.Index, noun, e.Count)
	case KindIOFailure:
		msg = fmt.Sprintf("%s '%s'", e.Subject, e.Value)
	default:
		msg = e.Kind.String()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Hint != "" {
		msg += ". " + e.Hint
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a sentinel of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Subject == "" && t.Value == ""
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// NotFound reports that subject value does not exist.
func NotFound(subject, value string) *Error {
	return &Error{Kind: KindNotFound, Subject: subject, Value: value}
}

// OutOfRange reports an assignment position outside 1..count.
func OutOfRange(index, count int) *Error {
	return &Error{Kind: KindOutOfRange, Index: index, Count: count}
}

// InvalidValue reports that value is not acceptable for subject.
func InvalidValue(subject, value string, cause error) *Error {
	return &Error{Kind: KindInvalidValue, Subject: subject, Value: value, Err: cause}
}

// InvalidFormat reports that value could not be parsed as subject.
func InvalidFormat(subject, value string, cause error) *Error {
	return &Error{Kind: KindInvalidFormat, Subject: subject, Value: value, Err: cause}
}

// UnknownProperty reports a modify target that does not exist.
func UnknownProperty(property string) *Error {
	return &Error{Kind: KindUnknownProperty, Value: property}
}

// MissingArguments reports that want arguments were required but got were provided.
func MissingArguments(want, got int) *Error {
	return &Error{Kind: KindMissingArguments, Index: want, Count: got}
}

// IOFailure reports a failed file operation on path.
func IOFailure(op, path string, cause error) *Error {
	return &Error{Kind: KindIOFailure, Subject: strings.TrimSpace(op), Value: path, Err: cause}
}

// numError strips strconv's "strconv.ParseUint: parsing ..." prefix from err.
func numError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}
	return err
}
