package dialect

import (
	"errors"
	"fmt"
)

// ErrorKind classifies dialect failures.
type ErrorKind int

// ErrorKind constants.
const (
	// UnknownSymbol means a keyword or clause was requested directly but the
	// dialect never registered it.
	UnknownSymbol ErrorKind = iota + 1
	// UnsupportedStatement means the dialect has no template for a query kind.
	UnsupportedStatement
	// InvalidColumnType means the type resolver could not resolve a column type.
	InvalidColumnType
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownSymbol:
		return "unknown symbol"
	case UnsupportedStatement:
		return "unsupported statement"
	case InvalidColumnType:
		return "invalid column type"
	default:
		return "unknown error"
	}
}

// Error is returned by dialect lookups and renders. It matches the sentinel
// errors below through errors.Is on its Kind.
type Error struct {
	Kind    ErrorKind
	Dialect string
	Symbol  string // keyword, clause, query kind or column name
	Err     error  // underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Symbol != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Symbol)
	}
	if e.Dialect != "" {
		msg = fmt.Sprintf("%s: %s", e.Dialect, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Symbol == "" && t.Dialect == ""
}

// Sentinel errors for errors.Is checks.
var (
	ErrUnknownSymbol        = &Error{Kind: UnknownSymbol}
	ErrUnsupportedStatement = &Error{Kind: UnsupportedStatement}
	ErrInvalidColumnType    = &Error{Kind: InvalidColumnType}
)

// ErrInvalidCondition is returned when a condition's value does not fit its
// operator, such as an empty IN list or a BETWEEN without two bounds.
var ErrInvalidCondition = errors.New("invalid condition")

// ErrDialectRequired is returned when a dialect is required but not provided.
var ErrDialectRequired = errors.New("dialect is required")

// UnknownDialectError is returned when a dialect name is not registered.
type UnknownDialectError struct {
	Name      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q\nAvailable dialects: %v\nHint: Check the dialect setting in sqlrender.yaml", e.Name, e.Available)
}
