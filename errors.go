package args

import (
	"fmt"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// ErrorCode identifies the kind of failure reported by an *Error.
type ErrorCode int

const (
	InvalidArgumentName ErrorCode = iota + 1
	InvalidArgumentFormat
	UnexpectedArgument
	UnknownArgumentName
	WrongArgumentType
	MissingString
	MissingInteger
	MissingDouble
	InvalidInteger
	InvalidDouble
)

var errorCodeNames = map[ErrorCode]string{
	InvalidArgumentName:   "InvalidArgumentName",
	InvalidArgumentFormat: "InvalidArgumentFormat",
	UnexpectedArgument:    "UnexpectedArgument",
	UnknownArgumentName:   "UnknownArgumentName",
	WrongArgumentType:     "WrongArgumentType",
	MissingString:         "MissingString",
	MissingInteger:        "MissingInteger",
	MissingDouble:         "MissingDouble",
	InvalidInteger:        "InvalidInteger",
	InvalidDouble:         "InvalidDouble",
}

// String returns the snake_case name of the code, e.g. "invalid_integer".
func (c ErrorCode) String() string {
	name, ok := errorCodeNames[c]
	if !ok {
		return fmt.Sprintf("error_code(%d)", int(c))
	}
	return xstrings.ToSnakeCase(name)
}

// Sentinels for use with errors.Is. An *Error matches a sentinel when their
// codes are equal, regardless of argument id or parameter.
var (
	ErrInvalidArgumentName   = &Error{Code: InvalidArgumentName}
	ErrInvalidArgumentFormat = &Error{Code: InvalidArgumentFormat}
	ErrUnexpectedArgument    = &Error{Code: UnexpectedArgument}
	ErrUnknownArgumentName   = &Error{Code: UnknownArgumentName}
	ErrWrongArgumentType     = &Error{Code: WrongArgumentType}
	ErrMissingString         = &Error{Code: MissingString}
	ErrMissingInteger        = &Error{Code: MissingInteger}
	ErrMissingDouble         = &Error{Code: MissingDouble}
	ErrInvalidInteger        = &Error{Code: InvalidInteger}
	ErrInvalidDouble         = &Error{Code: InvalidDouble}
)

// Error is returned by every failing operation in this package.
//
// ArgumentID is the flag letter the error refers to, or 0 when no flag
// applies. Parameter is the raw offending text, or "" when there is none.
type Error struct {
	Code       ErrorCode
	ArgumentID rune
	Parameter  string

	cause error
}

func newError(code ErrorCode, id rune, parameter string) *Error {
	return &Error{Code: code, ArgumentID: id, Parameter: parameter}
}

func (e *Error) Error() string {
	switch e.Code {
	case UnexpectedArgument:
		return fmt.Sprintf("Argument -%c unexpected.", e.ArgumentID)
	case MissingString:
		return fmt.Sprintf("Could not find string parameter for -%c.", e.ArgumentID)
	case InvalidInteger:
		return fmt.Sprintf("Argument -%c expects an integer but was '%s'.", e.ArgumentID, e.Parameter)
	case MissingInteger:
		return fmt.Sprintf("Could not find integer parameter for -%c.", e.ArgumentID)
	case InvalidDouble:
		return fmt.Sprintf("Argument -%c expects a double but was '%s'.", e.ArgumentID, e.Parameter)
	case MissingDouble:
		return fmt.Sprintf("Could not find double parameter for -%c.", e.ArgumentID)
	case InvalidArgumentName:
		return fmt.Sprintf("'%c' is not a valid argument name.", e.ArgumentID)
	case InvalidArgumentFormat:
		return fmt.Sprintf("'%s' is not a valid argument format.", e.Parameter)
	case UnknownArgumentName:
		return fmt.Sprintf("Argument '%c' did not appear in schema.", e.ArgumentID)
	case WrongArgumentType:
		return fmt.Sprintf("Argument '%c' is not of type %s.", e.ArgumentID, e.Parameter)
	default:
		return ""
	}
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Unwrap returns the underlying conversion error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// AsError finds the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var argsErr *Error
	if errors.As(err, &argsErr) {
		return argsErr, true
	}
	return nil, false
}
