package types

import "fmt"

// CodespaceType reserves a code range per module.
type CodespaceType uint16

// CodeType is an error code unique within a codespace.
type CodeType uint16

const (
	// CodespaceRoot is reserved for sdk-level errors.
	CodespaceRoot CodespaceType = 1

	CodeInternal         CodeType = 1
	CodeInvalidAmount    CodeType = 2
	CodeInsufficientFund CodeType = 3
	CodeOverflow         CodeType = 4
)

// Error is the error type returned by keepers and handlers. The codespace and
// code identify the failure class deterministically; the message is for
// operators and never feeds back into the state transition.
type Error interface {
	error
	Codespace() CodespaceType
	Code() CodeType
}

type sdkError struct {
	codespace CodespaceType
	code      CodeType
	msg       string
}

// NewError constructs an Error with a formatted message.
func NewError(codespace CodespaceType, code CodeType, format string, args ...interface{}) Error {
	return &sdkError{
		codespace: codespace,
		code:      code,
		msg:       fmt.Sprintf(format, args...),
	}
}

func (e *sdkError) Error() string {
	return fmt.Sprintf("codespace %d, code %d: %s", e.codespace, e.code, e.msg)
}

func (e *sdkError) Codespace() CodespaceType { return e.codespace }
func (e *sdkError) Code() CodeType           { return e.code }

// IsError reports whether err carries the given codespace and code.
func IsError(err error, codespace CodespaceType, code CodeType) bool {
	e, ok := err.(Error)
	return ok && e.Codespace() == codespace && e.Code() == code
}

func ErrInternal(msg string) Error {
	return NewError(CodespaceRoot, CodeInternal, msg)
}

func ErrInvalidAmount(msg string) Error {
	return NewError(CodespaceRoot, CodeInvalidAmount, msg)
}

func ErrInsufficientFund(msg string) Error {
	return NewError(CodespaceRoot, CodeInsufficientFund, msg)
}

func ErrOverflow(msg string) Error {
	return NewError(CodespaceRoot, CodeOverflow, msg)
}

// Result is the outcome of a message handler.
type Result struct {
	Code CodeType
	Log  string
}

func (r Result) IsOK() bool { return r.Code == 0 }

// ErrResult converts an Error into a failed handler Result.
func ErrResult(err Error) Result {
	return Result{Code: err.Code(), Log: err.Error()}
}
