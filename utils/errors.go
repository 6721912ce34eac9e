package utils

import "fmt"

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// CustomError is an expected, caller-caused failure. Two CustomErrors are
// equal under errors.Is when they share a Kind, so the sentinels below match
// every error of their kind.
type CustomError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	return ok && t.Kind == e.Kind
}

var (
	ErrValidation = &CustomError{Kind: KindValidation, Message: "validation failed"}
	ErrNotFound   = &CustomError{Kind: KindNotFound, Message: "record not found"}
	ErrConflict   = &CustomError{Kind: KindConflict, Message: "record already exists"}
)

func Validationf(format string, args ...interface{}) *CustomError {
	return &CustomError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *CustomError {
	return &CustomError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) *CustomError {
	return &CustomError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches cause to a CustomError without changing its message.
func (e *CustomError) Wrap(cause error) *CustomError {
	return &CustomError{Kind: e.Kind, Message: e.Message, Err: cause}
}
