// Package result provides the uniform success/failure envelope returned by
// every service operation. Expected conditions travel as coded failures
// instead of errors; only unexpected lower-layer faults are wrapped as
// uncoded failures.
package result

// Code is a machine-readable classifier attached to expected failures.
type Code string

const (
	CodeUnknownUser Code = "UnknownUser"
	CodeInvalidURL  Code = "InvalidUrl"
	CodeNotUnique   Code = "NotUnique"
	CodeInvalidID   Code = "InvalidId"
	CodeInvalidPage Code = "InvalidPage"
	CodeNotFound    Code = "NotFound"
	CodeForbidden   Code = "Forbidden"
)

// Void is the payload of operations that carry no data on success.
type Void struct{}

// Result is a success/failure envelope. On success OK is true and Data is
// set. On failure Message holds a human-readable description and Code is
// set for expected conditions, empty for unexpected lower-layer faults.
type Result[T any] struct {
	OK      bool
	Data    T
	Code    Code
	Message string
}

// Ok builds a successful result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

// Done builds a successful result for operations without a payload.
func Done() Result[Void] {
	return Result[Void]{OK: true}
}

// Fail builds a coded failure for an expected condition.
func Fail[T any](code Code, message string) Result[T] {
	return Result[T]{Code: code, Message: message}
}

// FailErr wraps an unexpected lower-layer error as an uncoded failure.
func FailErr[T any](err error) Result[T] {
	return Result[T]{Message: err.Error()}
}

// Forward carries a failure across payload types, keeping code and
// message verbatim. Using it on a successful result is a programming
// error; the data does not survive the conversion.
func Forward[T, F any](r Result[F]) Result[T] {
	return Result[T]{OK: r.OK, Code: r.Code, Message: r.Message}
}
