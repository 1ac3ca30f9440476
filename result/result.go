// Package result provides a two-variant outcome type for asynchronous
// operations.
//
// A Result is either a success carrying a value or a failure carrying an
// error, fixed at construction. It is used instead of a bare (T, error)
// pair when the outcome itself has to be stored and republished, e.g. as
// the settlement of a command execution.
package result

import "fmt"

// Result holds the outcome of an operation: exactly one of a success value
// of type T or a failure error. The variant is chosen by the constructor and
// never changes afterwards.
//
// The zero value is a failure carrying a nil error; use Ok or Err to build
// meaningful values.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok returns a success Result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err returns a failure Result holding err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether the Result is the success variant.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result is the failure variant.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Value returns the success value. The second return value is false when the
// Result is a failure, in which case the first is the zero value of T.
func (r Result[T]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure error. The second return value is false when the
// Result is a success.
func (r Result[T]) Err() (error, bool) {
	if r.ok {
		return nil, false
	}
	return r.err, true
}

// Match calls exactly one of onOk or onErr depending on the variant.
// A nil callback for the matching variant is allowed and skipped.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.ok {
		if onOk != nil {
			onOk(r.value)
		}
		return
	}
	if onErr != nil {
		onErr(r.err)
	}
}

// Get unpacks the Result into Go's native value/error pair. For a success
// the error is nil; for a failure the value is the zero value of T.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Of builds a Result from a native value/error pair: a failure when err is
// non-nil, a success holding value otherwise.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// String renders the Result for logging.
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("ok(%v)", r.value)
	}
	return fmt.Sprintf("err(%v)", r.err)
}
