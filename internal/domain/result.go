package domain

// Result carries either a success value or the error that prevented it.
// It is the return shape of every public service operation, so expected
// business failures (not found, already exists) travel as data instead of
// panics, and the HTTP layer maps them to status codes in one place.
//
// A Result must be built through Ok or Err; the zero value is a success
// wrapping the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Unit is the value type of results that carry no payload.
type Unit struct{}

// Empty is a value-less Result, used by operations that only report outcome.
type Empty = Result[Unit]

// Ok returns a success Result wrapping value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err returns a failure Result wrapping err. Panics if err is nil: a failure
// without a cause is always a programming error and must not propagate.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("domain: Err called with nil error")
	}
	var zero T
	return Result[T]{value: zero, err: err}
}

// Done returns a success Empty.
func Done() Empty {
	return Ok(Unit{})
}

// Fail returns a failure Empty wrapping err.
func Fail(err error) Empty {
	return Err[Unit](err)
}

// IsSuccess reports whether the Result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Value returns the success value. In the failure state it returns the zero
// value of T; callers must check IsSuccess first.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the wrapped error, or nil in the success state.
func (r Result[T]) Err() error {
	return r.err
}

// Drop discards the success value, keeping only the outcome.
func (r Result[T]) Drop() Empty {
	if r.err != nil {
		return Fail(r.err)
	}
	return Done()
}

// MapResult applies f to the success value, propagating failure unchanged.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f(r.value))
}
