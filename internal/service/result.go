package service

// Status is the three-way outcome of a read operation. The tri-state is
// load-bearing for callers: "no data" renders an empty state, "fetch
// failed" renders a retry prompt, and the two must never be conflated.
type Status string

const (
	StatusSuccess Status = "success"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
)

// Result is a tagged success/empty/error union. Read operations return
// it instead of raising errors across the service boundary.
type Result[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Success wraps data in a successful result
func Success[T any](data T) Result[T] {
	return Result[T]{Status: StatusSuccess, Data: data}
}

// Empty is the explicit "no data" result, distinct from an error
func Empty[T any]() Result[T] {
	return Result[T]{Status: StatusEmpty}
}

// Failure wraps an error in a result
func Failure[T any](err error) Result[T] {
	return Result[T]{Status: StatusError, Err: err}
}

// IsSuccess reports whether the result carries data
func (r Result[T]) IsSuccess() bool { return r.Status == StatusSuccess }

// IsEmpty reports whether the result is the explicit empty outcome
func (r Result[T]) IsEmpty() bool { return r.Status == StatusEmpty }

// IsError reports whether the result carries an error
func (r Result[T]) IsError() bool { return r.Status == StatusError }
