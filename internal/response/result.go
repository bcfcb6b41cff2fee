package response

// SuccessKind qualifies a successful outcome
type SuccessKind int

const (
	KindSuccess SuccessKind = iota
	KindCreated
	KindUpdated
	KindDeleted
	KindNotModified
)

// String returns a label for logs and metrics
func (k SuccessKind) String() string {
	switch k {
	case KindCreated:
		return "created"
	case KindUpdated:
		return "updated"
	case KindDeleted:
		return "deleted"
	case KindNotModified:
		return "not_modified"
	default:
		return "success"
	}
}

// Empty is the payload of operations that return nothing
type Empty struct{}

// Result is the outcome of a service operation: either a value with a success kind,
// or a classified failure.
type Result[T any] struct {
	Value T
	Kind  SuccessKind
	Err   *AppError
}

// IsSuccess reports whether the operation succeeded
func (r Result[T]) IsSuccess() bool {
	return r.Err == nil
}

// Failure returns the classified failure, or nil on success
func (r Result[T]) Failure() *AppError {
	return r.Err
}

// SuccessKind returns the success qualifier
func (r Result[T]) SuccessKind() SuccessKind {
	return r.Kind
}

// Payload returns the value as an untyped payload
func (r Result[T]) Payload() any {
	return r.Value
}

// Outcome is the untyped view of a Result consumed by the transport boundary
type Outcome interface {
	Failure() *AppError
	SuccessKind() SuccessKind
	Payload() any
}

// Ok wraps a plain successful value
func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value, Kind: KindSuccess}
}

// Created wraps a newly created resource
func Created[T any](value T) Result[T] {
	return Result[T]{Value: value, Kind: KindCreated}
}

// Updated reports a successful mutation
func Updated() Result[Empty] {
	return Result[Empty]{Kind: KindUpdated}
}

// Deleted reports a successful removal
func Deleted() Result[Empty] {
	return Result[Empty]{Kind: KindDeleted}
}

// NotModified reports a legitimate no-op
func NotModified() Result[Empty] {
	return Result[Empty]{Kind: KindNotModified}
}

// Fail wraps a classified failure
func Fail[T any](err *AppError) Result[T] {
	return Result[T]{Err: err}
}
