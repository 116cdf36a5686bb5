package prototype

// Prototype is implemented by types that can produce a copy of themselves.
//
// The copy must be a distinct value that is field-equal to the receiver at the
// time of the call.
type Prototype[T any] interface {
	Clone() T
}
