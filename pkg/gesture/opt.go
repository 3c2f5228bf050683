package gesture

// Opt is a value that may be absent.
type Opt[T any] struct {
	v  T
	ok bool
}

// Some wraps v as a present value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{v: v, ok: true}
}

// None returns the absent value.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.v, o.ok
}

// OK reports whether a value is present.
func (o Opt[T]) OK() bool {
	return o.ok
}
