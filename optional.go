// Package optional implements a generic container that holds zero or one
// value of a type, with combinators for chaining operations over the
// possibly-absent value.
package optional

import "fmt"

// Optional holds either one value of T or nothing. The zero value is empty.
// An empty Optional always stores the zero value of T in its slot, so
// Optional values of comparable types are themselves comparable with ==
// and usable as map keys.
type Optional[T any] struct {
	item   T
	exists bool
}

func Of[T any](item T) Optional[T] {
	return Optional[T]{
		item:   item,
		exists: true,
	}
}

// OfNullable wraps the pointed-to value, or returns an empty Optional for a
// nil pointer.
func OfNullable[T any](item *T) Optional[T] {
	if item == nil {
		return Empty[T]()
	}
	return Of(*item)
}

// OfPresent constructs from a value and a presence flag, e.g. straight from a
// comma-ok expression. An absent value is discarded.
func OfPresent[T any](item T, exists bool) Optional[T] {
	if !exists {
		return Empty[T]()
	}
	return Of(item)
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

func (me Optional[T]) IsPresent() bool {
	return me.exists
}

func (me Optional[T]) IsEmpty() bool {
	return !me.exists
}

func (me Optional[T]) Unpack() (T, bool) {
	return me.item, me.exists
}

// Get returns the held value, or ErrEmpty if there is none.
func (me Optional[T]) Get() (T, error) {
	if !me.exists {
		return me.item, ErrEmpty
	}
	return me.item, nil
}

// MustGet returns the held value and panics if there is none.
func (me Optional[T]) MustGet() T {
	if !me.exists {
		panic(ErrEmpty)
	}
	return me.item
}

// Ptr returns a pointer to a copy of the held value, or nil when empty.
func (me Optional[T]) Ptr() *T {
	if !me.exists {
		return nil
	}
	return &me.item
}

func (me Optional[T]) OrElse(defaultValue T) T {
	if me.exists {
		return me.item
	}
	return defaultValue
}

// OrElseGet returns the held value if present; otherwise it invokes supplier
// and returns its result. The supplier is never invoked when a value is
// present.
func (me Optional[T]) OrElseGet(supplier func() T) T {
	if supplier == nil {
		panic(ErrNilSupplier)
	}
	if me.exists {
		return me.item
	}
	return supplier()
}

// OrElseThrow returns the held value if present; otherwise it returns the
// error produced by errSupplier, unchanged. The supplier is never invoked
// when a value is present.
func (me Optional[T]) OrElseThrow(errSupplier func() error) (T, error) {
	if errSupplier == nil {
		panic(ErrNilSupplier)
	}
	if me.exists {
		return me.item, nil
	}
	return me.item, errSupplier()
}

// Equal reports whether both Optionals are empty, or both present with equal
// values.
func Equal[T comparable](a, b Optional[T]) bool {
	if a.exists != b.exists {
		return false
	}
	return !a.exists || a.item == b.item
}

func (me Optional[T]) String() string {
	if me.exists {
		return fmt.Sprintf("Optional[%v]", me.item)
	}
	return "Optional.empty"
}
