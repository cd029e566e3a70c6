package optional

// IfPresent invokes action with the held value exactly once, on the calling
// goroutine, if a value is present.
func (me Optional[T]) IfPresent(action func(T)) {
	if action == nil {
		panic(ErrNilAction)
	}
	if me.exists {
		action(me.item)
	}
}

// IfPresentOrElse invokes action with the held value if present, and
// emptyAction otherwise. Either branch runs synchronously on the calling
// goroutine.
func (me Optional[T]) IfPresentOrElse(action func(T), emptyAction func()) {
	if action == nil || emptyAction == nil {
		panic(ErrNilAction)
	}
	if me.exists {
		action(me.item)
	} else {
		emptyAction()
	}
}

// Filter returns the receiver if it is empty or its value satisfies the
// predicate, and an empty Optional otherwise.
func (me Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if predicate == nil {
		panic(ErrNilPredicate)
	}
	if !me.exists || predicate(me.item) {
		return me
	}
	return Empty[T]()
}

// Or returns the receiver if a value is present; otherwise it returns the
// Optional produced by supplier. The supplier is never invoked when a value
// is present.
func (me Optional[T]) Or(supplier func() Optional[T]) Optional[T] {
	if supplier == nil {
		panic(ErrNilSupplier)
	}
	if me.exists {
		return me
	}
	return supplier()
}

// Map applies mapper to the held value, wrapping the result. An empty input
// yields an empty Optional of the result type without invoking the mapper.
//
// Map is a package function rather than a method because Go methods cannot
// introduce additional type parameters.
func Map[T, U any](opt Optional[T], mapper func(T) U) Optional[U] {
	if mapper == nil {
		panic(ErrNilMapper)
	}
	if !opt.exists {
		return Empty[U]()
	}
	return Of(mapper(opt.item))
}

// MapNullable is Map for mappers that signal "no result" with a nil pointer;
// a nil result yields an empty Optional.
func MapNullable[T, U any](opt Optional[T], mapper func(T) *U) Optional[U] {
	if mapper == nil {
		panic(ErrNilMapper)
	}
	if !opt.exists {
		return Empty[U]()
	}
	return OfNullable(mapper(opt.item))
}

// FlatMap applies mapper to the held value and passes its Optional result
// through unchanged. An empty input yields an empty Optional of the result
// type without invoking the mapper.
func FlatMap[T, U any](opt Optional[T], mapper func(T) Optional[U]) Optional[U] {
	if mapper == nil {
		panic(ErrNilMapper)
	}
	if !opt.exists {
		return Empty[U]()
	}
	return mapper(opt.item)
}
