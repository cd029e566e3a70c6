package optional

import "iter"

// Stream returns a lazy sequence of zero or one element. Each call returns an
// independent sequence, and every sequence can be ranged over any number of
// times.
func (me Optional[T]) Stream() iter.Seq[T] {
	return func(yield func(T) bool) {
		if me.exists {
			yield(me.item)
		}
	}
}
