package iterator

import "iter"

func Collect[T any](it iter.Seq[T]) []T {
	p := []T{}
	for value := range it {
		p = append(p, value)
	}
	return p
}

// Filter yields only the values of it that are true on the condition. The
// underlying sequence is still fully consumed.
func Filter[T any](it iter.Seq[T], cond func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value := range it {
			if !cond(value) {
				continue
			}
			if !yield(value) {
				return
			}
		}
	}
}
