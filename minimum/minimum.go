// Package minimum folds a finite sequence into its smallest element, reported
// as an optional value so that an empty sequence is distinguishable from any
// real minimum.
package minimum

import (
	"golang.org/x/exp/constraints"

	"github.com/stkali/vecmin/optional"
)

// Picker is the capability a type must provide to be reduced by Reduce.
// PickSmaller returns the smaller of its two operands; it must be
// deterministic, total, and free of side effects. Which operand is returned
// on equality is the implementation's choice, but it must be consistent.
type Picker[T any] interface {
	PickSmaller(a, b T) T
}

// Func adapts an ordinary comparison function to the Picker capability.
type Func[T any] func(a, b T) T

// PickSmaller calls f.
func (f Func[T]) PickSmaller(a, b T) T {
	return f(a, b)
}

// Least returns the smaller of a and b, preferring a on equality.
func Least[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Reduce folds values into the minimum under pick with a single
// left-to-right pass. It returns Nothing for an empty sequence and
// Something(v) otherwise, where v is the element every pairwise pick
// settled on. The accumulator always sits on the left of PickSmaller, so a
// pick that prefers its left operand on equality keeps the earliest of
// tied elements.
func Reduce[T any](values []T, pick Picker[T]) optional.Option[T] {
	min := optional.None[T]()
	for _, v := range values {
		if current, ok := min.Native(); ok {
			min = optional.Some(pick.PickSmaller(current, v))
		} else {
			min = optional.Some(v)
		}
	}
	return min
}

// Of returns the min value in values as an optional
// empty values yields Nothing
func Of[T constraints.Ordered](values ...T) optional.Option[T] {
	return Reduce[T](values, Func[T](Least[T]))
}
