// Package amount: domain types and constructors.
// This file intentionally contains ONLY the Capacity scalar, the Amount
// value type and its constructors. Errors live in errors.go and the Dense
// element kernels in dense.go, per the global conventions.
package amount

// Capacity is the scalar stored at each dimension of an Amount.
//
// It is a plain signed 64-bit quantity: addition, subtraction and comparison
// follow Go's int64 semantics, including wrap-around at the extremes. The
// package never clamps results; see the Sub precondition in doc.go.
type Capacity int64

// variant discriminates the two Amount representations.
type variant uint8

const (
	// variantEmpty is the dimensionless neutral representation.
	variantEmpty variant = iota
	// variantDense is the fixed-length element vector representation.
	variantDense
)

// Amount is a multi-dimensional capacity/quantity vector.
//
// An Amount is either Empty (dimensionless neutral placeholder) or Dense
// (fixed-length element vector); the variant and, for Dense, the length are
// set at construction and never change afterwards. The zero value of Amount
// is the Empty variant and is ready to use.
//
// Binary operations (Add, Sub, MaxWith, Equal, Less, LessOrEqual) require
// both operands to share the same variant and, for Dense, the same length;
// otherwise they return ErrDimensionMismatch and leave the receiver intact.
type Amount struct {
	variant variant
	elems   []Capacity // nil unless variant == variantDense
}

// Empty returns the dimensionless neutral Amount. It compares equal to any
// other Empty amount, is never strictly less, and every mutating operation
// on it is a no-op. Equivalent to the zero value Amount{}.
//
// Complexity: O(1), no allocation.
func Empty() Amount {
	return Amount{}
}

// Zeros returns a Dense Amount of dims elements, all zero. A non-positive
// dims yields the zero-dimension Dense vector (still Dense, not Empty).
//
// Complexity: O(dims).
func Zeros(dims int) Amount {
	if dims < 0 {
		dims = 0
	}

	return Amount{variant: variantDense, elems: make([]Capacity, dims)}
}

// FromSlice returns a Dense Amount holding a copy of vals. The caller's
// slice remains independent: later mutation of vals does not affect the
// returned Amount, and vice versa.
//
// Complexity: O(len(vals)).
func FromSlice(vals []Capacity) Amount {
	elems := make([]Capacity, len(vals))
	copy(elems, vals)

	return Amount{variant: variantDense, elems: elems}
}
