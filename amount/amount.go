// Package amount - the Amount value API.
//
// This file contains every public operation on Amount. Each binary method:
//  1. Validates dimensionality (same variant; same length for Dense) and
//     returns ErrDimensionMismatch without mutating anything on violation.
//  2. Dispatches on the variant tag: Dense runs the matching kernel from
//     dense.go, Empty is a no-op / trivial result.
//
// Design principles:
//   - Deterministic, side-effect free comparisons; mutations touch only the
//     receiver's own storage.
//   - No logging, no panics on user input - only sentinel errors from
//     errors.go.
//   - O(d) worst-case where d is the dimension count; allocations happen
//     only in the operations documented as allocating.
package amount

// sameShape verifies that a and b may participate in a binary operation:
// identical variant and, for Dense, identical length.
//
// Complexity: O(1).
func (a Amount) sameShape(b Amount) error {
	if a.variant != b.variant || len(a.elems) != len(b.elems) {
		return ErrDimensionMismatch
	}

	return nil
}

// Dims returns the number of dimensions: the element count for Dense, 0 for
// Empty. Note that a zero-dimension Dense amount also reports 0; use IsEmpty
// to tell the variants apart.
//
// Complexity: O(1).
func (a Amount) Dims() int {
	return len(a.elems)
}

// IsEmpty reports whether a is the Empty (dimensionless neutral) variant.
//
// Complexity: O(1).
func (a Amount) IsEmpty() bool {
	return a.variant == variantEmpty
}

// At returns the element at dimension i.
// Returns ErrOutOfRange if i < 0 or i >= Dims(); an Empty amount has no
// valid index.
//
// Complexity: O(1).
func (a Amount) At(i int) (Capacity, error) {
	if i < 0 || i >= len(a.elems) {
		return 0, ErrOutOfRange
	}

	return a.elems[i], nil
}

// Clone returns a deep copy of a. The copy owns fresh element storage and
// evolves independently of the original.
//
// Complexity: O(d), one allocation for Dense, none for Empty.
func (a Amount) Clone() Amount {
	if a.variant == variantEmpty {
		return Amount{}
	}

	elems := make([]Capacity, len(a.elems))
	copy(elems, a.elems)

	return Amount{variant: variantDense, elems: elems}
}

// Add adds other into a elementwise (a += other).
// Returns ErrDimensionMismatch if the operands' shapes differ; a is left
// unchanged in that case. Adding to an Empty amount is a no-op.
//
// Complexity: O(d).
func (a *Amount) Add(other Amount) error {
	if err := a.sameShape(other); err != nil {
		return err
	}
	if a.variant == variantDense {
		denseAdd(a.elems, other.elems)
	}

	return nil
}

// Sub subtracts other from a elementwise (a -= other).
// Returns ErrDimensionMismatch if the operands' shapes differ; a is left
// unchanged in that case. Subtracting from an Empty amount is a no-op.
//
// Precondition: other must not exceed a elementwise. Sub does not clamp at
// zero, so violating the precondition yields negative elements.
//
// Complexity: O(d).
func (a *Amount) Sub(other Amount) error {
	if err := a.sameShape(other); err != nil {
		return err
	}
	if a.variant == variantDense {
		denseSub(a.elems, other.elems)
	}

	return nil
}

// MaxWith raises each element of a to other's element where other's is
// larger (elementwise maximum, in place). Applying it with a against a copy
// of itself is idempotent.
// Returns ErrDimensionMismatch if the operands' shapes differ. On an Empty
// amount it is a no-op.
//
// Complexity: O(d).
func (a *Amount) MaxWith(other Amount) error {
	if err := a.sameShape(other); err != nil {
		return err
	}
	if a.variant == variantDense {
		denseMax(a.elems, other.elems)
	}

	return nil
}

// SetZero resets every element of a to zero, preserving the variant and
// dimensionality. On an Empty amount it is a no-op.
//
// Complexity: O(d), no allocation.
func (a *Amount) SetZero() {
	if a.variant == variantDense {
		denseZero(a.elems)
	}
}

// Zero returns a new Amount with a's variant and dimensionality but every
// element reset to zero. Applying it twice is idempotent. The receiver is
// not modified.
//
// Complexity: O(d), one allocation for Dense.
func (a Amount) Zero() Amount {
	out := a.Clone()
	out.SetZero()

	return out
}

// Equal reports elementwise equality of a and other.
// Two Empty amounts are always equal. Returns ErrDimensionMismatch if the
// operands' shapes differ.
//
// Complexity: O(d).
func (a Amount) Equal(other Amount) (bool, error) {
	if err := a.sameShape(other); err != nil {
		return false, err
	}
	if a.variant == variantEmpty {
		return true, nil
	}

	return denseEqual(a.elems, other.elems), nil
}

// Less reports whether a strictly precedes other in lexicographic order:
// the first differing dimension decides. An Empty amount is never less.
// Returns ErrDimensionMismatch if the operands' shapes differ.
//
// Note that Less is a total order only within one dimensionality; across
// the package it behaves as a partial order (see doc.go).
//
// Complexity: O(d).
func (a Amount) Less(other Amount) (bool, error) {
	if err := a.sameShape(other); err != nil {
		return false, err
	}
	if a.variant == variantEmpty {
		return false, nil
	}

	return denseLess(a.elems, other.elems), nil
}

// LessOrEqual reports whether a precedes or equals other: Less OR Equal.
// Two Empty amounts always satisfy it. Returns ErrDimensionMismatch if the
// operands' shapes differ.
//
// Complexity: O(d).
func (a Amount) LessOrEqual(other Amount) (bool, error) {
	less, err := a.Less(other)
	if err != nil {
		return false, err
	}
	if less {
		return true, nil
	}

	// Shapes already validated by Less; Equal cannot fail here.
	eq, _ := a.Equal(other)

	return eq, nil
}

// FitsIn reports the componentwise bound: every element of a is at most
// other's element at the same dimension. This is the capacity-feasibility
// predicate (a load fits in a vehicle), distinct from the lexicographic
// LessOrEqual used to rank amounts: FitsIn can be false while LessOrEqual
// is true, and vice versa. Empty amounts trivially fit each other.
// Returns ErrDimensionMismatch if the operands' shapes differ.
//
// Complexity: O(d).
func (a Amount) FitsIn(other Amount) (bool, error) {
	if err := a.sameShape(other); err != nil {
		return false, err
	}
	if a.variant == variantEmpty {
		return true, nil
	}

	return denseFitsIn(a.elems, other.elems), nil
}

// Add returns a new Amount equal to a + b elementwise. Neither operand is
// modified. Returns ErrDimensionMismatch if the operands' shapes differ.
//
// Complexity: O(d), one allocation.
func Add(a, b Amount) (Amount, error) {
	out := a.Clone()
	if err := out.Add(b); err != nil {
		return Amount{}, err
	}

	return out, nil
}

// Sub returns a new Amount equal to a - b elementwise. Neither operand is
// modified. Returns ErrDimensionMismatch if the operands' shapes differ.
// The Sub method's no-clamping precondition applies unchanged.
//
// Complexity: O(d), one allocation.
func Sub(a, b Amount) (Amount, error) {
	out := a.Clone()
	if err := out.Sub(b); err != nil {
		return Amount{}, err
	}

	return out, nil
}
