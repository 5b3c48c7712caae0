// Package amount implements a variable-length capacity/quantity vector used
// to represent demand and capacity attributes (weight, volume, skill counts)
// inside routing and combinatorial optimization engines.
//
// 🚀 What is an Amount?
//
//	A small mathematical vector of Capacity scalars with two variants chosen
//	at construction:
//	  • Dense — a fixed-length element vector with elementwise add/sub/max,
//	    elementwise equality and strict lexicographic order
//	  • Empty — a dimensionless neutral placeholder, equal to any other
//	    Empty amount and never strictly less than anything
//
// ✨ Key features:
//   - closed inline variant (no interface dispatch, no per-value boxing)
//   - explicit Clone for independent copies; free Add/Sub return fresh values
//   - every binary operation checks dimensionality and returns
//     ErrDimensionMismatch on violation - a defined, testable failure
//     rather than silent out-of-range corruption
//   - Zero() derives an all-zero amount of the same shape, handy for
//     accumulators that must match an existing dimensionality
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/capvec/amount"
//
//	load := amount.FromSlice([]amount.Capacity{4, 6})
//	capacity := amount.FromSlice([]amount.Capacity{10, 10})
//
//	if err := load.Add(amount.FromSlice([]amount.Capacity{3, 2})); err != nil {
//	  // dimension mismatch
//	}
//	ok, _ := load.FitsIn(capacity) // true: [7 8] fits under [10 10]
//
// Value semantics:
//
//	Amount is a struct holding a slice, so plain Go assignment aliases the
//	element storage. Use Clone (or the free Add/Sub functions, which always
//	allocate their result) whenever two amounts must evolve independently.
//	Independent clones are safe to use from different goroutines; mutating
//	one Amount concurrently is not.
//
// Ordering:
//
//	Less is strict lexicographic order (first differing dimension decides),
//	and LessOrEqual is Less-or-Equal. Together with Equal they form a
//	partial order across variants: Empty amounts compare equal to each
//	other and are never less, while comparing Empty against Dense is a
//	dimension mismatch. Capacity feasibility is a different question:
//	FitsIn gives the componentwise bound and is NOT implied by (nor does
//	it imply) the lexicographic order.
//
// Subtraction precondition:
//
//	Sub does not clamp at zero. Capacities are conceptually non-negative,
//	so the subtrahend must not exceed the minuend elementwise; violating
//	that yields negative elements (or int64 wrap-around at the extremes),
//	which is the caller's bug, not a checked error.
//
// Performance: all operations are O(d) in the number of dimensions, with
// zero allocations except Clone, Zero, FromSlice, Zeros and the free
// Add/Sub functions.
//
// See examples in example_test.go.
package amount
