// Package amount: element kernels of the Dense variant.
//
// Every function here assumes both slices have equal length; the Amount
// methods enforce that (returning ErrDimensionMismatch) before dispatching,
// so the kernels stay branch-light for the solver inner loop.
package amount

// denseAdd adds src into dst elementwise.
// Complexity: O(d).
func denseAdd(dst, src []Capacity) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// denseSub subtracts src from dst elementwise. No clamping at zero; the
// subtrahend-not-exceeding-minuend precondition is the caller's to uphold.
// Complexity: O(d).
func denseSub(dst, src []Capacity) {
	for i := range dst {
		dst[i] -= src[i]
	}
}

// denseMax raises each dst element to src's when src's is larger.
// Complexity: O(d).
func denseMax(dst, src []Capacity) {
	for i := range dst {
		if dst[i] < src[i] {
			dst[i] = src[i]
		}
	}
}

// denseZero resets every element to the Capacity zero value.
// Complexity: O(d).
func denseZero(dst []Capacity) {
	for i := range dst {
		dst[i] = 0
	}
}

// denseEqual reports elementwise equality.
// Complexity: O(d), short-circuits on the first differing element.
func denseEqual(a, b []Capacity) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// denseFitsIn reports the componentwise bound: every a element at most b's.
// Complexity: O(d), short-circuits on the first violating element.
func denseFitsIn(a, b []Capacity) bool {
	for i := range a {
		if b[i] < a[i] {
			return false
		}
	}

	return true
}

// denseLess reports strict lexicographic order: the first differing
// dimension decides; if every dimension before the last ties, the result is
// whether a's last element is strictly smaller. A zero-length vector is
// never less than another.
// Complexity: O(d), short-circuits on the first differing element.
func denseLess(a, b []Capacity) bool {
	if len(a) == 0 {
		return false
	}

	last := len(a) - 1
	for i := 0; i < last; i++ {
		if a[i] < b[i] {
			return true
		}
		if a[i] > b[i] {
			return false
		}
	}

	return a[last] < b[last]
}
