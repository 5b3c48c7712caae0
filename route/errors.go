// Package route: sentinel error set.
// Shape violations reuse amount.ErrDimensionMismatch so callers match one
// sentinel across both packages; only rank/range violations get local ones.
package route

import "errors"

var (
	// ErrRankOutOfRange indicates a job rank or step outside the valid
	// bounds for the queried operation (see each method's documented range).
	ErrRankOutOfRange = errors.New("route: rank out of range")

	// ErrBadRange indicates an invalid [first, last) rank range: first > last,
	// negative bounds, or last beyond the route size.
	ErrBadRange = errors.New("route: invalid rank range")
)
