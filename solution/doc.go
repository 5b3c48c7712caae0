// Package solution aggregates per-route results into solution-level
// totals: cost, counts, timing fields and the total pickup/delivery
// amounts, carried as capacity vectors from the amount package.
//
// A Summary starts from the problem's zero amount so its totals match the
// instance's dimensionality, then absorbs one route at a time:
//
//	s := solution.NewSummary(2, 0, zeroAmount)
//	_ = s.AddRoute(solution.RouteTotals{Cost: 1040, Pickup: p1, Delivery: d1})
//	_ = s.AddRoute(solution.RouteTotals{Cost: 980, Pickup: p2, Delivery: d2})
//
// Dimension mismatches between a route's amounts and the summary's shape
// surface as amount.ErrDimensionMismatch and leave the summary unchanged.
package solution
