package solution

import "github.com/katalvlaran/capvec/amount"

// RouteTotals carries one route's contribution to a Summary. The zero
// value of each numeric field is a valid "nothing to add".
type RouteTotals struct {
	Cost        int64
	Setup       int64
	Service     int64
	Duration    int64
	WaitingTime int64
	Distance    int64
	Priority    int64
	Pickup      amount.Amount
	Delivery    amount.Amount
}

// Summary holds solution-level totals across all routes.
type Summary struct {
	Cost       int64
	Routes     uint32
	Unassigned uint32

	Delivery amount.Amount
	Pickup   amount.Amount

	Setup       int64
	Service     int64
	Priority    int64
	Duration    int64
	WaitingTime int64
	Distance    int64
}

// NewSummary returns a Summary for the given route and unassigned-job
// counts, with pickup/delivery totals starting from clones of zero (an
// all-zero amount of the instance's dimensionality, typically
// capacity.Zero() of any vehicle).
func NewSummary(routes, unassigned uint32, zero amount.Amount) Summary {
	return Summary{
		Routes:     routes,
		Unassigned: unassigned,
		Delivery:   zero.Zero(),
		Pickup:     zero.Zero(),
	}
}

// AddRoute accumulates one route's totals into s. Returns
// amount.ErrDimensionMismatch if the route's amounts do not match the
// summary's shape; s is left unchanged in that case.
func (s *Summary) AddRoute(t RouteTotals) error {
	pickup, err := amount.Add(s.Pickup, t.Pickup)
	if err != nil {
		return err
	}
	delivery, err := amount.Add(s.Delivery, t.Delivery)
	if err != nil {
		return err
	}

	s.Pickup = pickup
	s.Delivery = delivery
	s.Cost += t.Cost
	s.Setup += t.Setup
	s.Service += t.Service
	s.Priority += t.Priority
	s.Duration += t.Duration
	s.WaitingTime += t.WaitingTime
	s.Distance += t.Distance

	return nil
}
