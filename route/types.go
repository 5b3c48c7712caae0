// Package route: domain types and constructors.
package route

import "github.com/katalvlaran/capvec/amount"

// JobKind discriminates the three job kinds a route can serve.
type JobKind uint8

const (
	// Single is a standalone job: its Delivery rides from the route start,
	// its Pickup rides to the route end.
	Single JobKind = iota
	// Pickup is the collecting leg of a shipment moved within the route.
	Pickup
	// Delivery is the dropping leg of a shipment moved within the route.
	Delivery
)

// Job is one serviced stop on a route. Both amounts must share the vehicle
// capacity's shape; the leg that does not apply to the kind holds the zero
// amount (see the package doc's load recurrence).
type Job struct {
	Kind     JobKind
	Pickup   amount.Amount
	Delivery amount.Amount
}

// SingleJob builds a Single job from its pickup and delivery amounts.
func SingleJob(pickup, delivery amount.Amount) Job {
	return Job{Kind: Single, Pickup: pickup, Delivery: delivery}
}

// PickupJob builds a shipment pickup leg collecting load.
// The delivery side is fixed to load's zero shape.
func PickupJob(load amount.Amount) Job {
	return Job{Kind: Pickup, Pickup: load, Delivery: load.Zero()}
}

// DeliveryJob builds a shipment delivery leg dropping load.
// The pickup side is fixed to load's zero shape.
func DeliveryJob(load amount.Amount) Job {
	return Job{Kind: Delivery, Pickup: load.Zero(), Delivery: load}
}

// Route tracks the load profile of one vehicle over an ordered job
// sequence. All derived state below is rebuilt by every mutator, so the
// feasibility predicates read precomputed amounts only.
//
// Profile index conventions (n = Size()):
//   - per-rank slices have length n; entry i covers job rank i
//   - per-step slices have length n+1; entry 0 is the route start, entry
//     s (s >= 1) is the state after serving rank s-1
type Route struct {
	capacity amount.Amount
	jobs     []Job

	// Cumulative single-job amounts: fwd entries cover ranks [0, i],
	// bwd entries cover ranks (i, n) - the singles still pending after
	// serving rank i.
	fwdPickups    []amount.Amount
	fwdDeliveries []amount.Amount
	bwdPickups    []amount.Amount
	bwdDeliveries []amount.Amount

	// Shipment leg counts up to rank i inclusive.
	nbPickups    []int
	nbDeliveries []int

	// Vehicle load per step and componentwise peaks: fwdPeaks[s] maxes
	// loads over steps [0, s], bwdPeaks[s] over steps [s, n].
	currentLoads []amount.Amount
	fwdPeaks     []amount.Amount
	bwdPeaks     []amount.Amount

	// Totals over single jobs and the margins capacity leaves them.
	jobPickupsSum    amount.Amount
	jobDeliveriesSum amount.Amount
	pickupMargin     amount.Amount
	deliveryMargin   amount.Amount
}

// New returns an empty Route for a vehicle of the given capacity. The
// capacity is cloned; the caller's amount stays independent.
func New(capacity amount.Amount) *Route {
	r := &Route{capacity: capacity.Clone()}
	// Rebuilding an empty route only combines clones of the capacity's
	// zero shape, so the error path is unreachable.
	_ = r.rebuild()

	return r
}
