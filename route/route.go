// Package route - route mutation and profile maintenance.
//
// Every mutator validates its inputs, splices the job sequence, and rebuilds
// the full profile set in O(n·d) (n jobs, d capacity dimensions). Local
// search calls the read-side predicates in checks.go far more often than it
// commits a move, so the rebuild cost is paid only on accepted moves.
package route

import "github.com/katalvlaran/capvec/amount"

// checkShape verifies that a may be combined with the vehicle capacity.
// Returns amount.ErrDimensionMismatch on violation.
func (r *Route) checkShape(a amount.Amount) error {
	if a.IsEmpty() != r.capacity.IsEmpty() || a.Dims() != r.capacity.Dims() {
		return amount.ErrDimensionMismatch
	}

	return nil
}

// checkJobs validates every job amount in js against the capacity shape.
func (r *Route) checkJobs(js []Job) error {
	for i := range js {
		if err := r.checkShape(js[i].Pickup); err != nil {
			return err
		}
		if err := r.checkShape(js[i].Delivery); err != nil {
			return err
		}
	}

	return nil
}

// cloneJobs deep-copies js so the stored route never aliases caller amounts.
func cloneJobs(js []Job) []Job {
	out := make([]Job, len(js))
	for i, j := range js {
		out[i] = Job{Kind: j.Kind, Pickup: j.Pickup.Clone(), Delivery: j.Delivery.Clone()}
	}

	return out
}

// SetJobs replaces the whole job sequence and rebuilds all profiles.
// Returns amount.ErrDimensionMismatch if any job amount does not match the
// vehicle capacity's shape; the route is left unchanged in that case.
//
// Complexity: O(n·d).
func (r *Route) SetJobs(jobs []Job) error {
	if err := r.checkJobs(jobs); err != nil {
		return err
	}
	r.jobs = cloneJobs(jobs)

	return r.rebuild()
}

// Add inserts job before rank (0..Size() inclusive) and rebuilds.
// Returns ErrRankOutOfRange or amount.ErrDimensionMismatch on bad input,
// leaving the route unchanged.
//
// Complexity: O(n·d).
func (r *Route) Add(job Job, rank int) error {
	if rank < 0 || rank > len(r.jobs) {
		return ErrRankOutOfRange
	}
	if err := r.checkJobs([]Job{job}); err != nil {
		return err
	}

	jobs := make([]Job, 0, len(r.jobs)+1)
	jobs = append(jobs, r.jobs[:rank]...)
	jobs = append(jobs, Job{Kind: job.Kind, Pickup: job.Pickup.Clone(), Delivery: job.Delivery.Clone()})
	jobs = append(jobs, r.jobs[rank:]...)
	r.jobs = jobs

	return r.rebuild()
}

// Remove drops count jobs starting at rank and rebuilds.
// Requires 0 <= rank, count >= 1 and rank+count <= Size(); otherwise
// ErrBadRange is returned and the route is unchanged.
//
// Complexity: O(n·d).
func (r *Route) Remove(rank, count int) error {
	if rank < 0 || count < 1 || rank+count > len(r.jobs) {
		return ErrBadRange
	}
	r.jobs = append(r.jobs[:rank], r.jobs[rank+count:]...)

	return r.rebuild()
}

// Replace substitutes the ranks [first, last) with jobs and rebuilds.
// Requires 0 <= first <= last <= Size(); otherwise ErrBadRange. Job shape
// violations return amount.ErrDimensionMismatch. The route is unchanged on
// any error.
//
// Complexity: O((n+k)·d) with k = len(jobs).
func (r *Route) Replace(jobs []Job, first, last int) error {
	if first < 0 || first > last || last > len(r.jobs) {
		return ErrBadRange
	}
	if err := r.checkJobs(jobs); err != nil {
		return err
	}

	next := make([]Job, 0, len(r.jobs)-(last-first)+len(jobs))
	next = append(next, r.jobs[:first]...)
	next = append(next, cloneJobs(jobs)...)
	next = append(next, r.jobs[last:]...)
	r.jobs = next

	return r.rebuild()
}

// rebuild recomputes every derived profile from r.jobs. All operands share
// the capacity's shape (enforced by the mutators), so the amount error
// paths below are unreachable; they are still propagated rather than
// swallowed.
func (r *Route) rebuild() error {
	n := len(r.jobs)
	zero := r.capacity.Zero()

	r.fwdPickups = make([]amount.Amount, n)
	r.fwdDeliveries = make([]amount.Amount, n)
	r.bwdPickups = make([]amount.Amount, n)
	r.bwdDeliveries = make([]amount.Amount, n)
	r.nbPickups = make([]int, n)
	r.nbDeliveries = make([]int, n)
	r.currentLoads = make([]amount.Amount, n+1)
	r.fwdPeaks = make([]amount.Amount, n+1)
	r.bwdPeaks = make([]amount.Amount, n+1)

	// Forward cumulative singles and shipment leg counts.
	curPickups := zero.Clone()
	curDeliveries := zero.Clone()
	nbP, nbD := 0, 0
	for i, j := range r.jobs {
		switch j.Kind {
		case Single:
			if err := curPickups.Add(j.Pickup); err != nil {
				return err
			}
			if err := curDeliveries.Add(j.Delivery); err != nil {
				return err
			}
		case Pickup:
			nbP++
		case Delivery:
			nbD++
		}
		r.fwdPickups[i] = curPickups.Clone()
		r.fwdDeliveries[i] = curDeliveries.Clone()
		r.nbPickups[i] = nbP
		r.nbDeliveries[i] = nbD
	}
	r.jobPickupsSum = curPickups.Clone()
	r.jobDeliveriesSum = curDeliveries.Clone()

	// Backward pending singles: entry i covers ranks strictly after i.
	bwdP := zero.Clone()
	bwdD := zero.Clone()
	for i := n - 1; i >= 0; i-- {
		r.bwdPickups[i] = bwdP.Clone()
		r.bwdDeliveries[i] = bwdD.Clone()
		if r.jobs[i].Kind == Single {
			if err := bwdP.Add(r.jobs[i].Pickup); err != nil {
				return err
			}
			if err := bwdD.Add(r.jobs[i].Delivery); err != nil {
				return err
			}
		}
	}

	// Load per step: all single deliveries board at the start, then the
	// uniform recurrence load[s+1] = load[s] + pickup - delivery.
	load := r.jobDeliveriesSum.Clone()
	r.currentLoads[0] = load.Clone()
	for i, j := range r.jobs {
		if err := load.Add(j.Pickup); err != nil {
			return err
		}
		if err := load.Sub(j.Delivery); err != nil {
			return err
		}
		r.currentLoads[i+1] = load.Clone()
	}

	// Componentwise peaks over step prefixes and suffixes.
	peak := r.currentLoads[0].Clone()
	r.fwdPeaks[0] = peak.Clone()
	for s := 1; s <= n; s++ {
		if err := peak.MaxWith(r.currentLoads[s]); err != nil {
			return err
		}
		r.fwdPeaks[s] = peak.Clone()
	}
	peak = r.currentLoads[n].Clone()
	r.bwdPeaks[n] = peak.Clone()
	for s := n - 1; s >= 0; s-- {
		if err := peak.MaxWith(r.currentLoads[s]); err != nil {
			return err
		}
		r.bwdPeaks[s] = peak.Clone()
	}

	// Margins: what capacity leaves beyond the single-job totals.
	dm, err := amount.Sub(r.capacity, r.jobDeliveriesSum)
	if err != nil {
		return err
	}
	pm, err := amount.Sub(r.capacity, r.jobPickupsSum)
	if err != nil {
		return err
	}
	r.deliveryMargin = dm
	r.pickupMargin = pm

	return nil
}

// Empty reports whether the route serves no job.
func (r *Route) Empty() bool { return len(r.jobs) == 0 }

// Size returns the number of jobs on the route.
func (r *Route) Size() int { return len(r.jobs) }

// Capacity returns a clone of the vehicle capacity.
func (r *Route) Capacity() amount.Amount { return r.capacity.Clone() }

// MaxLoad returns the componentwise peak load over all steps (a clone).
// For an empty route this is the zero amount of the capacity's shape.
func (r *Route) MaxLoad() amount.Amount {
	return r.fwdPeaks[len(r.jobs)].Clone()
}

// JobPickupsSum returns the total single-job pickups (a clone).
func (r *Route) JobPickupsSum() amount.Amount { return r.jobPickupsSum.Clone() }

// JobDeliveriesSum returns the total single-job deliveries (a clone).
func (r *Route) JobDeliveriesSum() amount.Amount { return r.jobDeliveriesSum.Clone() }

// DeliveryMargin returns capacity minus the single-job delivery total.
func (r *Route) DeliveryMargin() amount.Amount { return r.deliveryMargin.Clone() }

// PickupMargin returns capacity minus the single-job pickup total.
func (r *Route) PickupMargin() amount.Amount { return r.pickupMargin.Clone() }

// FwdPickups returns the cumulative single-job pickups over ranks [0, i].
// Rank must be in [0, Size()).
func (r *Route) FwdPickups(i int) (amount.Amount, error) {
	if i < 0 || i >= len(r.jobs) {
		return amount.Amount{}, ErrRankOutOfRange
	}

	return r.fwdPickups[i].Clone(), nil
}

// FwdDeliveries returns the cumulative single-job deliveries over ranks
// [0, i]. Rank must be in [0, Size()).
func (r *Route) FwdDeliveries(i int) (amount.Amount, error) {
	if i < 0 || i >= len(r.jobs) {
		return amount.Amount{}, ErrRankOutOfRange
	}

	return r.fwdDeliveries[i].Clone(), nil
}

// BwdPickups returns the single-job pickups still pending after serving
// rank i (ranks strictly greater than i). Rank must be in [0, Size()).
func (r *Route) BwdPickups(i int) (amount.Amount, error) {
	if i < 0 || i >= len(r.jobs) {
		return amount.Amount{}, ErrRankOutOfRange
	}

	return r.bwdPickups[i].Clone(), nil
}

// BwdDeliveries returns the single-job deliveries still pending after
// serving rank i (ranks strictly greater than i). Rank must be in
// [0, Size()).
func (r *Route) BwdDeliveries(i int) (amount.Amount, error) {
	if i < 0 || i >= len(r.jobs) {
		return amount.Amount{}, ErrRankOutOfRange
	}

	return r.bwdDeliveries[i].Clone(), nil
}

// PickupInRange sums the pickup amounts of all jobs (any kind) in ranks
// [i, j). Requires 0 <= i <= j <= Size().
//
// Complexity: O((j-i)·d).
func (r *Route) PickupInRange(i, j int) (amount.Amount, error) {
	if i < 0 || i > j || j > len(r.jobs) {
		return amount.Amount{}, ErrBadRange
	}

	sum := r.capacity.Zero()
	for k := i; k < j; k++ {
		if err := sum.Add(r.jobs[k].Pickup); err != nil {
			return amount.Amount{}, err
		}
	}

	return sum, nil
}

// DeliveryInRange sums the delivery amounts of all jobs (any kind) in
// ranks [i, j). Requires 0 <= i <= j <= Size().
//
// Complexity: O((j-i)·d).
func (r *Route) DeliveryInRange(i, j int) (amount.Amount, error) {
	if i < 0 || i > j || j > len(r.jobs) {
		return amount.Amount{}, ErrBadRange
	}

	sum := r.capacity.Zero()
	for k := i; k < j; k++ {
		if err := sum.Add(r.jobs[k].Delivery); err != nil {
			return amount.Amount{}, err
		}
	}

	return sum, nil
}

// HasPickupUpToRank reports whether any shipment pickup leg sits at a rank
// in [0, rank]. Rank must be in [0, Size()).
func (r *Route) HasPickupUpToRank(rank int) (bool, error) {
	if rank < 0 || rank >= len(r.jobs) {
		return false, ErrRankOutOfRange
	}

	return r.nbPickups[rank] > 0, nil
}

// HasDeliveryAfterRank reports whether any shipment delivery leg sits at a
// rank strictly greater than rank. Rank must be in [0, Size()).
func (r *Route) HasDeliveryAfterRank(rank int) (bool, error) {
	n := len(r.jobs)
	if rank < 0 || rank >= n {
		return false, ErrRankOutOfRange
	}

	return r.nbDeliveries[n-1] > r.nbDeliveries[rank], nil
}

// HasPendingDeliveryAfterRank reports whether a shipment picked up at or
// before rank is still awaiting its delivery leg after rank: strictly more
// pickup legs than delivery legs in [0, rank]. Rank must be in [0, Size()).
func (r *Route) HasPendingDeliveryAfterRank(rank int) (bool, error) {
	if rank < 0 || rank >= len(r.jobs) {
		return false, ErrRankOutOfRange
	}

	return r.nbPickups[rank] > r.nbDeliveries[rank], nil
}
