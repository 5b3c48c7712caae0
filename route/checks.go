// Package route - capacity feasibility predicates.
//
// These are the read-side queries local search hammers on: they combine
// precomputed peaks and margins with the candidate amounts, so a single
// check costs O(d) regardless of route length (except the full-range
// inclusion check, which simulates and is documented as such).
package route

import "github.com/katalvlaran/capvec/amount"

// fitsWithExtra reports whether base + extra stays under the capacity.
func (r *Route) fitsWithExtra(base, extra amount.Amount) (bool, error) {
	loaded, err := amount.Add(base, extra)
	if err != nil {
		return false, err
	}

	return loaded.FitsIn(r.capacity)
}

// ValidAdditionForCapacity reports whether a job with the given pickup and
// delivery can be inserted before rank (0..Size() inclusive) without
// breaking capacity anywhere on the route: the delivery rides every step
// up to the insertion point, the pickup rides every step after it, so the
// forward and backward peaks bound both sides.
//
// Complexity: O(d).
func (r *Route) ValidAdditionForCapacity(pickup, delivery amount.Amount, rank int) (bool, error) {
	if err := r.checkShape(pickup); err != nil {
		return false, err
	}
	if err := r.checkShape(delivery); err != nil {
		return false, err
	}
	if rank < 0 || rank > len(r.jobs) {
		return false, ErrRankOutOfRange
	}

	ok, err := r.fitsWithExtra(r.fwdPeaks[rank], delivery)
	if err != nil || !ok {
		return false, err
	}

	return r.fitsWithExtra(r.bwdPeaks[rank], pickup)
}

// ValidAdditionForLoad reports whether the current load at step rank
// (0..Size() inclusive) leaves room for an extra pickup, ignoring the rest
// of the route. Cheaper than ValidAdditionForCapacity when only the local
// load matters (e.g. shipment pickup legs whose delivery follows shortly).
//
// Complexity: O(d).
func (r *Route) ValidAdditionForLoad(pickup amount.Amount, rank int) (bool, error) {
	if err := r.checkShape(pickup); err != nil {
		return false, err
	}
	if rank < 0 || rank > len(r.jobs) {
		return false, ErrRankOutOfRange
	}

	return r.fitsWithExtra(r.currentLoads[rank], pickup)
}

// ValidAdditionForCapacityMargins reports whether replacing the ranks
// [first, last) with a load of the given total pickup and delivery keeps
// the single-job totals within capacity: the new delivery must fit in the
// delivery margin plus the replaced deliveries, and likewise for pickups.
// Requires 0 <= first <= last <= Size().
//
// This is the cheap necessary condition used to discard hopeless moves
// before any per-step check; it does not inspect intermediate loads.
//
// Complexity: O(d).
func (r *Route) ValidAdditionForCapacityMargins(pickup, delivery amount.Amount, first, last int) (bool, error) {
	if err := r.checkShape(pickup); err != nil {
		return false, err
	}
	if err := r.checkShape(delivery); err != nil {
		return false, err
	}
	if first < 0 || first > last || last > len(r.jobs) {
		return false, ErrBadRange
	}

	replacedPickups, replacedDeliveries := r.capacity.Zero(), r.capacity.Zero()
	if first < last {
		// Single-job sums over [first, last) from the forward prefixes.
		replacedPickups = r.fwdPickups[last-1].Clone()
		replacedDeliveries = r.fwdDeliveries[last-1].Clone()
		if first > 0 {
			if err := replacedPickups.Sub(r.fwdPickups[first-1]); err != nil {
				return false, err
			}
			if err := replacedDeliveries.Sub(r.fwdDeliveries[first-1]); err != nil {
				return false, err
			}
		}
	}

	deliveryRoom, err := amount.Add(r.deliveryMargin, replacedDeliveries)
	if err != nil {
		return false, err
	}
	ok, err := delivery.FitsIn(deliveryRoom)
	if err != nil || !ok {
		return false, err
	}

	pickupRoom, err := amount.Add(r.pickupMargin, replacedPickups)
	if err != nil {
		return false, err
	}

	return pickup.FitsIn(pickupRoom)
}

// ValidAdditionForCapacityInclusion reports whether replacing the ranks
// [first, last) with the given job range keeps the load under capacity at
// every step of the resulting route. Unlike the margin check this is exact
// for all job kinds: it replays the load recurrence over the spliced
// sequence. Requires 0 <= first <= last <= Size().
//
// Complexity: O((n+k)·d) with k = len(jobs).
func (r *Route) ValidAdditionForCapacityInclusion(jobs []Job, first, last int) (bool, error) {
	if err := r.checkJobs(jobs); err != nil {
		return false, err
	}
	if first < 0 || first > last || last > len(r.jobs) {
		return false, ErrBadRange
	}

	// Spliced sequence, read-only: no deep copies needed.
	spliced := make([]Job, 0, len(r.jobs)-(last-first)+len(jobs))
	spliced = append(spliced, r.jobs[:first]...)
	spliced = append(spliced, jobs...)
	spliced = append(spliced, r.jobs[last:]...)

	// Start load: every single-job delivery boards at the route start.
	load := r.capacity.Zero()
	for i := range spliced {
		if spliced[i].Kind != Single {
			continue
		}
		if err := load.Add(spliced[i].Delivery); err != nil {
			return false, err
		}
	}
	ok, err := load.FitsIn(r.capacity)
	if err != nil || !ok {
		return false, err
	}

	for i := range spliced {
		if err = load.Add(spliced[i].Pickup); err != nil {
			return false, err
		}
		if err = load.Sub(spliced[i].Delivery); err != nil {
			return false, err
		}
		if ok, err = load.FitsIn(r.capacity); err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}
