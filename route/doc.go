// Package route maintains per-vehicle load profiles over an ordered job
// sequence and answers capacity-feasibility questions for local-search
// moves, built on the amount package's capacity vectors.
//
// 🚀 What is a Route?
//
//	A Route owns a vehicle capacity and a job sequence, and keeps derived
//	profiles in sync on every mutation:
//	  • forward/backward cumulative single-job pickups and deliveries
//	  • the vehicle load at every step (step 0 is the start, before any job)
//	  • forward/backward componentwise peak loads
//	  • pickup/delivery leg counts and capacity margins
//
// ✨ Key features:
//   - O(d) insertion feasibility: ValidAdditionForCapacity answers
//     "can this pickup/delivery be inserted at rank k?" from precomputed
//     peaks, without rescanning the route (d = capacity dimensions)
//   - margin-based range replacement checks for relocate/exchange moves
//   - mutators (Add, Remove, Replace, SetJobs) that rebuild every profile
//   - dimension mismatches surface as amount.ErrDimensionMismatch; rank
//     violations as route sentinels - never silent misreads
//
// 📦 Job model:
//
//	Jobs come in three kinds. A Single job both delivers (cargo carried
//	from the route start) and picks up (cargo carried to the route end).
//	Pickup/Delivery jobs are the two legs of a shipment moved within the
//	route. Every job carries both a Pickup and a Delivery amount; the leg
//	that does not apply must hold the zero amount of the capacity's shape,
//	so one uniform load recurrence covers all kinds:
//
//	  load[0]   = Σ single-job deliveries
//	  load[s+1] = load[s] + job[s].Pickup - job[s].Delivery
//
// ⚙️ Usage:
//
//	capacity := amount.FromSlice([]amount.Capacity{10})
//	r := route.New(capacity)
//	_ = r.SetJobs([]route.Job{
//	  route.SingleJob(amount.FromSlice([]amount.Capacity{2}), capacity.Zero()),
//	})
//	ok, _ := r.ValidAdditionForCapacity(pickup, delivery, 1)
//
// Ranks vs steps: a rank indexes a job (0..Size()-1); a step indexes a
// load snapshot (0..Size(), step 0 before any job, step s after serving
// rank s-1). Insertion ranks range over 0..Size() inclusive.
//
// A Route is not internally synchronized; confine each instance to one
// goroutine, as with amount values.
//
// See examples in example_test.go.
package route
