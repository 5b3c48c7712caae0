// Package capvec provides multi-dimensional capacity and quantity vectors
// for vehicle-routing and combinatorial optimization engines.
//
// 🚀 What is capvec?
//
//	A small, pure-Go toolkit for the bookkeeping every capacitated solver
//	needs but keeps rewriting:
//		• Amount values: variable-length capacity vectors with elementwise
//		  add/sub/max, equality and lexicographic order
//		• Route load profiles: cumulative pickups/deliveries, peak loads,
//		  and O(1)-per-query insertion feasibility checks
//		• Solution summaries: aggregate totals across routes
//
// ✨ Why choose capvec?
//
//   - Value semantics you can trust – explicit Clone, fresh results from
//     every non-mutating operation, no hidden aliasing
//   - Defined failures – dimension mismatches are sentinel errors checked
//     on every binary operation, never silent corruption
//   - Pure Go – no cgo, no hidden deps
//   - Solver-friendly – designed for tight local-search inner loops
//
// Under the hood, everything is organized under three subpackages:
//
//	amount/   — the Amount vector value type and its Capacity scalar
//	route/    — per-vehicle load profiles and capacity feasibility predicates
//	solution/ — solution-level totals (cost, loads, timing)
//
// Quick ASCII example:
//
//	capacity [10 10]     jobs: d[4 0]  d[0 6]  p[3 2]
//	load     [4 6] ──► [0 6] ──► [0 0] ──► [3 2]
//
//	the route package tracks every intermediate load above and answers
//	"can I insert this job at rank k?" without rescanning the route.
//
// Dive into each package's doc.go for full examples.
//
//	go get github.com/katalvlaran/capvec/amount
package capvec
