package route_test

import (
	"testing"

	"github.com/katalvlaran/capvec/amount"
	"github.com/katalvlaran/capvec/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoute_ValidAdditionForCapacity checks the peak-based insertion
// predicate on the mixed scenario (loads per step: [4 0 5 0 3]).
func TestRoute_ValidAdditionForCapacity(t *testing.T) {
	r := mixedRoute(t)

	// Inserting p=2/d=2 at rank 2: fwd peak 5+2=7 and bwd peak 5+2=7 fit.
	ok, err := r.ValidAdditionForCapacity(amt(2), amt(2), 2)
	require.NoError(t, err)
	assert.True(t, ok)

	// A pickup of 6 overloads the downstream peak (5+6 > 10).
	ok, err = r.ValidAdditionForCapacity(amt(6), amt(0), 2)
	require.NoError(t, err)
	assert.False(t, ok)

	// A delivery of 6 at the very start still fits exactly (4+6 = 10).
	ok, err = r.ValidAdditionForCapacity(amt(0), amt(6), 0)
	require.NoError(t, err)
	assert.True(t, ok)

	// But 7 does not.
	ok, err = r.ValidAdditionForCapacity(amt(0), amt(7), 0)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.ValidAdditionForCapacity(amt(1), amt(1), 5)
	assert.ErrorIs(t, err, route.ErrRankOutOfRange)
}

// TestRoute_ValidAdditionForLoad checks the single-step load predicate.
func TestRoute_ValidAdditionForLoad(t *testing.T) {
	r := mixedRoute(t)

	// Load at step 2 is 5: another 5 fits exactly, 6 does not.
	ok, err := r.ValidAdditionForLoad(amt(5), 2)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.ValidAdditionForLoad(amt(6), 2)
	require.NoError(t, err)
	assert.False(t, ok)

	// Step 1 carries no load at all.
	ok, err = r.ValidAdditionForLoad(amt(10), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = r.ValidAdditionForLoad(amt(1), -1)
	assert.ErrorIs(t, err, route.ErrRankOutOfRange)
}

// TestRoute_ValidAdditionForCapacityMargins checks the margin-based range
// replacement predicate: replaced single amounts widen the margins.
func TestRoute_ValidAdditionForCapacityMargins(t *testing.T) {
	r := mixedRoute(t)

	// Replacing rank 0 (single, delivers 4) frees 4 delivery units:
	// margin 6 + 4 = 10, so a delivery of 9 passes the margin test.
	ok, err := r.ValidAdditionForCapacityMargins(amt(0), amt(9), 0, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	// A pickup of 8 exceeds pickup margin 7 + replaced 0.
	ok, err = r.ValidAdditionForCapacityMargins(amt(8), amt(0), 0, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	// Pure insertion (empty range) falls back to the bare margins.
	ok, err = r.ValidAdditionForCapacityMargins(amt(7), amt(6), 2, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.ValidAdditionForCapacityMargins(amt(7), amt(7), 2, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.ValidAdditionForCapacityMargins(amt(1), amt(1), 3, 2)
	assert.ErrorIs(t, err, route.ErrBadRange)
}

// TestRoute_ValidAdditionForCapacityInclusion checks the exact spliced
// replay: every intermediate load of the hypothetical route must fit.
func TestRoute_ValidAdditionForCapacityInclusion(t *testing.T) {
	r := mixedRoute(t)

	// Replace the shipment legs (ranks [1,3)) with a single delivering 6:
	// start load 4+6 = 10 fits, and every later step only sheds load.
	ok, err := r.ValidAdditionForCapacityInclusion(
		[]route.Job{route.SingleJob(amt(0), amt(6))}, 1, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	// Delivering 7 pushes the start load to 11.
	ok, err = r.ValidAdditionForCapacityInclusion(
		[]route.Job{route.SingleJob(amt(0), amt(7))}, 1, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	// A full-capacity shipment fits only while nothing else is on board:
	// inserting it at the very start collides with the 4 units of single
	// deliveries loaded there, but replacing rank 0 removes them first.
	heavy := []route.Job{route.PickupJob(amt(10)), route.DeliveryJob(amt(10))}
	ok, err = r.ValidAdditionForCapacityInclusion(heavy, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok, "10 in transit on top of the 4-unit start load overloads")
	ok, err = r.ValidAdditionForCapacityInclusion(heavy, 0, 1)
	require.NoError(t, err)
	assert.True(t, ok, "with rank 0 replaced the shipment travels alone")

	_, err = r.ValidAdditionForCapacityInclusion(nil, 0, 5)
	assert.ErrorIs(t, err, route.ErrBadRange)
	_, err = r.ValidAdditionForCapacityInclusion(
		[]route.Job{route.SingleJob(amount.Empty(), amount.Empty())}, 0, 0)
	assert.ErrorIs(t, err, amount.ErrDimensionMismatch)
}

// TestRoute_ChecksDoNotMutate verifies the predicates are read-only: the
// profiles must be byte-for-byte reusable after a burst of queries.
func TestRoute_ChecksDoNotMutate(t *testing.T) {
	r := mixedRoute(t)
	before := r.MaxLoad()

	for rank := 0; rank <= r.Size(); rank++ {
		_, err := r.ValidAdditionForCapacity(amt(3), amt(3), rank)
		require.NoError(t, err)
		_, err = r.ValidAdditionForLoad(amt(3), rank)
		require.NoError(t, err)
	}
	_, err := r.ValidAdditionForCapacityMargins(amt(3), amt(3), 0, 4)
	require.NoError(t, err)
	_, err = r.ValidAdditionForCapacityInclusion(nil, 1, 3)
	require.NoError(t, err)

	eq, err := r.MaxLoad().Equal(before)
	require.NoError(t, err)
	assert.True(t, eq, "feasibility checks must not mutate the profiles")
}
