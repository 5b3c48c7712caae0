package solution_test

import (
	"testing"

	"github.com/katalvlaran/capvec/amount"
	"github.com/katalvlaran/capvec/solution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSummary_Accumulate verifies that AddRoute sums costs, timing fields
// and amounts across routes.
func TestSummary_Accumulate(t *testing.T) {
	zero := amount.Zeros(2)
	s := solution.NewSummary(2, 1, zero)

	assert.Equal(t, uint32(2), s.Routes)
	assert.Equal(t, uint32(1), s.Unassigned)

	require.NoError(t, s.AddRoute(solution.RouteTotals{
		Cost:     1040,
		Duration: 600,
		Pickup:   amount.FromSlice([]amount.Capacity{3, 0}),
		Delivery: amount.FromSlice([]amount.Capacity{4, 2}),
	}))
	require.NoError(t, s.AddRoute(solution.RouteTotals{
		Cost:     980,
		Duration: 540,
		Pickup:   amount.FromSlice([]amount.Capacity{1, 5}),
		Delivery: amount.FromSlice([]amount.Capacity{0, 1}),
	}))

	assert.Equal(t, int64(2020), s.Cost)
	assert.Equal(t, int64(1140), s.Duration)

	eq, err := s.Pickup.Equal(amount.FromSlice([]amount.Capacity{4, 5}))
	require.NoError(t, err)
	assert.True(t, eq, "pickups must sum componentwise")
	eq, err = s.Delivery.Equal(amount.FromSlice([]amount.Capacity{4, 3}))
	require.NoError(t, err)
	assert.True(t, eq, "deliveries must sum componentwise")
}

// TestSummary_ZeroShape verifies that NewSummary derives its totals from
// the supplied zero amount's shape, including the Empty placeholder.
func TestSummary_ZeroShape(t *testing.T) {
	dense := solution.NewSummary(0, 0, amount.Zeros(3))
	assert.Equal(t, 3, dense.Pickup.Dims())
	assert.False(t, dense.Pickup.IsEmpty())

	empty := solution.NewSummary(0, 0, amount.Empty())
	assert.True(t, empty.Pickup.IsEmpty(), "Empty shape must carry through")
	require.NoError(t, empty.AddRoute(solution.RouteTotals{
		Cost:     5,
		Pickup:   amount.Empty(),
		Delivery: amount.Empty(),
	}))
	assert.Equal(t, int64(5), empty.Cost)
}

// TestSummary_MismatchLeavesIntact verifies that a dimension mismatch
// rejects the whole route contribution atomically.
func TestSummary_MismatchLeavesIntact(t *testing.T) {
	s := solution.NewSummary(1, 0, amount.Zeros(2))

	err := s.AddRoute(solution.RouteTotals{
		Cost:     100,
		Pickup:   amount.FromSlice([]amount.Capacity{1, 2}),
		Delivery: amount.Zeros(3), // wrong shape
	})
	assert.ErrorIs(t, err, amount.ErrDimensionMismatch)

	assert.Equal(t, int64(0), s.Cost, "failed AddRoute must not change the cost")
	eq, err := s.Pickup.Equal(amount.Zeros(2))
	require.NoError(t, err)
	assert.True(t, eq, "failed AddRoute must not change the pickup total")
}
