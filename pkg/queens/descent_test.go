package queens

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descend(n int, seed int64) (bool, *Counter, Placement, int64) {
	rng := rand.New(rand.NewSource(seed))
	var ops Counter
	p := NewPlacement(n)
	d := NewDescent(rng, &ops)
	solved := d.Attempt(p, 0)
	return solved, &ops, p, d.NodesEstimate()
}

func TestSingleQueenAlwaysSucceeds(t *testing.T) {
	for seed := int64(0); seed < 32; seed++ {
		solved, ops, p, estimate := descend(1, seed)
		require.True(t, solved)
		assert.Equal(t, Placement{0}, p)
		// Entry at row 0, one IsPromising entry, entry at the terminal row.
		assert.Equal(t, int64(3), ops.Ops())
		assert.Equal(t, int64(2), estimate)
	}
}

func TestImpossibleSizesNeverSucceed(t *testing.T) {
	for _, n := range []int{2, 3} {
		for seed := int64(0); seed < 256; seed++ {
			solved, ops, _, _ := descend(n, seed)
			assert.False(t, solved, "size %d seed %d", n, seed)
			assert.Positive(t, ops.Ops())
		}
	}
}

func TestTwelveQueensTrials(t *testing.T) {
	const (
		n      = 12
		trials = 1000
		bound  = int64(n * n * n)
	)

	successes := 0
	for seed := int64(1); seed <= trials; seed++ {
		solved, ops, p, estimate := descend(n, seed)
		require.Positive(t, ops.Ops())
		require.LessOrEqual(t, ops.Ops(), bound)
		require.Positive(t, estimate)
		if solved {
			successes++
			// A success must be a valid board.
			var check Counter
			for row := 1; row < n; row++ {
				require.True(t, IsPromising(p, row, &check))
			}
		}
	}
	assert.Positive(t, successes)
}

func TestDescentIsDeterministicUnderFixedSeed(t *testing.T) {
	for seed := int64(0); seed < 16; seed++ {
		solvedA, opsA, boardA, estimateA := descend(12, seed)
		solvedB, opsB, boardB, estimateB := descend(12, seed)

		assert.Equal(t, solvedA, solvedB)
		assert.Equal(t, opsA.Ops(), opsB.Ops())
		assert.Equal(t, boardA, boardB)
		assert.Equal(t, estimateA, estimateB)
	}
}

func TestDescentLeavesCommittedPrefixIntact(t *testing.T) {
	// A descent started above row 0 must not touch the committed rows.
	rng := rand.New(rand.NewSource(7))
	var ops Counter
	p := NewPlacement(6)
	p[0] = 1
	d := NewDescent(rng, &ops)
	d.Attempt(p, 1)
	assert.Equal(t, 1, p[0])
}

func TestCounterReset(t *testing.T) {
	var ops Counter
	ops.Inc()
	ops.Inc()
	assert.Equal(t, int64(2), ops.Ops())
	ops.Reset()
	assert.Equal(t, int64(0), ops.Ops())
}
