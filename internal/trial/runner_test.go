package trial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIsReproducibleUnderFixedSeed(t *testing.T) {
	r := Runner{Size: 12, Seed: FixedSeed(42)}

	first := r.Run(3)
	second := r.Run(3)

	assert.Equal(t, first, second)
}

func TestRunsAreIsolated(t *testing.T) {
	r := Runner{Size: 12, Seed: FixedSeed(42)}

	before := r.Run(1)
	// Interleaving other trials must not leak board or counter state into
	// a repeat of the first one.
	r.Run(2)
	r.Run(3)
	after := r.Run(1)

	assert.Equal(t, before, after)
}

func TestSeedSpreadSeparatesAdjacentTrials(t *testing.T) {
	seed := FixedSeed(0)
	assert.NotEqual(t, seed(1), seed(2))
	assert.Equal(t, seed(1)+1000, seed(2))
}

func TestDefaultSeedIsWallClock(t *testing.T) {
	// Runner with a nil Seed must still run; outcomes vary, the contract
	// does not.
	r := Runner{Size: 4}
	res := r.Run(1)
	assert.Equal(t, 1, res.Trial)
	assert.Positive(t, res.Ops)
}

func TestExperimentCollectsAllTrials(t *testing.T) {
	e := Experiment{
		Runner: Runner{Size: 12, Seed: FixedSeed(7)},
		Trials: 50,
	}

	var observed []Result
	e.Observe = func(res Result) { observed = append(observed, res) }

	report := e.Run()
	require.Len(t, report.Results, 50)
	assert.Equal(t, report.Results, observed)
	assert.GreaterOrEqual(t, report.Elapsed, time.Duration(0))

	ops := report.Ops()
	require.Len(t, ops, 50)
	for i, res := range report.Results {
		assert.Equal(t, i+1, res.Trial)
		assert.Equal(t, res.Ops, ops[i])
		assert.Positive(t, ops[i])
	}
	assert.LessOrEqual(t, report.Solved(), 50)
}
