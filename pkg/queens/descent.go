package queens

import "math/rand"

// Descent is a one-shot randomized descent through the placement tree. At
// each row it enumerates every column consistent with the rows committed so
// far and commits one of them uniformly at random. It is deliberately not a
// complete backtracking search: the choice at each row is made exactly once
// and never revisited, so a descent either reaches a full board or dies at
// the first row whose promising set is empty. Dying is a normal outcome, not
// an error.
//
// Along the way the descent accumulates the Monte Carlo estimate of the full
// backtracking tree size, 1 + m1 + m1*m2 + ..., where mi is the size of the
// promising set at level i.
type Descent struct {
	rng *rand.Rand
	ops *Counter

	estimate int64
	product  int64
}

// NewDescent returns a descent drawing from rng and charging its work to ops.
func NewDescent(rng *rand.Rand, ops *Counter) *Descent {
	return &Descent{
		rng:      rng,
		ops:      ops,
		estimate: 1, // root node
		product:  1,
	}
}

// Attempt places queens from row onward, assuming rows < row are committed
// and mutually consistent. It returns true when every row holds a queen and
// false when the promising set for some row comes up empty. Each call entry
// counts as one node visit against the counter; each candidate column costs
// its IsPromising evaluation. Neither row nor the placement bounds are
// validated here, that is the caller's contract.
func (d *Descent) Attempt(p Placement, row int) bool {
	d.ops.Inc()

	if row >= len(p) {
		return true
	}

	// Evaluate all columns for this row. No short-circuit across columns:
	// the promising set must be complete before a choice is made, because
	// enumeration order in [0, N) fixes the selection probabilities.
	promising := make([]int, 0, len(p))
	for col := 0; col < len(p); col++ {
		p[row] = col
		if IsPromising(p, row, d.ops) {
			promising = append(promising, col)
		}
	}

	if len(promising) == 0 {
		return false
	}

	d.product *= int64(len(promising))
	d.estimate += d.product

	p[row] = promising[d.rng.Intn(len(promising))]
	return d.Attempt(p, row+1)
}

// NodesEstimate returns the search-tree size estimate accumulated by the
// rows descended so far. A dead end keeps the partial sum: the path walked up
// to that point still contributes to the estimate.
func (d *Descent) NodesEstimate() int64 {
	return d.estimate
}
