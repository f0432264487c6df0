package queens

// Counter tallies the work performed during one trial: node visits plus
// individual constraint checks. It is a cost metric only and never feeds back
// into the search. Each trial owns its own Counter; nothing in this package
// keeps process-wide state, so concurrent trials are safe as long as they do
// not share one.
type Counter struct {
	ops int64
}

// Inc charges one operation to the counter.
func (c *Counter) Inc() {
	c.ops++
}

// Ops returns the operations charged so far.
func (c *Counter) Ops() int64 {
	return c.ops
}

// Reset zeroes the counter for reuse by a subsequent trial.
func (c *Counter) Reset() {
	c.ops = 0
}
