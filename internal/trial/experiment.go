package trial

import "time"

// Experiment runs a fixed number of trials back to back and times the whole
// batch. Trials run sequentially; every piece of mutable state lives inside
// one Run call, so a parallel runner would only need to fan Run calls out.
type Experiment struct {
	Runner Runner
	Trials int
	// Observe, when set, is called with each result as it is produced.
	Observe func(Result)
}

// Report collects the outcome of an experiment.
type Report struct {
	Results []Result
	Elapsed time.Duration
}

// Ops returns the per-trial operation counts in trial order.
func (r Report) Ops() []int64 {
	ops := make([]int64, len(r.Results))
	for i, res := range r.Results {
		ops[i] = res.Ops
	}
	return ops
}

// Solved returns the number of trials that completed a board.
func (r Report) Solved() int {
	solved := 0
	for _, res := range r.Results {
		if res.Solved {
			solved++
		}
	}
	return solved
}

// Run executes all trials and returns the collected report.
func (e Experiment) Run() Report {
	results := make([]Result, 0, e.Trials)

	start := time.Now()
	for i := 1; i <= e.Trials; i++ {
		res := e.Runner.Run(i)
		if e.Observe != nil {
			e.Observe(res)
		}
		results = append(results, res)
	}

	return Report{
		Results: results,
		Elapsed: time.Since(start),
	}
}
