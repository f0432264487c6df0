package queens

// CountAllSolutions runs the full classical backtracking search over an n×n
// board and returns the number of nodes visited and the number of complete
// solutions. It is the ground truth the randomized descent estimates: the
// node count here is what Descent's NodesEstimate approximates over many
// trials.
func CountAllSolutions(n int) (nodes, solutions int64) {
	p := NewPlacement(n)
	var ops Counter

	var walk func(row int)
	walk = func(row int) {
		nodes++
		if row == n {
			solutions++
			return
		}
		for col := 0; col < n; col++ {
			p[row] = col
			if IsPromising(p, row, &ops) {
				walk(row + 1)
			}
		}
		p[row] = Unassigned
	}

	walk(0)
	return nodes, solutions
}
