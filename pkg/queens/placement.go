package queens

import "strings"

// Unassigned marks a row that does not hold a committed queen yet.
const Unassigned = -1

// Placement assigns a column to each row of the board. placement[row] = col
// means the queen in that row sits at that column, or Unassigned if the row
// has not been decided. Rows below the frontier of a search are committed and
// mutually non-conflicting; rows at and above it are scratch values.
type Placement []int

// NewPlacement returns a placement of size n with every row unassigned.
func NewPlacement(n int) Placement {
	p := make(Placement, n)
	for i := range p {
		p[i] = Unassigned
	}
	return p
}

// IsPromising reports whether the tentative column held at row conflicts with
// any queen committed in rows < row. Two queens conflict when they share a
// column, or when they share a diagonal: the absolute difference of their
// columns equals the absolute difference of their rows. The scan stops at the
// first conflicting row. Every entry and every row comparison is charged to
// ops.
func IsPromising(p Placement, row int, ops *Counter) bool {
	ops.Inc()

	for i := 0; i < row; i++ {
		ops.Inc()

		if p[i] == p[row] {
			return false
		}
		if abs(p[i]-p[row]) == abs(i-row) {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// String renders the placement as a board, one row per line, with Q for a
// queen and . for an empty square. Unassigned rows render as all dots.
func (p Placement) String() string {
	var sb strings.Builder
	for row := 0; row < len(p); row++ {
		for col := 0; col < len(p); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if p[row] == col {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
