package solve

import (
	"fmt"
	"strings"

	"github.com/montecarlo-framework/monty/internal/solver"
	"github.com/montecarlo-framework/monty/pkg/queens"
)

// CellID returns the identifier of the variable standing for a queen placed
// at (row, col).
func CellID(row, col int) solver.Identifier {
	return solver.Identifier(fmt.Sprintf("%d-%d", row, col))
}

func rowAnchorID(row int) solver.Identifier {
	return solver.Identifier(fmt.Sprintf("row %d has a queen", row))
}

// Constraints encodes an n×n N-Queens board. One variable stands for a queen
// on each cell; a mandatory anchor per row requires at least one of that
// row's cells; pairs of mutually attacking cells conflict.
func Constraints(n int) []solver.Constraint {
	var cs []solver.Constraint

	// every row holds a queen
	for row := 0; row < n; row++ {
		cells := make([]solver.Identifier, n)
		for col := 0; col < n; col++ {
			cells[col] = CellID(row, col)
		}
		anchor := rowAnchorID(row)
		cs = append(cs, solver.Mandatory(anchor))
		cs = append(cs, solver.Dependency(anchor, cells...))
	}

	// no two queens share a row
	for row := 0; row < n; row++ {
		for colA := 0; colA < n; colA++ {
			for colB := colA + 1; colB < n; colB++ {
				cs = append(cs, solver.Conflict(CellID(row, colA), CellID(row, colB)))
			}
		}
	}

	// no two queens share a column or a diagonal; every cell conflicts
	// with the cells it attacks in later rows
	for rowA := 0; rowA < n; rowA++ {
		for colA := 0; colA < n; colA++ {
			for rowB := rowA + 1; rowB < n; rowB++ {
				for colB := 0; colB < n; colB++ {
					if colA == colB || abs(colA-colB) == rowB-rowA {
						cs = append(cs, solver.Conflict(CellID(rowA, colA), CellID(rowB, colB)))
					}
				}
			}
		}
	}

	return cs
}

// Board converts a solver selection back into a placement. Identifiers that
// are not cell variables (the row anchors) are ignored.
func Board(n int, selection []solver.Identifier) (queens.Placement, error) {
	p := queens.NewPlacement(n)
	for _, id := range selection {
		if strings.HasPrefix(string(id), "row ") {
			continue
		}
		var row, col int
		if _, err := fmt.Sscanf(string(id), "%d-%d", &row, &col); err != nil {
			return nil, fmt.Errorf("unexpected variable (%s) in solution: %w", id, err)
		}
		if p[row] != queens.Unassigned {
			return nil, fmt.Errorf("row %d holds more than one queen", row)
		}
		p[row] = col
	}
	for row, col := range p {
		if col == queens.Unassigned {
			return nil, fmt.Errorf("row %d holds no queen", row)
		}
	}
	return p, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
