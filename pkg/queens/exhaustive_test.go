package queens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountAllSolutions(t *testing.T) {
	type tc struct {
		Name      string
		Size      int
		Solutions int64
		Nodes     int64 // 0 means not asserted
	}

	for _, tt := range []tc{
		{Name: "one", Size: 1, Solutions: 1, Nodes: 2},
		{Name: "two", Size: 2, Solutions: 0, Nodes: 3},
		{Name: "three", Size: 3, Solutions: 0, Nodes: 6},
		{Name: "four", Size: 4, Solutions: 2},
		{Name: "five", Size: 5, Solutions: 10},
		{Name: "six", Size: 6, Solutions: 4},
		{Name: "seven", Size: 7, Solutions: 40},
		{Name: "eight", Size: 8, Solutions: 92},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			nodes, solutions := CountAllSolutions(tt.Size)
			assert.Equal(t, tt.Solutions, solutions)
			if tt.Nodes > 0 {
				assert.Equal(t, tt.Nodes, nodes)
			}
			assert.GreaterOrEqual(t, nodes, solutions)
		})
	}
}
