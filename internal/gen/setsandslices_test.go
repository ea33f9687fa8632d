//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgSortDesc(t *testing.T) {
	assert.Equal(t, []int{1, 3, 0, 2}, ArgSortDesc([]float64{0.2, 0.9, 0.1, 0.5}))
	// ties hold their order
	assert.Equal(t, []int{0, 1, 2}, ArgSortDesc([]int{4, 4, 4}))
	assert.Equal(t, []int{1, 3}, TopN([]float64{0.2, 0.9, 0.1, 0.5}, 2))
	assert.Len(t, TopN([]int{1, 2}, 10), 2)
}

func TestChunkSlice(t *testing.T) {
	c := ChunkSlice([]int{1, 2, 3, 4, 5}, 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, c)
	assert.Equal(t, [][]int{{1, 2}}, ChunkSlice([]int{1, 2}, 0))
}

func TestToSet(t *testing.T) {
	s := ToSet([]string{"x", "y", "x"})
	assert.Len(t, s, 2)
	assert.Contains(t, s, "y")
}
