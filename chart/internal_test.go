package chart

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScale_MinimumEighth keeps tiny non-zero values visible.
func TestScale_MinimumEighth(t *testing.T) {
	peak := new(big.Int).Exp(big.NewInt(10), big.NewInt(90), nil)
	values := []*big.Int{big.NewInt(1), new(big.Int).Rsh(peak, 1), peak, big.NewInt(0)}

	assert.Equal(t, []int{1, 64, 128, 0}, scale(values, peak, 128))
	assert.Equal(t, []int{0, 0}, scale([]*big.Int{big.NewInt(1), big.NewInt(2)}, big.NewInt(0), 8))
}

// TestColumns caps wide columns, leaves a gap when there is room and falls
// back to one cell per column when bars outnumber cells.
func TestColumns(t *testing.T) {
	cols, colW, barW := columns(4, 37)
	assert.Equal(t, 4, cols)
	assert.Equal(t, maxColumnWidth, colW)
	assert.Equal(t, maxColumnWidth-1, barW)

	cols, colW, barW = columns(21, 70)
	assert.Equal(t, []int{21, 3, 2}, []int{cols, colW, barW})

	cols, colW, barW = columns(101, 70)
	assert.Equal(t, []int{70, 1, 1}, []int{cols, colW, barW})

	cols, colW, barW = columns(5, -3)
	assert.Equal(t, []int{1, 1, 1}, []int{cols, colW, barW})
}

// TestBucketMax keeps the tallest level of every merged group.
func TestBucketMax(t *testing.T) {
	levels := []int{1, 5, 2, 8, 3, 0, 7}
	assert.Equal(t, levels, bucketMax(levels, 7))
	assert.Equal(t, levels, bucketMax(levels, 10))

	// Columns: {0,1,2}=5 {3,4}=8 {5,6}=7.
	assert.Equal(t, []int{5, 8, 7}, bucketMax(levels, 3))
	assert.Equal(t, []int{8}, bucketMax(levels, 1))
}

// TestTicks_DropsOverlaps keeps the peak label even when neighbours collide.
func TestTicks_DropsOverlaps(t *testing.T) {
	assert.Equal(t, "0 1 2", ticks(3, 3, 0, 2, 2))

	// One cell per bar, 101 bars: steps of 5 fit three-digit-wide labels.
	line := ticks(101, 101, 50, 1, 1)
	assert.Contains(t, line, "50")
	assert.Contains(t, line, "100")
	assert.Contains(t, line, "25")
	assert.NotContains(t, line, "49")
}

// TestTicks_MergedColumns places labels by column when q_A values share cells.
func TestTicks_MergedColumns(t *testing.T) {
	line := ticks(101, 60, 50, 1, 1)
	assert.LessOrEqual(t, len(line), 60)
	assert.True(t, len(line) > 0 && line[0] == '0', "q_A=0 at the left edge: %q", line)
	assert.True(t, len(line) >= 3 && line[len(line)-3:] == "100", "q_total at the right edge: %q", line)
	assert.Contains(t, line, "50")
	assert.NotContains(t, line, "45", "steps of 5 do not fit in 0.6 cells per value")
}

// TestMidAxis labels the middle row with the Ω at its top edge.
func TestMidAxis(t *testing.T) {
	row, v := midAxis(big.NewInt(100), 16)
	assert.Equal(t, 7, row)
	assert.Equal(t, int64(50), v.Int64())

	row, v = midAxis(big.NewInt(10), 5)
	assert.Equal(t, 1, row, "second row from the bottom tops out at 2/5")
	assert.Equal(t, int64(4), v.Int64())

	row, v = midAxis(big.NewInt(10), 1)
	assert.Equal(t, -1, row)
	assert.Nil(t, v)
}
