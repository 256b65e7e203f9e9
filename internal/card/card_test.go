package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGrid returns a structurally valid 5x5 grid as row slices.
func testGrid() [][]int {
	return [][]int{
		{1, 16, 31, 46, 61},
		{2, 17, 32, 47, 62},
		{3, 18, 0, 48, 63},
		{4, 19, 34, 49, 64},
		{5, 20, 35, 50, 65},
	}
}

func TestNewRejectsWrongShape(t *testing.T) {
	_, err := New([][]int{{1, 2, 3}})
	assert.Error(t, err)

	bad := testGrid()
	bad[3] = []int{1, 2, 3}
	_, err = New(bad)
	assert.Error(t, err)

	_, err = New(append(testGrid(), []int{6, 21, 36, 51, 66}))
	assert.Error(t, err)
}

func TestNewForcesCenterMark(t *testing.T) {
	c, err := New(testGrid())
	require.NoError(t, err)
	assert.True(t, c.Marked(CenterRow, CenterCol))
	assert.Equal(t, FreeValue, c.Value(CenterRow, CenterCol))
}

func TestNumbersSkipsCenter(t *testing.T) {
	c, err := New(testGrid())
	require.NoError(t, err)
	nums := c.Numbers()
	assert.Len(t, nums, 24)
	assert.NotContains(t, nums, 0)
	assert.Equal(t, 1, nums[0])
	assert.Equal(t, 65, nums[len(nums)-1])
}

func TestPosition(t *testing.T) {
	c, err := New(testGrid())
	require.NoError(t, err)

	r, col, ok := c.Position(48)
	require.True(t, ok)
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, col)

	_, _, ok = c.Position(75)
	assert.False(t, ok)

	// The free value never resolves to the center cell.
	_, _, ok = c.Position(FreeValue)
	assert.False(t, ok)
}

func TestMark(t *testing.T) {
	c, err := New(testGrid())
	require.NoError(t, err)

	assert.True(t, c.Mark(17))
	assert.True(t, c.Marked(1, 1))

	// Idempotent.
	assert.True(t, c.Mark(17))
	assert.True(t, c.Marked(1, 1))

	// Absent number marks nothing.
	before := c.Marks()
	assert.False(t, c.Mark(99))
	assert.Equal(t, before, c.Marks())
}

func TestValidate(t *testing.T) {
	c, err := New(testGrid())
	require.NoError(t, err)
	assert.NoError(t, c.Validate())

	// Out-of-range column value.
	bad := testGrid()
	bad[0][0] = 16
	c, err = New(bad)
	require.NoError(t, err)
	assert.Error(t, c.Validate())

	// Duplicate value.
	bad = testGrid()
	bad[4][0] = bad[0][0]
	c, err = New(bad)
	require.NoError(t, err)
	assert.Error(t, c.Validate())

	// Nonzero center.
	bad = testGrid()
	bad[CenterRow][CenterCol] = 33
	c, err = New(bad)
	require.NoError(t, err)
	assert.Error(t, c.Validate())
}

func TestGridAndMarksAreCopies(t *testing.T) {
	c, err := New(testGrid())
	require.NoError(t, err)

	g := c.Grid()
	g[0][0] = 99
	assert.Equal(t, 1, c.Value(0, 0))

	m := c.Marks()
	m[0][0] = true
	assert.False(t, c.Marked(0, 0))
}

func TestRender(t *testing.T) {
	c, err := New(testGrid())
	require.NoError(t, err)
	c.Mark(1)

	out := c.Render()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, Size+1)
	assert.Contains(t, lines[0], "B")
	assert.Contains(t, lines[0], "O")
	assert.Contains(t, out, "FREE")
	assert.Contains(t, lines[1], "[  1]")
}
