package timegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tradingGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := Build(New(9, 15, 0), New(15, 30, 0), 1)
	require.NoError(t, err)
	return g
}

func TestBuild_TradingWindow(t *testing.T) {
	g := tradingGrid(t)

	// 09:15 to 15:30 inclusive at 1-minute steps
	assert.Equal(t, 376, g.Len())
	assert.Equal(t, New(9, 15, 0), g.At(0))
	assert.Equal(t, New(15, 30, 0), g.At(g.Len()-1))
}

func TestBuild_StrictlyIncreasing(t *testing.T) {
	g := tradingGrid(t)

	for i := 1; i < g.Len(); i++ {
		assert.Greater(t, int(g.At(i)), int(g.At(i-1)))
	}
}

func TestBuild_MinAfterMax(t *testing.T) {
	_, err := Build(New(15, 30, 0), New(9, 15, 0), 1)
	assert.Error(t, err)
}

func TestBuild_BadStep(t *testing.T) {
	_, err := Build(New(9, 15, 0), New(15, 30, 0), 0)
	assert.Error(t, err)
}

func TestIndexOf_ExactMembers(t *testing.T) {
	g := tradingGrid(t)

	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, i, g.IndexOf(g.At(i)))
	}
}

func TestIndexOf_NearestNeighbor(t *testing.T) {
	g := tradingGrid(t)

	// 09:15:20 is nearer to 09:15:00 than to 09:16:00
	assert.Equal(t, 0, g.IndexOf(New(9, 15, 20)))
	// 09:15:40 is nearer to 09:16:00
	assert.Equal(t, 1, g.IndexOf(New(9, 15, 40)))
}

func TestIndexOf_TieBreaksEarlier(t *testing.T) {
	g := tradingGrid(t)

	// 09:15:30 is equidistant from 09:15:00 and 09:16:00
	assert.Equal(t, 0, g.IndexOf(New(9, 15, 30)))
}

func TestIndexOf_OutOfRange(t *testing.T) {
	g := tradingGrid(t)

	assert.Equal(t, 0, g.IndexOf(New(0, 0, 0)))
	assert.Equal(t, g.Len()-1, g.IndexOf(New(23, 59, 59)))
}

func TestClamp(t *testing.T) {
	g := tradingGrid(t)

	assert.Equal(t, New(9, 15, 0), g.Clamp(New(8, 0, 0)))
	assert.Equal(t, New(15, 30, 0), g.Clamp(New(18, 0, 0)))
	assert.Equal(t, New(12, 0, 0), g.Clamp(New(12, 0, 0)))
}

func TestClamp_Idempotent(t *testing.T) {
	g := tradingGrid(t)

	for _, tm := range []TimeOfDay{New(8, 0, 0), New(9, 15, 0), New(12, 34, 56), New(15, 30, 0), New(23, 0, 0)} {
		once := g.Clamp(tm)
		assert.Equal(t, once, g.Clamp(once))
	}
}

func TestParse(t *testing.T) {
	tm, err := Parse("09:15:00")
	require.NoError(t, err)
	assert.Equal(t, New(9, 15, 0), tm)

	tm, err = Parse("15:30")
	require.NoError(t, err)
	assert.Equal(t, New(15, 30, 0), tm)

	for _, bad := range []string{"", "9", "25:00:00", "09:61:00", "09:15:99", "abc", "09:xx:00"} {
		_, err := Parse(bad)
		assert.Error(t, err, "expected parse error for %q", bad)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "09:15:00", New(9, 15, 0).String())
	assert.Equal(t, "15:30:00", New(15, 30, 0).String())
	assert.Equal(t, "00:00:05", New(0, 0, 5).String())
}

func TestLabels(t *testing.T) {
	g := tradingGrid(t)

	labels := g.Labels()
	require.Len(t, labels, g.Len())
	assert.Equal(t, "09:15:00", labels[0])
	assert.Equal(t, "09:16:00", labels[1])
	assert.Equal(t, "15:30:00", labels[len(labels)-1])
}
