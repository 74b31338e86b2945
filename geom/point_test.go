package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vivtrain/lowpoly-go/geom"
)

func TestPoint_Less(t *testing.T) {
	assert.True(t, geom.Point{X: 0, Y: 0}.Less(geom.Point{X: 1, Y: 0}))
	assert.True(t, geom.Point{X: 1, Y: 0}.Less(geom.Point{X: 1, Y: 1}))
	assert.False(t, geom.Point{X: 1, Y: 1}.Less(geom.Point{X: 1, Y: 1}))
	assert.False(t, geom.Point{X: 1, Y: 1}.Less(geom.Point{X: 0, Y: 5}))
}

func TestSortLex(t *testing.T) {
	pts := []geom.Point{
		{X: 2, Y: 0},
		{X: 0, Y: 1},
		{X: 0, Y: 0},
		{X: 1, Y: -1},
	}
	geom.SortLex(pts)

	assert.Equal(t, []geom.Point{
		{X: 0, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: -1},
		{X: 2, Y: 0},
	}, pts)
}

func TestDedup_EmptySlice(t *testing.T) {
	var pts []geom.Point
	assert.Empty(t, geom.Dedup(pts))
}

func TestDedup_NoDuplicates(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	assert.Equal(t, pts, geom.Dedup(pts))
}

func TestDedup_AllDuplicates(t *testing.T) {
	pts := []geom.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}
	assert.Equal(t, []geom.Point{{X: 1, Y: 1}}, geom.Dedup(pts))
}

func TestDedup_MixedRuns(t *testing.T) {
	pts := []geom.Point{
		{X: 0, Y: 0},
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 0},
		{X: 2, Y: 0},
	}
	assert.Equal(t, []geom.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 2, Y: 0},
	}, geom.Dedup(pts))
}

func TestDedup_OnlyRemovesConsecutiveDuplicates(t *testing.T) {
	// Not sorted: the same point appears twice non-consecutively. Dedup
	// only collapses adjacent runs, matching its documented contract of
	// operating on a lexicographically sorted slice.
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	assert.Equal(t, pts, geom.Dedup(pts))
}
