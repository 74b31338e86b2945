package delaunay_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivtrain/lowpoly-go/delaunay"
	"github.com/vivtrain/lowpoly-go/geom"
)

func triangulateAndExtract(t *testing.T, pts []geom.Point) [][3]geom.Point {
	t.Helper()
	mesh, seed, err := delaunay.Triangulate(pts)
	require.NoError(t, err)
	defer delaunay.FreeGraph(mesh, seed)

	tris, err := delaunay.ExtractTriangles(seed)
	require.NoError(t, err)

	return tris
}

// TestTriangulate_SingleTriangle reproduces the spec's concrete scenario 3.
func TestTriangulate_SingleTriangle(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}}
	tris := triangulateAndExtract(t, pts)

	require.Len(t, tris, 1)
	assert.ElementsMatch(t, pts, tris[0][:])
	assert.True(t, delaunay.CCW(tris[0][0], tris[0][1], tris[0][2]))
}

// TestTriangulate_Square reproduces the spec's concrete scenario 4: a
// 4x4 square triangulates into exactly two CCW triangles that together
// use all four of its corners.
func TestTriangulate_Square(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	tris := triangulateAndExtract(t, pts)

	require.Len(t, tris, 2)
	for _, tri := range tris {
		assert.True(t, delaunay.CCW(tri[0], tri[1], tri[2]))
	}

	// Every input point appears in some triangle.
	seen := map[geom.Point]bool{}
	for _, tri := range tris {
		for _, p := range tri {
			seen[p] = true
		}
	}
	for _, p := range pts {
		assert.True(t, seen[p], "point %v missing from output", p)
	}
}

// TestTriangulate_Colinear reproduces the spec's concrete scenario 5: no
// triangles are emitted for three colinear points.
func TestTriangulate_Colinear(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}}
	tris := triangulateAndExtract(t, pts)
	assert.Empty(t, tris)
}

func TestTriangulate_RejectsFewerThanThreePoints(t *testing.T) {
	_, _, err := delaunay.Triangulate([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, delaunay.ErrInvalidInput)
}

// TestTriangulate_EmptyCircumcircle reproduces the spec's concrete
// scenario 6: 100 uniform random points plus the four corners, checked
// against the empty-circumcircle property for every emitted triangle.
func TestTriangulate_EmptyCircumcircle(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	seen := map[geom.Point]bool{
		{X: 0, Y: 0}:     true,
		{X: 0, Y: 100}:   true,
		{X: 100, Y: 0}:   true,
		{X: 100, Y: 100}: true,
	}
	pts := make([]geom.Point, 0, len(seen)+100)
	for p := range seen {
		pts = append(pts, p)
	}
	for len(pts) < 104 {
		p := geom.Point{X: 1 + rng.IntN(99), Y: 1 + rng.IntN(99)}
		if seen[p] {
			continue
		}
		seen[p] = true
		pts = append(pts, p)
	}

	tris := triangulateAndExtract(t, pts)
	require.NotEmpty(t, tris)

	for _, tri := range tris {
		for _, p := range pts {
			if p == tri[0] || p == tri[1] || p == tri[2] {
				continue
			}
			assert.False(t, delaunay.InCircle(tri[0], tri[1], tri[2], p),
				"point %v inside circumcircle of %v", p, tri)
		}
		assert.True(t, delaunay.CCW(tri[0], tri[1], tri[2]))
	}
}

// TestTriangulate_EulerRelation checks the Euler relation on the convex
// hull: for n points in general position with h on the hull, the number
// of emitted triangles equals 2n - h - 2. Here the hull is the four
// corners of a 10x10 square (h = 4) around three interior points
// (n = 7), giving 2*7 - 4 - 2 = 8 triangles.
func TestTriangulate_EulerRelation(t *testing.T) {
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		{X: 4, Y: 4}, {X: 6, Y: 3}, {X: 3, Y: 7},
	}
	n, h := len(pts), 4
	tris := triangulateAndExtract(t, pts)
	assert.Len(t, tris, 2*n-h-2)
}

// TestTriangulate_Coverage checks that every input point appears as the
// origin of at least one emitted triangle.
func TestTriangulate_Coverage(t *testing.T) {
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		{X: 5, Y: 5}, {X: 2, Y: 8}, {X: 8, Y: 2},
	}
	tris := triangulateAndExtract(t, pts)

	asOrigin := map[geom.Point]bool{}
	for _, tri := range tris {
		for _, p := range tri {
			asOrigin[p] = true
		}
	}
	for _, p := range pts {
		assert.True(t, asOrigin[p], "point %v never appears in a triangle", p)
	}
}
