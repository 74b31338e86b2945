package delaunay

import (
	"github.com/vivtrain/lowpoly-go/geom"
	"github.com/vivtrain/lowpoly-go/quadedge"
)

// CCW reports whether a, b, c are in strict counter-clockwise order,
// i.e. the signed area of triangle abc is strictly positive. Colinear
// points are not CCW. Exact for int64 arithmetic over the design's
// assumed coordinate range.
func CCW(a, b, c geom.Point) bool {
	return signedArea2(a, b, c) > 0
}

func signedArea2(a, b, c geom.Point) int64 {
	ax, ay := int64(a.X), int64(a.Y)
	bx, by := int64(b.X), int64(b.Y)
	cx, cy := int64(c.X), int64(c.Y)

	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

// LeftOf reports whether p lies strictly to the left of e, i.e. in the
// half-plane containing e's left face.
func LeftOf(p geom.Point, e quadedge.Edge) bool {
	origin, dest := endpoints(e)

	return CCW(p, origin, dest)
}

// RightOf reports whether p lies strictly to the right of e.
func RightOf(p geom.Point, e quadedge.Edge) bool {
	origin, dest := endpoints(e)

	return CCW(p, dest, origin)
}

// Above reports whether test's destination lies above base, where
// "above" is relative to base oriented left-to-right. Used while
// zippering the merge step's upper common tangent.
func Above(test, base quadedge.Edge) bool {
	dest, has := test.Dest()
	if !has {
		return false
	}

	return RightOf(dest, base)
}

// InCircle reports whether d lies strictly inside the circle through a,
// b, and c. The predicate is orientation-independent: it evaluates the
// sign of the 4x4 determinant whose i-th row is (xi, yi, xi^2+yi^2, 1)
// and flips it according to whether a, b, c are themselves CCW.
func InCircle(a, b, c, d geom.Point) bool {
	det := inCircleDet(a, b, c, d)
	if CCW(a, b, c) {
		return det > 0
	}

	return det < 0
}

func inCircleDet(a, b, c, d geom.Point) int64 {
	row := func(p geom.Point) [4]int64 {
		x, y := int64(p.X), int64(p.Y)

		return [4]int64{x, y, x*x + y*y, 1}
	}
	m := [4][4]int64{row(a), row(b), row(c), row(d)}

	return det4x4(m)
}

// det3x3 evaluates a 3x3 determinant by cofactor expansion along the
// first row.
func det3x3(m [3][3]int64) int64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// det4x4 evaluates a 4x4 determinant by cofactor expansion along the
// first row, bottoming out in det3x3 minors.
func det4x4(m [4][4]int64) int64 {
	minor := func(skipCol int) [3][3]int64 {
		var out [3][3]int64
		for r := 1; r < 4; r++ {
			col := 0
			for c := 0; c < 4; c++ {
				if c == skipCol {
					continue
				}
				out[r-1][col] = m[r][c]
				col++
			}
		}

		return out
	}

	var det int64
	sign := int64(1)
	for c := 0; c < 4; c++ {
		det += sign * m[0][c] * det3x3(minor(c))
		sign = -sign
	}

	return det
}

// endpoints returns e's origin and destination coordinates. It panics if
// either is missing, which indicates e is a dual half-edge passed where
// a primal one was required — a programmer error the predicates in this
// package never expect to recover from.
func endpoints(e quadedge.Edge) (origin, dest geom.Point) {
	o, hasO := e.Origin()
	d, hasD := e.Dest()
	if !hasO || !hasD {
		panic("delaunay: predicate applied to an edge without vertex coordinates")
	}

	return o, d
}
