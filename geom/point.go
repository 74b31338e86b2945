package geom

import "sort"

// Point is an integer 2-vector. The zero value is the origin.
type Point struct {
	X, Y int
}

// Less reports whether p sorts strictly before q under the lexicographic
// order on (X, Y) used to preprocess the point set before triangulation.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}

	return p.Y < q.Y
}

// SortLex sorts pts in place lexicographically by (X, Y). Triangulate
// sorts a copy of its input this way before building the mesh.
func SortLex(pts []Point) {
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
}

// Dedup removes consecutive duplicate points from a lexicographically
// sorted slice, returning the shortened slice. Triangulate does not accept
// duplicate points; callers that cannot guarantee a deduplicated point set
// should call this after SortLex.
func Dedup(pts []Point) []Point {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}

	return out
}
