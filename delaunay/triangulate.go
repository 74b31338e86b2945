package delaunay

import (
	"fmt"

	"github.com/vivtrain/lowpoly-go/geom"
	"github.com/vivtrain/lowpoly-go/quadedge"
)

// Triangulate builds the Delaunay triangulation of points and returns
// the CCW edge out of the leftmost hull vertex, from which the entire
// subdivision is reachable via Rot/ONext/Sym. Callers must eventually
// call quadedge.Mesh.FreeGraph (via FreeGraph in this package) on the
// returned edge to release the mesh.
//
// points must contain at least three entries and no duplicates; a copy
// of them is sorted lexicographically (SortLex's order) before recursion,
// per the design's preprocessing step, and points itself is not modified.
func Triangulate(points []geom.Point) (*quadedge.Mesh, quadedge.Edge, error) {
	if len(points) < 3 {
		return nil, quadedge.Edge{}, fmt.Errorf("delaunay: triangulate: %w: need at least 3 points, got %d", ErrInvalidInput, len(points))
	}

	sorted := make([]geom.Point, len(points))
	copy(sorted, points)
	geom.SortLex(sorted)

	m := quadedge.NewMesh()
	ldo, _, err := divideConquer(m, sorted)
	if err != nil {
		return nil, quadedge.Edge{}, err
	}

	return m, ldo, nil
}

// divideConquer implements the recursive core of the Guibas-Stolfi
// algorithm over pts[0:len(pts)], returning the CCW hull edge out of the
// leftmost point (ldo) and the CW hull edge out of the rightmost (rdo).
func divideConquer(m *quadedge.Mesh, pts []geom.Point) (ldo, rdo quadedge.Edge, err error) {
	n := len(pts)

	switch {
	case n == 2:
		e := m.MakeEdge(pts[0], pts[1])

		return e, e.Sym(), nil

	case n == 3:
		a, b, c := pts[0], pts[1], pts[2]
		ab := m.MakeEdge(a, b)
		bc := m.MakeEdge(b, c)
		if err := m.Splice(ab.Sym(), bc); err != nil {
			return quadedge.Edge{}, quadedge.Edge{}, fmt.Errorf("delaunay: triangulate base case: %w", err)
		}

		switch {
		case CCW(a, b, c):
			if _, err := m.Connect(bc, ab); err != nil {
				return quadedge.Edge{}, quadedge.Edge{}, fmt.Errorf("delaunay: triangulate base case: %w", err)
			}

			return ab, bc.Sym(), nil

		case CCW(a, c, b):
			ca, err := m.Connect(bc, ab)
			if err != nil {
				return quadedge.Edge{}, quadedge.Edge{}, fmt.Errorf("delaunay: triangulate base case: %w", err)
			}

			return ca.Sym(), ca, nil

		default:
			// Colinear: leave the two edges unconnected.
			return ab, bc.Sym(), nil
		}

	default:
		mid := n / 2
		ldo, ldi, err := divideConquer(m, pts[:mid])
		if err != nil {
			return quadedge.Edge{}, quadedge.Edge{}, err
		}
		rdi, rdo, err := divideConquer(m, pts[mid:])
		if err != nil {
			return quadedge.Edge{}, quadedge.Edge{}, err
		}

		return merge(m, ldo, ldi, rdi, rdo)
	}
}

// merge joins two adjacent subdivisions (left: ldo..ldi, right: rdi..rdo)
// along their lower, then upper, common tangent, flipping in any edge
// whose quadrilateral violates the empty-circumcircle property.
func merge(m *quadedge.Mesh, ldo, ldi, rdi, rdo quadedge.Edge) (quadedge.Edge, quadedge.Edge, error) {
	// Compute the lower common tangent.
	for {
		rdiOrigin, has := rdi.Origin()
		if !has {
			return quadedge.Edge{}, quadedge.Edge{}, fmt.Errorf("delaunay: merge: %w: rdi has no origin", ErrInvariantViolated)
		}
		if LeftOf(rdiOrigin, ldi) {
			ldi = ldi.LNext()
			continue
		}
		ldiOrigin, has := ldi.Origin()
		if !has {
			return quadedge.Edge{}, quadedge.Edge{}, fmt.Errorf("delaunay: merge: %w: ldi has no origin", ErrInvariantViolated)
		}
		if RightOf(ldiOrigin, rdi) {
			rdi = rdi.RPrev()
			continue
		}

		break
	}

	base, err := m.Connect(rdi.Sym(), ldi)
	if err != nil {
		return quadedge.Edge{}, quadedge.Edge{}, fmt.Errorf("delaunay: merge: lower tangent: %w", err)
	}

	if sameOrigin(ldi, ldo) {
		ldo = base.Sym()
	}
	if sameOrigin(rdi, rdo) {
		rdo = base
	}

	// Zipper upward to the upper common tangent.
	for {
		lcand := base.Sym().ONext()
		lcandValid := Above(lcand, base)
		if lcandValid {
			for {
				next := lcand.ONext()
				nextDest, hasNext := next.Dest()
				destLcand, _ := lcand.Dest()
				baseDest, _ := base.Dest()
				baseOrigin, _ := base.Origin()
				if !hasNext || !InCircle(baseDest, baseOrigin, destLcand, nextDest) {
					break
				}
				if err := m.Sever(lcand); err != nil {
					return quadedge.Edge{}, quadedge.Edge{}, fmt.Errorf("delaunay: merge: zipper: %w", err)
				}
				lcand = next
			}
		}

		rcand := base.OPrev()
		rcandValid := Above(rcand, base)
		if rcandValid {
			for {
				next := rcand.OPrev()
				nextDest, hasNext := next.Dest()
				destRcand, _ := rcand.Dest()
				baseDest, _ := base.Dest()
				baseOrigin, _ := base.Origin()
				if !hasNext || !InCircle(baseDest, baseOrigin, destRcand, nextDest) {
					break
				}
				if err := m.Sever(rcand); err != nil {
					return quadedge.Edge{}, quadedge.Edge{}, fmt.Errorf("delaunay: merge: zipper: %w", err)
				}
				rcand = next
			}
		}

		lValid := Above(lcand, base)
		rValid := Above(rcand, base)
		if !lValid && !rValid {
			break
		}

		lcandOrigin, _ := lcand.Origin()
		lcandDest, _ := lcand.Dest()
		rcandOrigin, _ := rcand.Origin()
		rcandDest, _ := rcand.Dest()

		if !lValid || (rValid && InCircle(lcandDest, lcandOrigin, rcandOrigin, rcandDest)) {
			base, err = m.Connect(rcand, base.Sym())
		} else {
			base, err = m.Connect(base.Sym(), lcand.Sym())
		}
		if err != nil {
			return quadedge.Edge{}, quadedge.Edge{}, fmt.Errorf("delaunay: merge: zipper connect: %w", err)
		}
	}

	return ldo, rdo, nil
}

func sameOrigin(a, b quadedge.Edge) bool {
	ao, hasA := a.Origin()
	bo, hasB := b.Origin()

	return hasA && hasB && ao == bo
}

// FreeGraph releases every record of the subdivision reachable from
// seed. It is the delaunay-facing alias of quadedge.Mesh.FreeGraph,
// matching the external interface in the design (§6: free_graph(half_edge)).
func FreeGraph(m *quadedge.Mesh, seed quadedge.Edge) {
	m.FreeGraph(seed)
}
