package delaunay

import (
	"fmt"

	"github.com/vivtrain/lowpoly-go/geom"
	"github.com/vivtrain/lowpoly-go/quadedge"
)

// edgeKey identifies a directed primal half-edge by its endpoints, for
// the "seen" and "owner" bookkeeping maps below. Two distinct Edge
// handles with the same origin and destination are the same logical
// edge of the planar subdivision.
type edgeKey struct {
	origin, dest geom.Point
}

func keyOf(e quadedge.Edge) (edgeKey, error) {
	origin, hasOrigin := e.Origin()
	dest, hasDest := e.Dest()
	if !hasOrigin || !hasDest {
		return edgeKey{}, fmt.Errorf("delaunay: extract triangles: %w: edge has no vertex coordinates", ErrInvariantViolated)
	}

	return edgeKey{origin: origin, dest: dest}, nil
}

// ExtractTriangles enumerates every triangular left face of the
// subdivision reachable from seed exactly once, as CCW vertex triples.
// The outer face is skipped: boundary cycles longer than three edges are
// never emitted, and a three-edge cycle is emitted only when its vertices
// run CCW (the outer face of a three-point hull runs clockwise). The
// traversal order of the result is unspecified.
func ExtractTriangles(seed quadedge.Edge) ([][3]geom.Point, error) {
	seen := make(map[edgeKey]bool)
	owner := make(map[edgeKey]*[3]geom.Point)
	var triangles []*[3]geom.Point

	stack := []quadedge.Edge{seed}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key, err := keyOf(e)
		if err != nil {
			return nil, err
		}
		if seen[key] {
			continue
		}

		boundary, err := walkLeftFace(e)
		if err != nil {
			return nil, err
		}

		if len(boundary) == 3 {
			p0, _ := boundary[0].Origin()
			p1, _ := boundary[1].Origin()
			p2, _ := boundary[2].Origin()
			if CCW(p0, p1, p2) {
				if err := claimTriangle(boundary, owner, &triangles); err != nil {
					return nil, err
				}
			}
		}

		// Only the directed boundary edges are marked: each one belongs to
		// exactly this left face, so the face across it stays reachable
		// through OPrev.
		for _, be := range boundary {
			k, err := keyOf(be)
			if err != nil {
				return nil, err
			}
			seen[k] = true
			stack = append(stack, be.OPrev())
		}
	}

	out := make([][3]geom.Point, len(triangles))
	for i, t := range triangles {
		out[i] = *t
	}

	return out, nil
}

// walkLeftFace collects the half-edges bounding e's left face in CCW
// order, starting at e, by repeatedly following LNext until it returns
// to e (invariant 6: the lnext cycle closes on the left face boundary).
func walkLeftFace(e quadedge.Edge) ([]quadedge.Edge, error) {
	boundary := []quadedge.Edge{e}
	cur := e.LNext()
	for !cur.Equal(e) {
		boundary = append(boundary, cur)
		cur = cur.LNext()
	}

	return boundary, nil
}

// claimTriangle emits the triangle bounded by boundary (a 3-edge CCW
// face) unless all three of its edges already belong to one previously
// recorded triangle record — the "same triangle record" duplicate guard
// the design calls for, which catches re-entry during DFS backtracking
// that a plain "all edges already seen" test can miss.
func claimTriangle(boundary []quadedge.Edge, owner map[edgeKey]*[3]geom.Point, triangles *[]*[3]geom.Point) error {
	keys := make([]edgeKey, len(boundary))
	for i, be := range boundary {
		k, err := keyOf(be)
		if err != nil {
			return err
		}
		keys[i] = k
	}

	common := owner[keys[0]]
	allSame := common != nil
	for _, k := range keys[1:] {
		if owner[k] != common {
			allSame = false

			break
		}
	}
	if allSame {
		return nil
	}

	var tri [3]geom.Point
	for i, be := range boundary {
		origin, has := be.Origin()
		if !has {
			return fmt.Errorf("delaunay: extract triangles: %w: boundary edge has no origin", ErrInvariantViolated)
		}
		tri[i] = origin
	}

	rec := &tri
	*triangles = append(*triangles, rec)
	for _, k := range keys {
		owner[k] = rec
	}

	return nil
}
