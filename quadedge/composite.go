package quadedge

import (
	"fmt"

	"github.com/vivtrain/lowpoly-go/geom"
)

// MakeTriangle builds the smallest possible subdivision with a real
// interior face: three edges a->b, b->c, c->a spliced at consecutive
// sym/next pairs. Returns the edge from a to b.
func (m *Mesh) MakeTriangle(a, b, c geom.Point) (Edge, error) {
	ab := m.MakeEdge(a, b)
	bc := m.MakeEdge(b, c)
	ca := m.MakeEdge(c, a)

	if err := m.Splice(ab.Sym(), bc); err != nil {
		return Edge{}, fmt.Errorf("quadedge: make triangle: %w", err)
	}
	if err := m.Splice(bc.Sym(), ca); err != nil {
		return Edge{}, fmt.Errorf("quadedge: make triangle: %w", err)
	}
	if err := m.Splice(ca.Sym(), ab); err != nil {
		return Edge{}, fmt.Errorf("quadedge: make triangle: %w", err)
	}

	return ab, nil
}

// MakePolygon builds a closed cycle of edges points[0]->points[1]->...->
// points[n-1]->points[0] and returns the first of them. Requires at
// least three points.
func (m *Mesh) MakePolygon(points []geom.Point) (Edge, error) {
	if len(points) < 3 {
		return Edge{}, fmt.Errorf("quadedge: make polygon: %w: need at least 3 points, got %d", ErrInvalidInput, len(points))
	}

	first := m.MakeEdge(points[0], points[1])
	prev := first
	for i := 2; i < len(points); i++ {
		next := m.MakeEdge(points[i-1], points[i])
		if err := m.Splice(prev.Sym(), next); err != nil {
			return Edge{}, fmt.Errorf("quadedge: make polygon: %w", err)
		}
		prev = next
	}

	closing := m.MakeEdge(points[len(points)-1], points[0])
	if err := m.Splice(prev.Sym(), closing); err != nil {
		return Edge{}, fmt.Errorf("quadedge: make polygon: %w", err)
	}
	if err := m.Splice(closing.Sym(), first); err != nil {
		return Edge{}, fmt.Errorf("quadedge: make polygon: %w", err)
	}

	return first, nil
}
