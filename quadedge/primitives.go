package quadedge

import (
	"fmt"

	"github.com/vivtrain/lowpoly-go/geom"
)

// MakeEdge allocates a new quartet of half-edges representing an isolated
// edge from tail to head: no other topology references it, and it bounds
// a single enclosing face. Returns the primal half-edge tail -> head.
// O(1).
func (m *Mesh) MakeEdge(tail, head geom.Point) Edge {
	base := int32(len(m.records))
	m.records = append(m.records,
		edgeRecord{onext: base + 0, origin: tail, hasOrigin: true, alive: true},  // e0: primal, tail->head
		edgeRecord{onext: base + 3, hasOrigin: false, alive: true},               // e1: dual
		edgeRecord{onext: base + 2, origin: head, hasOrigin: true, alive: true},  // e2: sym, head->tail
		edgeRecord{onext: base + 1, hasOrigin: false, alive: true},               // e3: dual sym
	)

	return Edge{mesh: m, idx: base}
}

func swapONext(a, b Edge) {
	ra := a.mesh.rec(a.idx)
	rb := b.mesh.rec(b.idx)
	ra.onext, rb.onext = rb.onext, ra.onext
}

// Splice is the fundamental topological operator: it exchanges the
// origin rings of a and b (and, independently, the rings of their duals).
// If a and b share an origin ring before the call they end up in
// separate rings; if they were separate they end up merged. Splice is
// its own inverse. a and b must both be primal or both be dual.
func (m *Mesh) Splice(a, b Edge) error {
	if a.IsPrimal() != b.IsPrimal() {
		return fmt.Errorf("quadedge: splice: %w: mixed primal/dual half-edges", ErrInvariantViolated)
	}

	alpha := a.ONext().Rot()
	beta := b.ONext().Rot()

	swapONext(alpha, beta)
	swapONext(a, b)

	return nil
}

// Connect creates a new primal edge from dest(a) to origin(b) that lies
// in the face to the left of both a and b, and returns it oriented that
// way. a and b must both have an origin and a destination coordinate.
func (m *Mesh) Connect(a, b Edge) (Edge, error) {
	ad, hasAD := a.Dest()
	bo, hasBO := b.Origin()
	if !hasAD || !hasBO {
		return Edge{}, fmt.Errorf("quadedge: connect: %w: endpoint lacks a coordinate", ErrInvariantViolated)
	}

	e := m.MakeEdge(ad, bo)
	if err := m.Splice(e, a.LNext()); err != nil {
		return Edge{}, fmt.Errorf("quadedge: connect: %w", err)
	}
	if err := m.Splice(e.Sym(), b); err != nil {
		return Edge{}, fmt.Errorf("quadedge: connect: %w", err)
	}

	return e, nil
}

// Sever removes edge e from the subdivision, merging its two adjacent
// faces, and releases e's quartet. It is undefined (and not checked here,
// per the design's programmer-error model) to sever a half-edge whose
// removal would disconnect a face boundary a caller still depends on.
func (m *Mesh) Sever(e Edge) error {
	if err := m.Splice(e, e.OPrev()); err != nil {
		return fmt.Errorf("quadedge: sever: %w", err)
	}
	sym := e.Sym()
	if err := m.Splice(sym, sym.OPrev()); err != nil {
		return fmt.Errorf("quadedge: sever: %w", err)
	}

	base := quartetBase(e.idx)
	for k := int32(0); k < 4; k++ {
		Edge{mesh: m, idx: base + k}.setAlive(false)
	}

	return nil
}

// InsertPoint inserts p into the face whose boundary contains faceEdge,
// fanning new spokes from p to each boundary vertex in turn. The dual
// origins of the newly created face-interior edges are reset (they have
// no coordinate). Returns the first spoke, from faceEdge's original
// origin to p.
func (m *Mesh) InsertPoint(faceEdge Edge, p geom.Point) (Edge, error) {
	origin, has := faceEdge.Origin()
	if !has {
		return Edge{}, fmt.Errorf("quadedge: insert point: %w: face edge has no origin", ErrInvalidInput)
	}

	firstSpoke := m.MakeEdge(origin, p)
	if err := m.Splice(firstSpoke, faceEdge); err != nil {
		return Edge{}, fmt.Errorf("quadedge: insert point: %w", err)
	}

	spoke := firstSpoke
	for {
		next, err := m.Connect(faceEdge, spoke.Sym())
		if err != nil {
			return Edge{}, fmt.Errorf("quadedge: insert point: %w", err)
		}
		spoke = next
		spoke.Rot().setOrigin(geom.Point{}, false)
		spoke.Rot().Sym().setOrigin(geom.Point{}, false)
		faceEdge = spoke.OPrev()
		if faceEdge.LNext().Equal(firstSpoke) {
			break
		}
	}

	return firstSpoke, nil
}

// Flip replaces e with the other diagonal of the quadrilateral formed by
// its two adjacent triangles: e is defined only when bounded by exactly
// two triangles.
func (m *Mesh) Flip(e Edge) error {
	sym := e.Sym()
	if !e.LNext().LNext().LNext().Equal(e) || !sym.LNext().LNext().LNext().Equal(sym) {
		return fmt.Errorf("quadedge: flip: %w: edge is not bounded by two triangles", ErrInvariantViolated)
	}

	prev := e.OPrev()
	symPrev := sym.OPrev()

	if err := m.Splice(e, prev); err != nil {
		return fmt.Errorf("quadedge: flip: %w", err)
	}
	if err := m.Splice(sym, symPrev); err != nil {
		return fmt.Errorf("quadedge: flip: %w", err)
	}
	if err := m.Splice(e, prev.LNext()); err != nil {
		return fmt.Errorf("quadedge: flip: %w", err)
	}
	if err := m.Splice(sym, symPrev.LNext()); err != nil {
		return fmt.Errorf("quadedge: flip: %w", err)
	}

	prevDest, _ := prev.Dest()
	symPrevDest, _ := symPrev.Dest()
	e.setOrigin(prevDest, true)
	e.setDest(symPrevDest, true)

	return nil
}

// FreeGraph releases every half-edge reachable from seed via Rot and
// ONext, marking each visited record dead so a stray handle into the
// freed subdivision cannot be traversed afterward. Marking is per
// half-edge record, matching the source's mark-and-recurse strategy: Rot
// and ONext lead to different records of the same quartet at different
// points in the walk, and both must be followed to reach every quartet
// of a connected subdivision (ONext on a dual half-edge walks a face
// boundary, which is how the walk escapes the seed's own quartet).
func (m *Mesh) FreeGraph(seed Edge) {
	seen := make(map[int32]bool)
	stack := []Edge{seed}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen[e.idx] {
			continue
		}
		seen[e.idx] = true
		e.setAlive(false)

		stack = append(stack, e.Rot(), e.ONext())
	}
}
