package quadedge

import "github.com/vivtrain/lowpoly-go/geom"

// Rot returns the next half-edge in the rotation cycle
// e -> e.Rot() -> e.Sym() -> e.Rot().Rot().Rot() -> e. O(1).
func (e Edge) Rot() Edge {
	return Edge{mesh: e.mesh, idx: rotIndex(e.idx)}
}

// ONext returns the next half-edge counter-clockwise around e's origin.
// O(1).
func (e Edge) ONext() Edge {
	return Edge{mesh: e.mesh, idx: e.mesh.rec(e.idx).onext}
}

// Sym returns e reversed: sym(e) == e.Rot().Rot(). O(1).
func (e Edge) Sym() Edge {
	return e.Rot().Rot()
}

// OPrev returns the previous half-edge clockwise around e's origin:
// oprev(e) == e.Rot().ONext().Rot(). O(1).
func (e Edge) OPrev() Edge {
	return e.Rot().ONext().Rot()
}

// LNext returns the next half-edge counter-clockwise around e's left
// face: lnext(e) == sym(e.Rot()).ONext().Rot(). O(1).
func (e Edge) LNext() Edge {
	return e.Rot().Sym().ONext().Rot()
}

// LPrev returns the previous half-edge around e's left face:
// lprev(e) == e.ONext().Sym(). Not part of the design's derived-navigator
// table but a direct consequence of it, and convenient for polygon walks.
func (e Edge) LPrev() Edge {
	return e.ONext().Sym()
}

// RPrev returns the previous half-edge clockwise around e's right face:
// rprev(e) == sym(e).ONext(). O(1).
func (e Edge) RPrev() Edge {
	return e.Sym().ONext()
}

// Origin returns e's origin coordinate and whether e carries one at all
// (false for dual half-edges).
func (e Edge) Origin() (geom.Point, bool) {
	r := e.mesh.rec(e.idx)

	return r.origin, r.hasOrigin
}

// Dest returns e's destination coordinate: dest(e) == sym(e).Origin().
func (e Edge) Dest() (geom.Point, bool) {
	return e.Sym().Origin()
}

func (e Edge) setOrigin(p geom.Point, has bool) {
	r := e.mesh.rec(e.idx)
	r.origin = p
	r.hasOrigin = has
}

func (e Edge) setDest(p geom.Point, has bool) {
	e.Sym().setOrigin(p, has)
}

func (e Edge) setONext(target Edge) {
	e.mesh.rec(e.idx).onext = target.idx
}

func (e Edge) setAlive(alive bool) {
	e.mesh.rec(e.idx).alive = alive
}
