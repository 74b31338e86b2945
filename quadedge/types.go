package quadedge

import "github.com/vivtrain/lowpoly-go/geom"

// edgeRecord is one of the four half-edges in a quad-edge quartet.
//
// onext is the index, within the owning Mesh's arena, of the next
// half-edge counter-clockwise about this half-edge's origin. origin and
// hasOrigin together stand in for the design's Option<Point>: primal
// half-edges incident to a real vertex carry hasOrigin == true; dual
// half-edges (whose "origin" is a face, which this design does not
// coordinatize) always carry hasOrigin == false.
type edgeRecord struct {
	onext     int32
	origin    geom.Point
	hasOrigin bool
	alive     bool
}

// Mesh is an arena of edge records. Every MakeEdge call appends exactly
// one quartet (four records) to the arena, so quartets always begin at an
// index that is a multiple of four; Rot is then the constant-time index
// arithmetic base | ((idx+1)&3) rather than a stored pointer.
//
// Records are never physically reclaimed: Sever and FreeGraph mark the
// quartets they remove as dead (alive == false). Navigation does not
// check the mark; Alive reports it, and Validate fails on a dead edge
// reachable from its seed. A Mesh
// is intended to back a single build; discard it (and let the GC reclaim
// the arena) once FreeGraph has been called on every surviving seed.
type Mesh struct {
	records []edgeRecord
}

// NewMesh returns an empty Mesh ready to accept MakeEdge calls.
func NewMesh() *Mesh {
	return &Mesh{}
}

// Edge is a handle to one half-edge of a quartet owned by a Mesh. The
// zero Edge is not valid; obtain edges from Mesh operations only.
type Edge struct {
	mesh *Mesh
	idx  int32
}

// quartetBase returns the arena index of the first half-edge (rot offset
// 0) of idx's quartet.
func quartetBase(idx int32) int32 {
	return idx &^ 3
}

// rotIndex returns the arena index reached from idx by one Rot step.
func rotIndex(idx int32) int32 {
	return quartetBase(idx) | ((idx + 1) & 3)
}

func (m *Mesh) rec(idx int32) *edgeRecord {
	return &m.records[idx]
}

// IsPrimal reports whether e carries a real vertex origin (as opposed to
// a dual half-edge, whose origin is an uncoordinatized face). Rot
// alternates between the two on every step, per invariant 4.
func (e Edge) IsPrimal() bool {
	return e.idx&1 == 0
}

// Alive reports whether e's quartet has not been released by Sever or
// FreeGraph. Traversing a dead edge is a programmer error.
func (e Edge) Alive() bool {
	return e.mesh.rec(e.idx).alive
}

// Equal reports whether e and o name the same half-edge record of the
// same Mesh.
func (e Edge) Equal(o Edge) bool {
	return e.mesh == o.mesh && e.idx == o.idx
}
