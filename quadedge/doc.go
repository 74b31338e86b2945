// Package quadedge implements Guibas and Stolfi's quad-edge data structure:
// a topological representation of a planar subdivision as a closed family
// of directed half-edges related by rotation.
//
// A single undirected edge is a quartet of four half-edges:
//
//	e        the primal edge, origin O to destination D
//	e.Rot()  the dual edge crossing it, right face R to left face L
//	e.Sym()  the symmetric primal edge, D to O
//	e.Rot().Rot().Rot()  the dual edge L to R
//
// Every half-edge stores two links — Rot (next in the rotation cycle) and
// ONext (next counter-clockwise around its origin) — from which Sym, OPrev,
// LNext, RPrev, and Dest are all derived in O(1).
//
// Mesh owns every record created during a build as a single arena indexed
// by int32; FreeGraph walks a subdivision reachable from a seed half-edge
// and releases it in one pass, per the "arena with indices" strategy this
// design recommends over per-record allocation.
//
// Mutators (Splice, Connect, Sever, Flip, InsertPoint) touch only a
// constant-sized neighborhood of records per call and preserve the
// twelve-way consistency invariant described in the design: rotation
// cycles close after four Rot steps, Sym is an involution, every
// half-edge reachable by ONext from a primal edge shares its origin, Rot
// alternates between "has an origin coordinate" and "has none", ONext on
// a dual half-edge cycles one face, and LNext cycles one left face.
//
// Mesh is not safe for concurrent mutation: during Splice there is a
// moment where the invariants above do not hold. Callers own a Mesh for
// the duration of a single build.
package quadedge
