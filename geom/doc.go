// Package geom defines the integer point type shared by the quadedge and
// delaunay packages.
//
// Points carry integer coordinates only: the exact-arithmetic predicates in
// package delaunay depend on coordinates being representable without
// rounding (see delaunay.CCW, delaunay.InCircle). Non-goal: floating point
// or exact-arithmetic support for unbounded coordinate ranges.
package geom
