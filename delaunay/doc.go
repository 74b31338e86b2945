// Package delaunay builds the Delaunay triangulation of a set of integer
// points using Guibas and Stolfi's divide-and-conquer algorithm over a
// package quadedge subdivision, and extracts the resulting triangles for
// downstream rendering.
//
// Triangulate sorts the input lexicographically, recurses down to bases
// of two or three points, and merges adjacent subdivisions by walking up
// from the lower common tangent to the upper one, flipping in any edge
// whose quadrilateral violates the empty-circumcircle property along the
// way. ExtractTriangles then walks the resulting subdivision and emits
// every triangular left face exactly once.
//
// All geometric predicates (CCW, InCircle) are exact integer
// determinants: this package assumes integer coordinates in a range that
// fits the products involved in a 64-bit determinant (roughly up to
// 2^15 per the design), and does not attempt exact arithmetic for wider
// ranges.
package delaunay
