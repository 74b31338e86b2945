// Package imaging implements the ambient pipeline that surrounds the
// algorithmic core described in package delaunay: image decode/encode,
// Sobel gradient magnitude, adaptive non-maximum suppression, random
// salt, mandatory corner points, and mean-color triangle fill.
//
// None of this is part of the normative design — the specification
// sketches it only at its interface and calls out robustness to exact
// arithmetic, constrained triangulation, and the interactive preview
// loop as explicitly out of scope. This package gives that interface a
// concrete, non-interactive implementation so the module produces a
// runnable program, following the shape of the original pipeline
// (Sobel magnitude, windowed non-max suppression, salt, corner
// injection, scanline mean-color fill) without its OpenCV dependency.
package imaging
