package imaging

import "github.com/vivtrain/lowpoly-go/geom"

// ExtractPoints collects the coordinates of every non-zero sample in f,
// the Go equivalent of the original pipeline's cv::findNonZero call
// over the suppressed edge field, and unconditionally appends the
// image's four corners.
//
// original_source's pipeline.cpp force-includes the corners after
// findNonZero so the triangulation always covers the full frame even
// when the edge field happens to be empty near the border; spec.md's
// distillation dropped this detail, but it is required for the
// triangulation to tile the whole image rather than leaving the
// border region outside its convex hull.
func ExtractPoints(f *Field32) []geom.Point {
	pts := make([]geom.Point, 0, f.W+f.H)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if f.At(x, y) != 0 {
				pts = append(pts, geom.Point{X: x, Y: y})
			}
		}
	}

	pts = append(pts,
		geom.Point{X: 0, Y: 0},
		geom.Point{X: f.W - 1, Y: 0},
		geom.Point{X: 0, Y: f.H - 1},
		geom.Point{X: f.W - 1, Y: f.H - 1},
	)

	geom.SortLex(pts)
	return geom.Dedup(pts)
}
