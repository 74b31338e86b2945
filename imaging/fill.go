package imaging

import (
	"image"
	"image/color"
	"sort"

	"github.com/vivtrain/lowpoly-go/geom"
)

// scanTriangle calls visit once for every pixel (x, y) covered by the
// triangle, using a standard top/bottom edge-walking scanline fill —
// the same shape as the software rasterisers in the retrieved
// reference material, adapted here from a rectangular/line primitive
// to a filled triangle.
func scanTriangle(tri [3]geom.Point, visit func(x, y int)) {
	pts := tri[:]
	sort.Slice(pts, func(i, j int) bool { return pts[i].Y < pts[j].Y })
	p0, p1, p2 := pts[0], pts[1], pts[2]

	edge := func(a, b geom.Point, y int) (float64, bool) {
		if a.Y == b.Y {
			return 0, false
		}
		if y < min(a.Y, b.Y) || y > max(a.Y, b.Y) {
			return 0, false
		}
		t := float64(y-a.Y) / float64(b.Y-a.Y)
		return float64(a.X) + t*float64(b.X-a.X), true
	}

	for y := p0.Y; y <= p2.Y; y++ {
		var xs []float64
		if x, ok := edge(p0, p2, y); ok {
			xs = append(xs, x)
		}
		if x, ok := edge(p0, p1, y); ok {
			xs = append(xs, x)
		}
		if x, ok := edge(p1, p2, y); ok {
			xs = append(xs, x)
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		xStart, xEnd := int(xs[0]+0.5), int(xs[len(xs)-1]+0.5)
		for x := xStart; x <= xEnd; x++ {
			visit(x, y)
		}
	}
}

// MeanColor averages the RGB channels of img over the pixels covered
// by tri, the Go equivalent of imgutil::avgColorInPoly. Pixels outside
// img's bounds are skipped; an all-skipped triangle returns black.
func MeanColor(img image.Image, tri [3]geom.Point) color.RGBA {
	b := img.Bounds()
	var rSum, gSum, bSum, n uint64

	scanTriangle(tri, func(x, y int) {
		pt := image.Pt(x, y)
		if !pt.In(b) {
			return
		}
		r, g, bl, _ := img.At(x, y).RGBA()
		rSum += uint64(r >> 8)
		gSum += uint64(g >> 8)
		bSum += uint64(bl >> 8)
		n++
	})

	if n == 0 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{
		R: uint8(rSum / n),
		G: uint8(gSum / n),
		B: uint8(bSum / n),
		A: 255,
	}
}

// FillTriangle paints tri onto dst with the flat color c, replacing
// the original pipeline's cv::fillConvexPoly call.
func FillTriangle(dst *image.RGBA, tri [3]geom.Point, c color.RGBA) {
	b := dst.Bounds()
	scanTriangle(tri, func(x, y int) {
		pt := image.Pt(x, y)
		if !pt.In(b) {
			return
		}
		dst.SetRGBA(x, y, c)
	})
}
