// Command lowpoly renders a low-polygon stylization of an input image:
// it extracts edge-following vertices, triangulates them with package
// delaunay, and fills each triangle with the mean color of the source
// region it covers.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand/v2"
	"os"

	"github.com/vivtrain/lowpoly-go/delaunay"
	"github.com/vivtrain/lowpoly-go/geom"
	"github.com/vivtrain/lowpoly-go/imaging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("lowpoly: %v", err)
	}
}

func run() error {
	var (
		inPath        = flag.String("in", "", "input image path (required)")
		outPath       = flag.String("out", "", "output image path (required)")
		prescale      = flag.Float64("prescale", 0.5, "scale factor applied before triangulation")
		postscale     = flag.Float64("postscale", 2.0, "scale factor applied to the triangulation before rendering")
		edgeThreshold = flag.Float64("edge-threshold", 0.4, "minimum Sobel magnitude, in [0,1], to consider as an edge")
		anmsMin       = flag.Int("anms-min", 3, "minimum odd non-max-suppression kernel size")
		anmsMax       = flag.Int("anms-max", 9, "maximum odd non-max-suppression kernel size")
		saltPercent   = flag.Float64("salt-percent", 0, "percent of extra random vertices to scatter, in [0,100]")
		silent        = flag.Bool("silent", false, "suppress progress output")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		flag.Usage()
		return errors.New("lowpoly: -in and -out are required")
	}

	logf := func(format string, args ...any) {
		if !*silent {
			log.Printf(format, args...)
		}
	}

	src, err := imaging.Load(*inPath)
	if err != nil {
		return fmt.Errorf("lowpoly: %w", err)
	}

	inputImg, err := imaging.Rescale(src, *prescale)
	if err != nil {
		return fmt.Errorf("lowpoly: %w", err)
	}
	logf("scaled for processing: %dx%d", inputImg.Bounds().Dx(), inputImg.Bounds().Dy())

	sobel, err := imaging.SobelMagnitude(inputImg)
	if err != nil {
		return fmt.Errorf("lowpoly: %w", err)
	}
	logf("edges extracted")

	vertexField, err := imaging.AdaptiveNonMaxSuppress(sobel, *anmsMin, *anmsMax, float32(*edgeThreshold))
	if err != nil {
		return fmt.Errorf("lowpoly: %w", err)
	}

	imaging.Salt(vertexField, *saltPercent, rand.New(rand.NewPCG(1, 2)))

	vertices := imaging.ExtractPoints(vertexField)
	logf("%d vertices extracted", len(vertices))

	mesh, seed, err := delaunay.Triangulate(vertices)
	if err != nil {
		return fmt.Errorf("lowpoly: %w", err)
	}
	defer delaunay.FreeGraph(mesh, seed)

	triangles, err := delaunay.ExtractTriangles(seed)
	if err != nil {
		return fmt.Errorf("lowpoly: %w", err)
	}
	logf("%d triangles generated", len(triangles))

	outW := int(float64(inputImg.Bounds().Dx())*(*postscale) + 0.5)
	outH := int(float64(inputImg.Bounds().Dy())*(*postscale) + 0.5)
	if outW <= 0 || outH <= 0 {
		return fmt.Errorf("lowpoly: %w", imaging.ErrEmptyImage)
	}

	// Areas the triangulation doesn't cover stay this color, the same
	// visible artifact original_source's pipeline left in place rather
	// than papering over.
	out := image.NewRGBA(image.Rect(0, 0, outW, outH))
	for i := range out.Pix {
		out.Pix[i] = 0
	}
	fillUncovered(out, color.RGBA{R: 255, A: 255})

	for _, tri := range triangles {
		c := imaging.MeanColor(inputImg, tri)
		scaled := scaleTriangle(tri, *postscale)
		imaging.FillTriangle(out, scaled, c)
	}
	logf("output generated")

	if err := imaging.Save(*outPath, out); err != nil {
		return fmt.Errorf("lowpoly: %w", err)
	}

	return nil
}

func fillUncovered(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func scaleTriangle(tri [3]geom.Point, scale float64) [3]geom.Point {
	var out [3]geom.Point
	for i, p := range tri {
		out[i] = geom.Point{
			X: int(float64(p.X)*scale + 0.5),
			Y: int(float64(p.Y)*scale + 0.5),
		}
	}
	return out
}
