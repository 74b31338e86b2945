package imaging

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Rescale resamples img by scale (1.0 is a no-op, <1.0 shrinks, >1.0
// grows), using a Catmull-Rom resampler. This replaces the original
// pipeline's cv::resize call for the pre-process downscale (to keep the
// triangulation cheap). The output size is not produced by resampling:
// cmd/lowpoly scales the triangle coordinates by its -postscale factor
// and fills them into a new canvas.
func Rescale(img image.Image, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("imaging: rescale: %w: scale must be positive, got %v", ErrEmptyImage, scale)
	}

	b := img.Bounds()
	w := int(float64(b.Dx())*scale + 0.5)
	h := int(float64(b.Dy())*scale + 0.5)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("imaging: rescale: %w", ErrEmptyImage)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	return dst, nil
}
