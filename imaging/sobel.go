package imaging

import (
	"image"
	"image/color"
	"math"
)

var sobelX = [3][3]float32{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

var sobelY = [3][3]float32{
	{-1, -2, -1},
	{0, 0, 0},
	{1, 2, 1},
}

// toGray converts img to a float32 luma field in [0, 1], replacing the
// original pipeline's cv::cvtColor(..., COLOR_BGR2GRAY) step.
func toGray(img image.Image) *Field32 {
	b := img.Bounds()
	f := NewField32(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			f.Set(x-b.Min.X, y-b.Min.Y, float32(gray.Y)/255)
		}
	}
	return f
}

// SobelMagnitude computes the Sobel gradient magnitude of img, ported
// from util::sobelMagnitude: a 3x3 horizontal and vertical convolution
// per pixel followed by their Euclidean norm, without an OpenCV
// dependency. The result is normalized into [0, 1].
func SobelMagnitude(img image.Image) (*Field32, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrEmptyImage
	}

	gray := toGray(img)
	out := NewField32(gray.W, gray.H)

	var maxMag float32
	for y := 0; y < gray.H; y++ {
		for x := 0; x < gray.W; x++ {
			// Both kernels are antisymmetric, so each pair of opposite
			// taps is applied to the difference of its two samples: equal
			// samples cancel exactly and a flat region stays at zero.
			var gx, gy float32
			for k := -1; k <= 1; k++ {
				gx += sobelX[k+1][2] * (gray.At(x+1, y+k) - gray.At(x-1, y+k))
				gy += sobelY[2][k+1] * (gray.At(x+k, y+1) - gray.At(x+k, y-1))
			}
			mag := float32(math.Hypot(float64(gx), float64(gy)))
			out.Set(x, y, mag)
			if mag > maxMag {
				maxMag = mag
			}
		}
	}

	if maxMag > 0 {
		for i := range out.Data {
			out.Data[i] /= maxMag
		}
	}

	return out, nil
}
