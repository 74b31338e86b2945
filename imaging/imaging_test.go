package imaging

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivtrain/lowpoly-go/geom"
)

func TestRescale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 20))
	dst, err := Rescale(src, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 5, dst.Bounds().Dx())
	assert.Equal(t, 10, dst.Bounds().Dy())

	_, err = Rescale(src, 0)
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestSobelMagnitude_FlatImageIsZero(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 128
	}

	f, err := SobelMagnitude(img)
	require.NoError(t, err)
	for _, v := range f.Data {
		assert.Equal(t, float32(0), v)
	}
}

func TestSobelMagnitude_DetectsEdge(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v := uint8(0)
			if x >= 4 {
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}

	f, err := SobelMagnitude(img)
	require.NoError(t, err)

	var maxMag float32
	for _, v := range f.Data {
		if v > maxMag {
			maxMag = v
		}
	}
	assert.Greater(t, maxMag, float32(0))
}

func TestSobelMagnitude_RejectsEmptyImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 0, 0))
	_, err := SobelMagnitude(img)
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestAdaptiveNonMaxSuppress_RejectsEvenKernel(t *testing.T) {
	f := NewField32(4, 4)
	_, err := AdaptiveNonMaxSuppress(f, 2, 5, 0)
	assert.ErrorIs(t, err, ErrEvenKernelSize)
}

func TestAdaptiveNonMaxSuppress_RejectsBadRange(t *testing.T) {
	f := NewField32(4, 4)
	_, err := AdaptiveNonMaxSuppress(f, 5, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidKernelRange)
}

func TestAdaptiveNonMaxSuppress_KeepsLocalMax(t *testing.T) {
	f := NewField32(5, 5)
	f.Set(2, 2, 1.0)
	f.Set(2, 1, 0.5)

	out, err := AdaptiveNonMaxSuppress(f, 3, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), out.At(2, 2))
	assert.Equal(t, float32(0), out.At(2, 1))
}

func TestAdaptiveNonMaxSuppress_ThresholdExcludesWeakEdges(t *testing.T) {
	f := NewField32(5, 5)
	f.Set(2, 2, 0.1)

	out, err := AdaptiveNonMaxSuppress(f, 3, 3, 0.4)
	require.NoError(t, err)
	assert.Equal(t, float32(0), out.At(2, 2))
}

func TestSalt_Deterministic(t *testing.T) {
	f := NewField32(10, 10)
	rng := rand.New(rand.NewPCG(1, 2))
	Salt(f, 50, rng)

	var n int
	for _, v := range f.Data {
		if v == 1 {
			n++
		}
	}
	assert.Equal(t, 50, n)
}

func TestSalt_ZeroPercentNoOp(t *testing.T) {
	f := NewField32(4, 4)
	Salt(f, 0, rand.New(rand.NewPCG(1, 2)))
	for _, v := range f.Data {
		assert.Equal(t, float32(0), v)
	}
}

func TestExtractPoints_IncludesCorners(t *testing.T) {
	f := NewField32(4, 4)
	pts := ExtractPoints(f)
	assert.Contains(t, pts, geom.Point{X: 0, Y: 0})
	assert.Contains(t, pts, geom.Point{X: 3, Y: 0})
	assert.Contains(t, pts, geom.Point{X: 0, Y: 3})
	assert.Contains(t, pts, geom.Point{X: 3, Y: 3})
}

func TestExtractPoints_IncludesNonZero(t *testing.T) {
	f := NewField32(4, 4)
	f.Set(1, 1, 1)
	pts := ExtractPoints(f)
	assert.Contains(t, pts, geom.Point{X: 1, Y: 1})
}

func TestMeanColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 100, G: 150, B: 200, A: 255})
		}
	}

	tri := [3]geom.Point{{X: 0, Y: 0}, {X: 9, Y: 0}, {X: 0, Y: 9}}
	c := MeanColor(img, tri)
	assert.Equal(t, uint8(100), c.R)
	assert.Equal(t, uint8(150), c.G)
	assert.Equal(t, uint8(200), c.B)
}

func TestFillTriangle(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	tri := [3]geom.Point{{X: 0, Y: 0}, {X: 9, Y: 0}, {X: 0, Y: 9}}
	FillTriangle(dst, tri, color.RGBA{R: 255, A: 255})

	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(8, 8))
}
