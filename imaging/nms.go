package imaging

import "fmt"

// AdaptiveNonMaxSuppress thins a gradient magnitude field by keeping
// only pixels that both exceed threshold and are the maximum within
// their surrounding window, scanning kernel sizes from minKernel to
// maxKernel (inclusive, both odd) and keeping a pixel if it survives
// suppression at any size in the range.
//
// This restores CliOptions.anmsKernelRange from original_source, which
// swept a range of window sizes rather than testing a single fixed
// kernel the way util::nonMaxSuppress did on its own; scanning a range
// lets a point in a locally flat region of a coarse edge survive even
// where a single large kernel would erase it. The threshold test
// mirrors util::nonMaxSuppress's own maxValue > threshold check.
func AdaptiveNonMaxSuppress(f *Field32, minKernel, maxKernel int, threshold float32) (*Field32, error) {
	if minKernel%2 == 0 || maxKernel%2 == 0 {
		return nil, ErrEvenKernelSize
	}
	if minKernel < 1 || maxKernel < minKernel {
		return nil, fmt.Errorf("imaging: nms: %w: minKernel=%d maxKernel=%d", ErrInvalidKernelRange, minKernel, maxKernel)
	}

	out := NewField32(f.W, f.H)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			v := f.At(x, y)
			if v <= threshold {
				continue
			}
			for k := minKernel; k <= maxKernel; k++ {
				if isWindowMax(f, x, y, k) {
					out.Set(x, y, v)
					break
				}
			}
		}
	}

	return out, nil
}

// isWindowMax reports whether f(x, y) is the maximum value within a
// k x k window centered at (x, y), the per-kernel test from
// util::nonMaxSuppress.
func isWindowMax(f *Field32, x, y, k int) bool {
	v := f.At(x, y)
	r := k / 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if f.At(x+dx, y+dy) > v {
				return false
			}
		}
	}
	return true
}
