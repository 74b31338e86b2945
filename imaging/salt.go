package imaging

import "math/rand/v2"

// Salt sets a random percent of the field's pixels to 1, the same
// mechanism as util::salt: scattering extra forced edge candidates
// across the image so flat, low-gradient regions still contribute a
// few triangulation points instead of being covered by oversized
// triangles. percent is clamped to [0, 100].
func Salt(f *Field32, percent float64, rng *rand.Rand) {
	if percent <= 0 {
		return
	}
	if percent > 100 {
		percent = 100
	}

	n := int(float64(len(f.Data)) * percent / 100)
	for _, idx := range rng.Perm(len(f.Data))[:n] {
		f.Data[idx] = 1
	}
}
