package imaging

import "errors"

// Sentinel errors for the imaging pipeline, in the same style as
// package quadedge's ErrInvalidInput/ErrInvariantViolated.
var (
	// ErrEmptyImage indicates an operation was given a zero-size image.
	ErrEmptyImage = errors.New("imaging: image has zero width or height")

	// ErrUnsupportedFormat indicates Load was given a file whose
	// extension does not match a registered decoder.
	ErrUnsupportedFormat = errors.New("imaging: unsupported image format")

	// ErrEvenKernelSize indicates AdaptiveNonMaxSuppress was given an
	// even kernel size; the design requires an odd window so the
	// candidate pixel is centered within it.
	ErrEvenKernelSize = errors.New("imaging: kernel size must be odd")

	// ErrInvalidKernelRange indicates AdaptiveNonMaxSuppress was given a
	// minKernel/maxKernel pair that is not a well-formed ascending range.
	ErrInvalidKernelRange = errors.New("imaging: invalid kernel range")
)
