package delaunay

import (
	"github.com/vivtrain/lowpoly-go/quadedge"
)

// ErrInvalidInput indicates fewer than three points were given to
// Triangulate. Re-exported from quadedge: both packages report the same
// failure mode for the same reason (not enough vertices to build a
// subdivision with a real interior).
var ErrInvalidInput = quadedge.ErrInvalidInput

// ErrInvariantViolated indicates an internal consistency check failed
// during triangulation or extraction. Re-exported from quadedge for the
// same reason as ErrInvalidInput.
var ErrInvariantViolated = quadedge.ErrInvariantViolated
