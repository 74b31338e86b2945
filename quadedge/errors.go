package quadedge

import "errors"

// Sentinel errors for mesh operations.
var (
	// ErrInvalidInput indicates a caller-supplied argument was malformed:
	// fewer than three vertices passed to MakePolygon, or a polygon
	// operation issued against a half-edge whose origin lacks a coordinate.
	ErrInvalidInput = errors.New("quadedge: invalid input")

	// ErrInvariantViolated indicates an internal consistency check failed:
	// a required origin coordinate was absent, a rotation cycle did not
	// close after four steps, or Splice was asked to mix a primal and a
	// dual half-edge. This surfaces a programmer error, not a user error,
	// and is never retried.
	ErrInvariantViolated = errors.New("quadedge: invariant violated")
)
