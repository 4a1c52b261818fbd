package handle

import "errors"

// Error kinds named per spec.md §7. Each is a plain sentinel matched via
// errors.Is, in the teacher's errors.go style (package-prefixed message,
// no wrapping at the definition site).
var (
	ErrUnsupportedSpace            = errors.New("handle: requested space is not available on this item")
	ErrNotImplementedFetchTopology = errors.New("handle: item lacks the bounds needed to build a topology")
	ErrInvalidTransformationNoBounds = errors.New("handle: expected a bounded topology but got an unbounded one")
	ErrInvalidBounds                = errors.New("handle: bounds violate a structural invariant")
	ErrInvalidChildTopology          = errors.New("handle: a container child returned a topology without input bounds")
)
