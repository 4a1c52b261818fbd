// Package interval defines ContinuousInterval, the half-open [start, end)
// span of ordinates used to bound every temporal space in the engine.
package interval

import (
	"errors"

	"github.com/edl-space/chronotree/ordinate"
)

// ErrInstant is returned by RequireNonInstant when the interval's start and
// end coincide.
var ErrInstant = errors.New("interval: interval is instantaneous, non-instant interval required")

// ContinuousInterval is the closed-open span [Start, End) of Ordinates. It
// may be unbounded on either side (Start == NegInf or End == PosInf).
type ContinuousInterval struct {
	Start, End ordinate.Ordinate
}

// New returns the interval [start, end).
func New(start, end ordinate.Ordinate) ContinuousInterval {
	return ContinuousInterval{Start: start, End: end}
}

// Instant returns the degenerate interval [at, at).
func Instant(at ordinate.Ordinate) ContinuousInterval {
	return ContinuousInterval{Start: at, End: at}
}

// Unbounded returns (-inf, +inf).
func Unbounded() ContinuousInterval {
	return ContinuousInterval{Start: ordinate.NegInf, End: ordinate.PosInf}
}

// Duration returns End - Start.
func (iv ContinuousInterval) Duration() ordinate.Ordinate {
	return iv.End.Sub(iv.Start)
}

// IsInstant reports whether Start and End coincide (within epsilon).
func (iv ContinuousInterval) IsInstant() bool {
	return iv.Start.Equal(iv.End)
}

// IsEmpty reports whether the interval is degenerate or inverted.
func (iv ContinuousInterval) IsEmpty() bool {
	return iv.End.Cmp(iv.Start) <= 0
}

// IsBounded reports whether neither endpoint is an infinity.
func (iv ContinuousInterval) IsBounded() bool {
	return iv.Start.IsFinite() && iv.End.IsFinite()
}

// RequireNonInstant returns ErrInstant if iv is instantaneous, implementing
// the typed-constructor guard the teacher's internal asserts lacked (see
// DESIGN.md, re-architecture item "Bounded vs unbounded topologies").
func (iv ContinuousInterval) RequireNonInstant() error {
	if iv.IsInstant() {
		return ErrInstant
	}
	return nil
}

// Contains reports whether ord lies in [Start, End).
func (iv ContinuousInterval) Contains(ord ordinate.Ordinate) bool {
	return ord.Cmp(iv.Start) >= 0 && ord.Cmp(iv.End) < 0
}

// Intersects reports whether iv and other overlap.
func (iv ContinuousInterval) Intersects(other ContinuousInterval) bool {
	return iv.Start.Cmp(other.End) < 0 && other.Start.Cmp(iv.End) < 0
}

// Intersect returns the overlap of iv and other, and false if they do not
// overlap.
func (iv ContinuousInterval) Intersect(other ContinuousInterval) (ContinuousInterval, bool) {
	if !iv.Intersects(other) {
		return ContinuousInterval{}, false
	}
	return ContinuousInterval{
		Start: ordinate.Max(iv.Start, other.Start),
		End:   ordinate.Min(iv.End, other.End),
	}, true
}

// Union returns the smallest interval containing both iv and other.
func Union(iv, other ContinuousInterval) ContinuousInterval {
	return ContinuousInterval{
		Start: ordinate.Min(iv.Start, other.Start),
		End:   ordinate.Max(iv.End, other.End),
	}
}

// Before reports whether iv ends at or before other begins.
func (iv ContinuousInterval) Before(other ContinuousInterval) bool {
	return iv.End.Cmp(other.Start) <= 0
}

// Meets reports whether iv's end coincides with other's start.
func (iv ContinuousInterval) Meets(other ContinuousInterval) bool {
	return iv.End.Equal(other.Start)
}

// Translate returns iv shifted by delta.
func (iv ContinuousInterval) Translate(delta ordinate.Ordinate) ContinuousInterval {
	return ContinuousInterval{Start: iv.Start.Add(delta), End: iv.End.Add(delta)}
}
