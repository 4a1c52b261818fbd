// Package topology implements the piecewise-affine mapping contract that
// the rest of the engine treats as an external collaborator (spec.md §6).
// A Topology is either empty, or a single affine piece restricted to an
// input interval, or a step mapping (used only at the discrete/continuous
// bridge). join composes two topologies end to end; invert reverses one.
package topology

import (
	"errors"
	"math"

	"github.com/edl-space/chronotree/affine"
	"github.com/edl-space/chronotree/interval"
	"github.com/edl-space/chronotree/ordinate"
)

// Errors surfaced by the topology algebra, named per spec.md §7.
var (
	ErrNoOverlap           = errors.New("topology: output bounds of first mapping do not overlap input bounds of second")
	ErrNotAnOrdinateResult = errors.New("topology: operation has no ordinate result")
	ErrOutOfBounds         = errors.New("topology: ordinate is out of the topology's input bounds")
	ErrNotInvertible       = errors.New("topology: step mapping cannot be inverted to a single affine piece")
)

// Kind discriminates the three representable shapes of a Topology.
type Kind int

const (
	KindEmpty Kind = iota
	KindAffine
	KindStep
)

// Step carries the parameters of a held-sample step mapping: every
// increment of Step in the input produces one more Increment in the
// output, holding the value from StartValue.
type Step struct {
	StartValue ordinate.Ordinate
	Step       ordinate.Ordinate
	Increment  ordinate.Ordinate
}

// Topology is a piecewise-affine 1-D mapping with input/output bounds.
type Topology struct {
	kind   Kind
	bounds interval.ContinuousInterval
	xform  affine.Transform1D
	step   Step
}

// Empty is the distinguished empty topology.
func Empty() Topology { return Topology{kind: KindEmpty} }

// IsEmpty reports whether t carries no mapping at all.
func (t Topology) IsEmpty() bool { return t.kind == KindEmpty }

// Identity returns the identity mapping restricted to bounds.
func Identity(bounds interval.ContinuousInterval) Topology {
	return Topology{kind: KindAffine, bounds: bounds, xform: affine.Identity}
}

// IdentityInfinite returns the identity mapping over (-inf, +inf).
func IdentityInfinite() Topology {
	return Identity(interval.Unbounded())
}

// Affine returns the topology described by a single affine mapping.
func Affine(m affine.Mapping) Topology {
	return Topology{kind: KindAffine, bounds: m.InputBounds, xform: m.InputToOutput}
}

// StepMapping returns a held-sample step topology over bounds.
func StepMapping(bounds interval.ContinuousInterval, startValue, step, increment ordinate.Ordinate) Topology {
	return Topology{
		kind:   KindStep,
		bounds: bounds,
		step:   Step{StartValue: startValue, Step: step, Increment: increment},
	}
}

// InputBounds returns the topology's input interval. ok is false for the
// empty topology.
func (t Topology) InputBounds() (interval.ContinuousInterval, bool) {
	if t.kind == KindEmpty {
		return interval.ContinuousInterval{}, false
	}
	return t.bounds, true
}

// OutputBounds returns the image of InputBounds under the mapping.
func (t Topology) OutputBounds() (interval.ContinuousInterval, bool, error) {
	switch t.kind {
	case KindEmpty:
		return interval.ContinuousInterval{}, false, nil
	case KindAffine:
		ob, err := (affine.Mapping{InputBounds: t.bounds, InputToOutput: t.xform}).OutputBounds()
		if err != nil {
			return interval.ContinuousInterval{}, false, err
		}
		return ob, true, nil
	case KindStep:
		n := t.bounds.Duration()
		count, err := n.Div(t.step.Step)
		if err != nil {
			return interval.ContinuousInterval{}, false, err
		}
		outEnd, err := count.Mul(t.step.Increment)
		if err != nil {
			return interval.ContinuousInterval{}, false, err
		}
		return interval.New(t.step.StartValue, t.step.StartValue.Add(outEnd)), true, nil
	default:
		return interval.ContinuousInterval{}, false, nil
	}
}

// ProjectInstantaneous maps a single input ordinate to its output ordinate.
func (t Topology) ProjectInstantaneous(ord ordinate.Ordinate) (ordinate.Ordinate, error) {
	switch t.kind {
	case KindEmpty:
		return 0, ErrNotAnOrdinateResult
	case KindAffine:
		if !t.bounds.Contains(ord) && !t.bounds.End.Equal(ord) {
			return 0, ErrOutOfBounds
		}
		return t.xform.Apply(ord)
	case KindStep:
		if !t.bounds.Contains(ord) {
			return 0, ErrOutOfBounds
		}
		offset := ord.Sub(t.bounds.Start)
		steps, err := offset.Div(t.step.Step)
		if err != nil {
			return 0, err
		}
		steps = ordinate.Ordinate(math.Floor(float64(steps)))
		inc, err := steps.Mul(t.step.Increment)
		if err != nil {
			return 0, err
		}
		return t.step.StartValue.Add(inc), nil
	default:
		return 0, ErrNotAnOrdinateResult
	}
}

// Invert returns the inverse mapping. Step topologies are not invertible to
// a single affine piece (mirrors the Vec<T> multi-valued contract of
// spec.md §6 being out of scope for this module's Non-goals).
func (t Topology) Invert() (Topology, error) {
	switch t.kind {
	case KindEmpty:
		return Empty(), nil
	case KindAffine:
		inv, err := t.xform.Invert()
		if err != nil {
			return Topology{}, err
		}
		ob, ok, err := t.OutputBounds()
		if err != nil {
			return Topology{}, err
		}
		if !ok {
			return Topology{}, ErrNotAnOrdinateResult
		}
		return Topology{kind: KindAffine, bounds: ob, xform: inv}, nil
	default:
		return Topology{}, ErrNotInvertible
	}
}

// Join composes a2b then b2c: join(x) == b2c(a2b(x)). Per spec.md §6, the
// output bounds of a2b must contain the input bounds of b2c; when they only
// overlap, the composition is restricted to the overlap.
func Join(a2b, b2c Topology) (Topology, error) {
	if a2b.IsEmpty() || b2c.IsEmpty() {
		return Empty(), nil
	}
	if a2b.kind != KindAffine || b2c.kind != KindAffine {
		return Topology{}, ErrNotInvertible
	}

	ob, ok, err := a2b.OutputBounds()
	if err != nil {
		return Topology{}, err
	}
	if !ok {
		return Topology{}, ErrNotAnOrdinateResult
	}

	overlap, ok := ob.Intersect(b2c.bounds)
	if !ok {
		return Topology{}, ErrNoOverlap
	}

	preimage, err := preimageOf(a2b.xform, overlap)
	if err != nil {
		return Topology{}, err
	}

	composed, err := affine.Compose(a2b.xform, b2c.xform)
	if err != nil {
		return Topology{}, err
	}

	return Topology{kind: KindAffine, bounds: preimage, xform: composed}, nil
}

// preimageOf returns the interval in xform's domain that maps into out.
func preimageOf(xform affine.Transform1D, out interval.ContinuousInterval) (interval.ContinuousInterval, error) {
	inv, err := xform.Invert()
	if err != nil {
		return interval.ContinuousInterval{}, err
	}
	start, err := inv.Apply(out.Start)
	if err != nil {
		return interval.ContinuousInterval{}, err
	}
	end, err := inv.Apply(out.End)
	if err != nil {
		return interval.ContinuousInterval{}, err
	}
	if start.Cmp(end) > 0 {
		start, end = end, start
	}
	return interval.New(start, end), nil
}
