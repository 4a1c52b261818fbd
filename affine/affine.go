// Package affine implements AffineTransform1D and MappingAffine, the
// single-piece building blocks the topology algebra composes into
// piecewise-affine functions.
package affine

import (
	"errors"

	"github.com/edl-space/chronotree/interval"
	"github.com/edl-space/chronotree/ordinate"
)

// ErrNotInvertible is returned by Invert when Scale is zero.
var ErrNotInvertible = errors.New("affine: transform with zero scale is not invertible")

// Transform1D is the pair {Offset, Scale} applying as x -> x*Scale + Offset.
type Transform1D struct {
	Offset ordinate.Ordinate
	Scale  ordinate.Ordinate
}

// Identity is the neutral transform.
var Identity = Transform1D{Offset: ordinate.Zero, Scale: ordinate.One}

// Apply returns x*Scale + Offset.
func (t Transform1D) Apply(x ordinate.Ordinate) (ordinate.Ordinate, error) {
	scaled, err := x.Mul(t.Scale)
	if err != nil {
		return 0, err
	}
	return scaled.Add(t.Offset), nil
}

// Invert returns the transform y -> (y-Offset)/Scale.
func (t Transform1D) Invert() (Transform1D, error) {
	if t.Scale == 0 {
		return Transform1D{}, ErrNotInvertible
	}
	invScale, err := ordinate.One.Div(t.Scale)
	if err != nil {
		return Transform1D{}, err
	}
	negOffsetScaled, err := t.Offset.Neg().Mul(invScale)
	if err != nil {
		return Transform1D{}, err
	}
	return Transform1D{Offset: negOffsetScaled, Scale: invScale}, nil
}

// Compose returns the transform equivalent to applying t first, then next:
// next(t(x)). Grounded on opentime.TimeTransform.AppliedToTransform.
func Compose(t, next Transform1D) (Transform1D, error) {
	scale, err := t.Scale.Mul(next.Scale)
	if err != nil {
		return Transform1D{}, err
	}
	offsetScaled, err := t.Offset.Mul(next.Scale)
	if err != nil {
		return Transform1D{}, err
	}
	return Transform1D{Offset: offsetScaled.Add(next.Offset), Scale: scale}, nil
}

// Mapping is a total affine function restricted to InputBounds.
type Mapping struct {
	InputBounds    interval.ContinuousInterval
	InputToOutput  Transform1D
}

// OutputBounds returns the image of InputBounds under InputToOutput.
func (m Mapping) OutputBounds() (interval.ContinuousInterval, error) {
	start, err := m.InputToOutput.Apply(m.InputBounds.Start)
	if err != nil {
		return interval.ContinuousInterval{}, err
	}
	end, err := m.InputToOutput.Apply(m.InputBounds.End)
	if err != nil {
		return interval.ContinuousInterval{}, err
	}
	if start.Cmp(end) > 0 {
		start, end = end, start
	}
	return interval.New(start, end), nil
}
