// Package sampling implements the discrete/continuous bridge primitive the
// rest of the engine treats as an external collaborator (spec.md §6): a
// SampleIndexGenerator translates between integer sample indices and the
// continuous ordinates they occupy.
package sampling

import (
	"errors"
	"math"

	"github.com/edl-space/chronotree/interval"
	"github.com/edl-space/chronotree/ordinate"
)

// ErrInvalidRate is returned when constructing a generator with a
// non-positive sample rate.
var ErrInvalidRate = errors.New("sampling: sample rate must be positive")

// Generator is {sample_rate_hz, start_index} per spec.md §6.
type Generator struct {
	RateHz     float64
	StartIndex int64
}

// New returns a generator, validating rateHz > 0.
func New(rateHz float64, startIndex int64) (Generator, error) {
	if rateHz <= 0 {
		return Generator{}, ErrInvalidRate
	}
	return Generator{RateHz: rateHz, StartIndex: startIndex}, nil
}

// ProjectIndexDC returns the half-open continuous footprint of sample idx.
func (g Generator) ProjectIndexDC(idx int64) interval.ContinuousInterval {
	step := ordinate.Ordinate(1.0 / g.RateHz)
	start := ordinate.Ordinate(idx) * step
	return interval.New(start, start+step)
}

// ProjectInstantaneousCD returns the index of the sample containing ord,
// rounding towards negative infinity (floor). An ord within
// ordinate.Epsilon of a sample boundary counts as lying on that boundary.
func (g Generator) ProjectInstantaneousCD(ord ordinate.Ordinate) int64 {
	scaled := float64(ord) * g.RateHz
	if nearest := math.Round(scaled); math.Abs(scaled-nearest) <= ordinate.Epsilon*g.RateHz {
		return int64(nearest)
	}
	return int64(math.Floor(scaled))
}
