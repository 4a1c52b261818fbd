// Package bridge implements the discrete/continuous bridge (C6 of
// spec.md §4.6): it looks up an item's discrete sample partition for a
// given space and domain, and translates between continuous ordinates and
// integer sample indices through it, or folds it into a held-sample step
// Topology for composition with the rest of the space graph.
package bridge

import (
	"errors"

	"github.com/edl-space/chronotree/domain"
	"github.com/edl-space/chronotree/handle"
	"github.com/edl-space/chronotree/interval"
	"github.com/edl-space/chronotree/ordinate"
	"github.com/edl-space/chronotree/sampling"
	"github.com/edl-space/chronotree/space"
	"github.com/edl-space/chronotree/topology"
)

// Errors named per spec.md §7.
var (
	ErrNoDiscreteInfoForSpace                = errors.New("bridge: no discrete partition registered for this (item, space, domain)")
	ErrSpaceOnObjectHasNoDiscreteSpecification = errors.New("bridge: item's space has no discrete specification")
)

// DiscretePartitionForSpace re-exposes handle.DiscretePartitionForSpace on
// the C6 surface spec.md names it under; the lookup table itself belongs
// to package handle since it inspects handle-internal per-kind data.
func DiscretePartitionForSpace(h handle.Handle, label space.Label, d domain.Domain) (sampling.Generator, bool) {
	return handle.DiscretePartitionForSpace(h, label, d)
}

// DiscreteIndexToContinuousRange projects sample idx to its continuous
// footprint through h's partition for (label, d).
func DiscreteIndexToContinuousRange(h handle.Handle, label space.Label, d domain.Domain, idx int64) (interval.ContinuousInterval, error) {
	gen, ok := DiscretePartitionForSpace(h, label, d)
	if !ok {
		return interval.ContinuousInterval{}, ErrNoDiscreteInfoForSpace
	}
	return gen.ProjectIndexDC(idx), nil
}

// ContinuousOrdinateToDiscreteIndex projects ord to the sample index
// containing it, through h's partition for (label, d).
func ContinuousOrdinateToDiscreteIndex(h handle.Handle, label space.Label, d domain.Domain, ord ordinate.Ordinate) (int64, error) {
	gen, ok := DiscretePartitionForSpace(h, label, d)
	if !ok {
		return 0, ErrNoDiscreteInfoForSpace
	}
	return gen.ProjectInstantaneousCD(ord), nil
}

// ContinuousToDiscreteTopology returns a held-sample step Topology over
// label's spanning bounds on h, built from h's partition for (label, d):
// start value start_index, step 1/rate_hz, increment 1.0. Per spec.md §9's
// resolution of the single- vs two-argument discrete_partition_for_space
// ambiguity, the correct contract takes both in_space and domain.
func ContinuousToDiscreteTopology(h handle.Handle, label space.Label, d domain.Domain) (topology.Topology, error) {
	gen, ok := DiscretePartitionForSpace(h, label, d)
	if !ok {
		return topology.Topology{}, ErrSpaceOnObjectHasNoDiscreteSpecification
	}
	bounds, err := handle.BoundsOf(h, label)
	if err != nil {
		return topology.Topology{}, err
	}
	step := ordinate.Ordinate(1.0 / gen.RateHz)
	return topology.StepMapping(bounds, ordinate.Ordinate(gen.StartIndex), step, ordinate.One), nil
}
