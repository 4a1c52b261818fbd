// Package edges implements the per-object one-step transform rules (C4 of
// spec.md §4.4): given a walker positioned at (item, from-space) and a
// path-code step direction, produce the single topology that edge of the
// space graph carries. The space-graph builder (package spacegraph)
// composes these via topology.Join in visitation order.
package edges

import (
	"errors"

	"github.com/edl-space/chronotree/affine"
	"github.com/edl-space/chronotree/handle"
	"github.com/edl-space/chronotree/interval"
	"github.com/edl-space/chronotree/ordinate"
	"github.com/edl-space/chronotree/space"
	"github.com/edl-space/chronotree/topology"
	"github.com/edl-space/chronotree/treecode"
)

// ErrUnsupportedSpace mirrors handle.ErrUnsupportedSpace for the cases
// where a (kind, from-space) combination has no step rule at all.
var ErrUnsupportedSpace = errors.New("edges: no step rule for this (kind, from-space) combination")

// StepTopology returns the one-step topology for stepping away from
// (h, from) in direction step, per the per-kind rules of spec.md §4.4.
func StepTopology(h handle.Handle, from space.Label, step treecode.Direction) (topology.Topology, error) {
	switch h.Kind() {
	case handle.KindTrack:
		return trackStep(h, from, step)
	case handle.KindClip:
		return clipStep(h, from)
	case handle.KindWarp:
		return warpStep(h, from)
	case handle.KindGap:
		return gapStep(h, from)
	case handle.KindTimeline, handle.KindStack, handle.KindTransition:
		// "all local steps -> identity_infinite (compositional detail
		// handled inside their inner stack's children)" -- spec.md §4.4.
		return topology.IdentityInfinite(), nil
	default:
		return topology.Topology{}, ErrUnsupportedSpace
	}
}

func trackStep(h handle.Handle, from space.Label, step treecode.Direction) (topology.Topology, error) {
	switch from.Tag() {
	case space.Presentation, space.Intrinsic:
		// presentation <-> intrinsic are identical on a Track; intrinsic
		// enters child-0 space unchanged.
		return topology.IdentityInfinite(), nil
	case space.Child:
		if step == treecode.Left {
			// descend into child i's own presentation space.
			return topology.IdentityInfinite(), nil
		}
		return trackRightMetOffset(h, from.ChildIndex())
	default:
		return topology.Topology{}, ErrUnsupportedSpace
	}
}

// trackRightMetOffset computes the "right-met offset" that moves from
// child-i's child-space to child-(i+1)'s, per spec.md §4.4: an affine
// translation by d = duration(child[i].presentation).
func trackRightMetOffset(h handle.Handle, i int) (topology.Topology, error) {
	children := handle.ChildrenRefs(h)
	if i < 0 || i >= len(children) {
		return topology.Topology{}, ErrUnsupportedSpace
	}
	childTopo, err := handle.SpanningTopology(children[i])
	if err != nil {
		return topology.Topology{}, err
	}
	ib, ok := childTopo.InputBounds()
	if !ok {
		return topology.Topology{}, handle.ErrInvalidChildTopology
	}
	d := ib.Duration()
	return topology.Affine(affine.Mapping{
		InputBounds:   interval.New(d, ordinate.PosInf),
		InputToOutput: affine.Transform1D{Offset: d.Neg(), Scale: ordinate.One},
	}), nil
}

func clipStep(h handle.Handle, from space.Label) (topology.Topology, error) {
	switch from.Tag() {
	case space.Presentation:
		mediaBounds, err := handle.BoundsOf(h, space.MediaLabel())
		if err != nil {
			return topology.Topology{}, err
		}
		return topology.Affine(affine.Mapping{
			InputBounds:   interval.New(ordinate.Zero, mediaBounds.Duration()),
			InputToOutput: affine.Transform1D{Offset: mediaBounds.Start, Scale: ordinate.One},
		}), nil
	case space.Media:
		mediaBounds, err := handle.BoundsOf(h, space.MediaLabel())
		if err != nil {
			return topology.Topology{}, err
		}
		return topology.Identity(mediaBounds), nil
	default:
		return topology.Topology{}, ErrUnsupportedSpace
	}
}

func warpStep(h handle.Handle, from space.Label) (topology.Topology, error) {
	if from.Tag() != space.Presentation {
		return topology.IdentityInfinite(), nil
	}
	return handle.SpanningTopology(h)
}

func gapStep(h handle.Handle, from space.Label) (topology.Topology, error) {
	if from.Tag() != space.Presentation {
		return topology.IdentityInfinite(), nil
	}
	return handle.SpanningTopology(h)
}
