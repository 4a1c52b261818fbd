package handle

import (
	"github.com/edl-space/chronotree/affine"
	"github.com/edl-space/chronotree/domain"
	"github.com/edl-space/chronotree/interval"
	"github.com/edl-space/chronotree/ordinate"
	"github.com/edl-space/chronotree/sampling"
	"github.com/edl-space/chronotree/schema"
	"github.com/edl-space/chronotree/space"
	"github.com/edl-space/chronotree/topology"
)

var (
	clipSpaces       = []space.Label{space.PresentationLabel(), space.MediaLabel()}
	intrinsicSpaces  = []space.Label{space.PresentationLabel(), space.IntrinsicLabel()}
	presentationOnly = []space.Label{space.PresentationLabel()}
)

// AvailableLocalSpaces returns h's fixed per-kind space list, per the table
// in spec.md §4.3. This excludes child(i) labels, which are validated
// separately (see HasAvailableLocalSpace) because their count is dynamic.
func AvailableLocalSpaces(h Handle) []space.Label {
	switch h.kind {
	case KindClip:
		return clipSpaces
	case KindWarp, KindTransition:
		return presentationOnly
	default: // Gap, Track, Stack, Timeline
		return intrinsicSpaces
	}
}

// HasAvailableLocalSpace reports whether label is valid on h: either it is
// one of AvailableLocalSpaces, or (per spec.md invariant I3) it is a
// child(i) label within the bounds of h's child slots.
func HasAvailableLocalSpace(h Handle, label space.Label) bool {
	if label.Tag() == space.Child {
		return label.ChildIndex() >= 0 && label.ChildIndex() < len(ChildrenRefs(h))
	}
	for _, l := range AvailableLocalSpaces(h) {
		if l.Equal(label) {
			return true
		}
	}
	return false
}

// MaybeName returns h's name, and false if it is empty.
func MaybeName(h Handle) (string, bool) {
	var name string
	switch h.kind {
	case KindClip:
		name = h.clip.Name
	case KindGap:
		name = h.gap.Name
	case KindTrack:
		name = h.track.schema.Name
	case KindStack:
		name = h.stack.schema.Name
	case KindTimeline:
		name = h.timeline.schema.Name
	case KindWarp:
		name = h.warp.schema.Name
	case KindTransition:
		name = h.transition.schema.Name
	}
	return name, name != ""
}

// ChildrenRefs returns h's children in order: none for Clip/Gap, the
// right-met slice for Track, the co-starting slice for Stack, and the
// single wrapped child for Timeline/Warp/Transition.
func ChildrenRefs(h Handle) []Handle {
	switch h.kind {
	case KindTrack:
		return h.track.children
	case KindStack:
		return h.stack.children
	case KindTimeline:
		return h.timeline.children[:]
	case KindWarp:
		return h.warp.children[:]
	case KindTransition:
		return h.transition.children[:]
	default:
		return nil
	}
}

// SpaceNode returns the SpaceNode for (h, label), erroring unless
// HasAvailableLocalSpace(h, label).
func SpaceNode(h Handle, label space.Label) (space.Node[Handle], error) {
	if !HasAvailableLocalSpace(h, label) {
		return space.Node[Handle]{}, ErrUnsupportedSpace
	}
	return space.Node[Handle]{Item: h, Label: label}, nil
}

// SpanningTopology returns the topology from h's presentation space to its
// deepest local space: presentation->media for Clip, presentation-
// >intrinsic for everything else, per spec.md §4.3.
func SpanningTopology(h Handle) (topology.Topology, error) {
	switch h.kind {
	case KindClip:
		return clipSpanningTopology(h.clip)
	case KindGap:
		return topology.Identity(interval.New(ordinate.Zero, h.gap.Duration)), nil
	case KindTrack:
		return trackSpanningTopology(h.track.children)
	case KindStack:
		return stackSpanningTopology(h.stack.children)
	case KindTimeline:
		return SpanningTopology(h.timeline.children[0])
	case KindWarp:
		return warpSpanningTopology(h.warp.schema, h.warp.children[0])
	case KindTransition:
		return SpanningTopology(h.transition.children[0])
	default:
		return topology.Topology{}, ErrUnsupportedSpace
	}
}

func clipSpanningTopology(c *schema.Clip) (topology.Topology, error) {
	bounds, ok := c.Bounds()
	if !ok {
		return topology.Topology{}, ErrNotImplementedFetchTopology
	}
	dur := bounds.Duration()
	return topology.Affine(affine.Mapping{
		InputBounds:   interval.New(ordinate.Zero, dur),
		InputToOutput: affine.Transform1D{Offset: bounds.Start, Scale: ordinate.One},
	}), nil
}

// trackSpanningTopology implements the Track construction of spec.md
// §4.3: "output bounds = union-extend of all children's
// spanning_topology().input_bounds()". Each child's span is first
// translated to its right-met position (the running sum of prior
// children's durations, per invariant I4) before the spans are unioned,
// which is what makes the union telescope into [0, total_duration).
func trackSpanningTopology(children []Handle) (topology.Topology, error) {
	if len(children) == 0 {
		return topology.Empty(), nil
	}
	var union interval.ContinuousInterval
	cum := ordinate.Zero
	for i, c := range children {
		ct, err := SpanningTopology(c)
		if err != nil {
			return topology.Topology{}, err
		}
		ib, ok := ct.InputBounds()
		if !ok {
			return topology.Topology{}, ErrInvalidChildTopology
		}
		extended := interval.New(cum, cum.Add(ib.Duration()))
		if i == 0 {
			union = extended
		} else {
			union = interval.Union(union, extended)
		}
		cum = cum.Add(ib.Duration())
	}
	return topology.Identity(union), nil
}

// stackSpanningTopology implements the Stack construction of spec.md §4.3:
// the same union-extend as Track, but co-starting (invariant I5), so every
// child's span is unioned at its own native position instead of being
// shifted to a running offset.
func stackSpanningTopology(children []Handle) (topology.Topology, error) {
	if len(children) == 0 {
		return topology.Empty(), nil
	}
	var union interval.ContinuousInterval
	for i, c := range children {
		ct, err := SpanningTopology(c)
		if err != nil {
			return topology.Topology{}, err
		}
		ib, ok := ct.InputBounds()
		if !ok {
			return topology.Topology{}, ErrInvalidChildTopology
		}
		if i == 0 {
			union = ib
		} else {
			union = interval.Union(union, ib)
		}
	}
	return topology.Identity(union), nil
}

// warpSpanningTopology implements the five-step Warp construction of
// spec.md §4.3/§4.4.
func warpSpanningTopology(w *schema.Warp, child Handle) (topology.Topology, error) {
	if err := w.Transform.InputBounds.RequireNonInstant(); err != nil {
		return topology.Topology{}, ErrInvalidBounds
	}
	childTopo, err := SpanningTopology(child)
	if err != nil {
		return topology.Topology{}, err
	}
	childBounds, ok := childTopo.InputBounds()
	if !ok {
		return topology.Topology{}, ErrInvalidChildTopology
	}

	step1 := topology.Affine(w.Transform)    // intrinsic -> warp_unbounded
	step2 := topology.Identity(childBounds)  // warp_unbounded -> child

	intrinsicToChild, err := topology.Join(step1, step2)
	if err != nil {
		return topology.Topology{}, err
	}
	ib, ok := intrinsicToChild.InputBounds()
	if !ok {
		return topology.Topology{}, ErrInvalidChildTopology
	}

	step4 := topology.Affine(affine.Mapping{
		InputBounds:   interval.Unbounded(),
		InputToOutput: affine.Transform1D{Offset: ib.Start, Scale: ordinate.One},
	})

	return topology.Join(step4, intrinsicToChild)
}

// BoundsOf returns h's bounds in label: for presentation, the spanning
// topology's input bounds; for the deepest local space (media on a Clip,
// intrinsic elsewhere), its output bounds. Any other label is
// ErrUnsupportedSpace.
func BoundsOf(h Handle, label space.Label) (interval.ContinuousInterval, error) {
	st, err := SpanningTopology(h)
	if err != nil {
		return interval.ContinuousInterval{}, err
	}
	switch label.Tag() {
	case space.Presentation:
		ib, ok := st.InputBounds()
		if !ok {
			return interval.ContinuousInterval{}, ErrInvalidTransformationNoBounds
		}
		return ib, nil
	case space.Media:
		if h.kind != KindClip {
			return interval.ContinuousInterval{}, ErrUnsupportedSpace
		}
		ob, ok, err := st.OutputBounds()
		if err != nil {
			return interval.ContinuousInterval{}, err
		}
		if !ok {
			return interval.ContinuousInterval{}, ErrInvalidTransformationNoBounds
		}
		return ob, nil
	case space.Intrinsic:
		if h.kind == KindClip || h.kind == KindWarp || h.kind == KindTransition {
			return interval.ContinuousInterval{}, ErrUnsupportedSpace
		}
		ob, ok, err := st.OutputBounds()
		if err != nil {
			return interval.ContinuousInterval{}, err
		}
		if !ok {
			return interval.ContinuousInterval{}, ErrInvalidTransformationNoBounds
		}
		return ob, nil
	default:
		return interval.ContinuousInterval{}, ErrUnsupportedSpace
	}
}

// DiscretePartitionForSpace implements spec.md §4.6's lookup table:
// Timeline+presentation+domain -> the timeline's registered partition;
// Clip+media -> the clip's media partition, only if the domain tags match;
// every other combination has no partition.
func DiscretePartitionForSpace(h Handle, label space.Label, d domain.Domain) (sampling.Generator, bool) {
	switch {
	case h.kind == KindTimeline && label.Tag() == space.Presentation:
		gen, ok := h.timeline.schema.Partitions[d]
		return gen, ok
	case h.kind == KindClip && label.Tag() == space.Media:
		media := h.clip.Media
		if media == nil || media.Partition == nil || !media.DomainTag.Equal(d) {
			return sampling.Generator{}, false
		}
		return *media.Partition, true
	default:
		return sampling.Generator{}, false
	}
}
