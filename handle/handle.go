// Package handle implements the composition item handle (C2 of spec.md
// §4.2): a tagged reference over the seven schema kinds with uniform
// operations expressed as static switches, not an interface v-table (the
// REDESIGN FLAG of spec.md §9). Handle also owns the tree-structural
// children a container holds (children_refs is a Handle-level operation in
// spec.md's own component table), which keeps package schema free of any
// dependency on handle and avoids an import cycle between the two.
package handle

import (
	"github.com/edl-space/chronotree/schema"
)

// Kind is the closed tag of the seven composition item kinds.
type Kind int

const (
	KindClip Kind = iota
	KindGap
	KindTrack
	KindStack
	KindTimeline
	KindWarp
	KindTransition
)

// String names the kind, for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindClip:
		return "Clip"
	case KindGap:
		return "Gap"
	case KindTrack:
		return "Track"
	case KindStack:
		return "Stack"
	case KindTimeline:
		return "Timeline"
	case KindWarp:
		return "Warp"
	case KindTransition:
		return "Transition"
	default:
		return "Unknown"
	}
}

type trackData struct {
	schema   *schema.Track
	children []Handle
}

type stackData struct {
	schema   *schema.Stack
	children []Handle
}

type timelineData struct {
	schema   *schema.Timeline
	children [1]Handle
}

type warpData struct {
	schema   *schema.Warp
	children [1]Handle
}

type transitionData struct {
	schema   *schema.Transition
	children [1]Handle
}

// Handle is a tagged reference to exactly one of the seven item kinds.
// Apart from the Kind tag, every field is a pointer, so Handle itself is
// comparable and may be used directly as a map key or as
// the item type parameter of space.Node.
type Handle struct {
	kind       Kind
	clip       *schema.Clip
	gap        *schema.Gap
	track      *trackData
	stack      *stackData
	timeline   *timelineData
	warp       *warpData
	transition *transitionData
}

// Kind returns h's tag.
func (h Handle) Kind() Kind { return h.kind }

// NewClip wraps a leaf Clip.
func NewClip(c *schema.Clip) Handle { return Handle{kind: KindClip, clip: c} }

// NewGap wraps a leaf Gap.
func NewGap(g *schema.Gap) Handle { return Handle{kind: KindGap, gap: g} }

// NewTrack wraps a Track together with its right-met children.
func NewTrack(t *schema.Track, children []Handle) Handle {
	return Handle{kind: KindTrack, track: &trackData{schema: t, children: children}}
}

// NewStack wraps a Stack together with its co-starting children.
func NewStack(s *schema.Stack, children []Handle) Handle {
	return Handle{kind: KindStack, stack: &stackData{schema: s, children: children}}
}

// NewTimeline wraps a Timeline around its single inner Stack handle.
func NewTimeline(tl *schema.Timeline, inner Handle) Handle {
	return Handle{kind: KindTimeline, timeline: &timelineData{schema: tl, children: [1]Handle{inner}}}
}

// NewWarp wraps a Warp around the child handle it transforms.
func NewWarp(w *schema.Warp, child Handle) Handle {
	return Handle{kind: KindWarp, warp: &warpData{schema: w, children: [1]Handle{child}}}
}

// NewTransition wraps a Transition around its single inner Stack handle.
func NewTransition(tr *schema.Transition, inner Handle) Handle {
	return Handle{kind: KindTransition, transition: &transitionData{schema: tr, children: [1]Handle{inner}}}
}

// Clip returns the underlying Clip and true if h.Kind() == KindClip.
func (h Handle) Clip() (*schema.Clip, bool) { return h.clip, h.kind == KindClip }

// Gap returns the underlying Gap and true if h.Kind() == KindGap.
func (h Handle) Gap() (*schema.Gap, bool) { return h.gap, h.kind == KindGap }

// Track returns the underlying Track and true if h.Kind() == KindTrack.
func (h Handle) Track() (*schema.Track, bool) {
	if h.kind != KindTrack {
		return nil, false
	}
	return h.track.schema, true
}

// Stack returns the underlying Stack and true if h.Kind() == KindStack.
func (h Handle) Stack() (*schema.Stack, bool) {
	if h.kind != KindStack {
		return nil, false
	}
	return h.stack.schema, true
}

// Timeline returns the underlying Timeline and true if h.Kind() ==
// KindTimeline.
func (h Handle) Timeline() (*schema.Timeline, bool) {
	if h.kind != KindTimeline {
		return nil, false
	}
	return h.timeline.schema, true
}

// Warp returns the underlying Warp and true if h.Kind() == KindWarp.
func (h Handle) Warp() (*schema.Warp, bool) {
	if h.kind != KindWarp {
		return nil, false
	}
	return h.warp.schema, true
}

// Transition returns the underlying Transition and true if h.Kind() ==
// KindTransition.
func (h Handle) Transition() (*schema.Transition, bool) {
	if h.kind != KindTransition {
		return nil, false
	}
	return h.transition.schema, true
}
