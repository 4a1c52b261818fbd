// Package schema defines the seven composition item kinds (C3 of
// spec.md §4.3) and their local invariants. These are plain data types: no
// shared interface, no tree-structural children — those belong to the
// tagged handle (package handle), per spec.md §4.2's own split: children
// live behind children_refs(H), a handle-level operation, not a schema
// field. Keeping schema free of handle avoids any import cycle between the
// two and mirrors the teacher's per-kind struct shapes (gap.go, track.go,
// stack.go, clip.go) without its Composable/Item interface dispatch, which
// spec.md §9 asks us to replace with a tagged struct.
package schema

import (
	"github.com/edl-space/chronotree/affine"
	"github.com/edl-space/chronotree/domain"
	"github.com/edl-space/chronotree/interval"
	"github.com/edl-space/chronotree/ordinate"
	"github.com/edl-space/chronotree/sampling"
)

// MediaReference describes the media side of a Clip: its coordinate
// domain, its own bounds (which may stand in for a clip's own bounds per
// spec.md invariant I7), and an optional discrete sample partition.
type MediaReference struct {
	Name           string
	AvailableRange *interval.ContinuousInterval
	DomainTag      domain.Domain
	Partition      *sampling.Generator
}

// NewMediaReference returns a MediaReference with no bounds or partition
// set; callers fill in AvailableRange/Partition as needed.
func NewMediaReference(name string, domainTag domain.Domain) *MediaReference {
	return &MediaReference{Name: name, DomainTag: domainTag}
}

// Clip is a leaf item referencing a MediaReference. available_local_spaces
// = [presentation, media].
type Clip struct {
	Name        string
	SourceRange *interval.ContinuousInterval
	Media       *MediaReference
}

// NewClip returns a Clip over media, with an optional explicit source
// range (nil defers to media.AvailableRange, per invariant I7).
func NewClip(name string, media *MediaReference, sourceRange *interval.ContinuousInterval) *Clip {
	return &Clip{Name: name, SourceRange: sourceRange, Media: media}
}

// Bounds returns the clip's bounds in media coordinates: its own
// SourceRange if set, else its media reference's AvailableRange. The
// clip's presentation span is [0, Duration()) of this interval. ok is
// false if neither is available.
func (c *Clip) Bounds() (interval.ContinuousInterval, bool) {
	if c.SourceRange != nil {
		return *c.SourceRange, true
	}
	if c.Media != nil && c.Media.AvailableRange != nil {
		return *c.Media.AvailableRange, true
	}
	return interval.ContinuousInterval{}, false
}

// Gap is a leaf item with a fixed duration and no media.
// available_local_spaces = [presentation, intrinsic].
type Gap struct {
	Name     string
	Duration ordinate.Ordinate
}

// NewGap returns a Gap with the given duration.
func NewGap(name string, duration ordinate.Ordinate) *Gap {
	return &Gap{Name: name, Duration: duration}
}

// Track is a container whose children are right-met (spec.md I4).
// available_local_spaces = [presentation, intrinsic].
type Track struct {
	Name string
}

// NewTrack returns an empty Track shell; children are wired via the handle
// package's NewTrack constructor.
func NewTrack(name string) *Track { return &Track{Name: name} }

// Stack is a container whose children co-start (spec.md I5).
// available_local_spaces = [presentation, intrinsic].
type Stack struct {
	Name string
}

// NewStack returns an empty Stack shell.
func NewStack(name string) *Stack { return &Stack{Name: name} }

// Timeline wraps a single inner Stack and carries the per-domain discrete
// partitions C6 reads from (spec.md §4.6, "Timeline + presentation +
// picture|audio -> timeline's partition for that domain").
// available_local_spaces = [presentation, intrinsic].
type Timeline struct {
	Name       string
	Partitions map[domain.Domain]sampling.Generator
}

// NewTimeline returns a Timeline shell with no partitions set.
func NewTimeline(name string) *Timeline {
	return &Timeline{Name: name, Partitions: make(map[domain.Domain]sampling.Generator)}
}

// WithPartition registers a discrete partition for domainTag, returning
// the receiver for chaining.
func (t *Timeline) WithPartition(domainTag domain.Domain, gen sampling.Generator) *Timeline {
	t.Partitions[domainTag] = gen
	return t
}

// Warp wraps a single child under a linear time transform. Transform is a
// full Mapping (not a bare Transform1D) because spec.md invariant I6 is
// stated in terms of the transform's own input_bounds being non-instant;
// an unbounded warp passes a transform with InputBounds == Unbounded().
// available_local_spaces = [presentation].
type Warp struct {
	Name      string
	Transform affine.Mapping
}

// NewWarp returns a Warp applying transform to its (not yet attached)
// child.
func NewWarp(name string, transform affine.Mapping) *Warp {
	return &Warp{Name: name, Transform: transform}
}

// Transition wraps a single inner Stack and carries editorial in/out
// offsets (not consumed by the space-graph core; carried for parity with
// the teacher's Transition shape per SPEC_FULL.md §11).
// available_local_spaces = [presentation].
type Transition struct {
	Name           string
	TransitionType string
	InOffset       ordinate.Ordinate
	OutOffset      ordinate.Ordinate
}

// NewTransition returns a Transition with the given in/out offsets.
func NewTransition(name, transitionType string, inOffset, outOffset ordinate.Ordinate) *Transition {
	return &Transition{Name: name, TransitionType: transitionType, InOffset: inOffset, OutOffset: outOffset}
}
