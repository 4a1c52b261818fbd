package handle

import (
	"testing"

	"github.com/edl-space/chronotree/affine"
	"github.com/edl-space/chronotree/domain"
	"github.com/edl-space/chronotree/interval"
	"github.com/edl-space/chronotree/ordinate"
	"github.com/edl-space/chronotree/sampling"
	"github.com/edl-space/chronotree/schema"
	"github.com/edl-space/chronotree/space"
)

func mediaClip(name string, start, end ordinate.Ordinate) *schema.Clip {
	media := schema.NewMediaReference(name+"-media", domain.NewPicture())
	rng := interval.New(start, end)
	media.AvailableRange = &rng
	return schema.NewClip(name, media, nil)
}

// T1: round-trip identity. presentation->media maps 0 -> B.start and
// B.duration -> B.end.
func TestT1ClipRoundTripIdentity(t *testing.T) {
	c := mediaClip("clip", 1, 10)
	h := NewClip(c)
	topo, err := SpanningTopology(h)
	if err != nil {
		t.Fatalf("SpanningTopology: %v", err)
	}
	start, err := topo.ProjectInstantaneous(0)
	if err != nil || !start.Equal(1) {
		t.Errorf("project(0) = %v, %v, want 1", start, err)
	}
	end, err := topo.ProjectInstantaneous(9)
	if err != nil || !end.Equal(10) {
		t.Errorf("project(9) = %v, %v, want 10", end, err)
	}
}

func TestAvailableLocalSpacesPerKind(t *testing.T) {
	clip := NewClip(mediaClip("c", 0, 1))
	if got := AvailableLocalSpaces(clip); len(got) != 2 {
		t.Errorf("clip spaces = %v, want 2 entries", got)
	}
	gap := NewGap(schema.NewGap("g", 1))
	if got := AvailableLocalSpaces(gap); len(got) != 2 {
		t.Errorf("gap spaces = %v, want 2 entries", got)
	}
	warp := NewWarp(schema.NewWarp("w", affine.Mapping{InputBounds: interval.New(0, 1), InputToOutput: affine.Identity}), clip)
	if got := AvailableLocalSpaces(warp); len(got) != 1 {
		t.Errorf("warp spaces = %v, want 1 entry", got)
	}
}

// Open Question #1: intrinsic on a clip is ErrUnsupportedSpace (spec.md
// §9: clips do not list intrinsic in available_local_spaces).
func TestBoundsOfClipIntrinsicUnsupported(t *testing.T) {
	h := NewClip(mediaClip("c", 1, 10))
	if _, err := BoundsOf(h, space.IntrinsicLabel()); err != ErrUnsupportedSpace {
		t.Errorf("got %v, want ErrUnsupportedSpace", err)
	}
}

func TestHasAvailableLocalSpaceChildBounds(t *testing.T) {
	clip := NewClip(mediaClip("c", 0, 1))
	track := NewTrack(schema.NewTrack("t"), []Handle{clip, clip})
	if !HasAvailableLocalSpace(track, space.ChildLabel(0)) {
		t.Errorf("child(0) should be available on a 2-child track")
	}
	if !HasAvailableLocalSpace(track, space.ChildLabel(1)) {
		t.Errorf("child(1) should be available on a 2-child track")
	}
	if HasAvailableLocalSpace(track, space.ChildLabel(2)) {
		t.Errorf("child(2) should not be available on a 2-child track")
	}
}

// scenario 3 (partial): track presentation bounds for [gap(3s),
// clip([1,9)), gap(4s)] is [0, 15).
func TestTrackSpanningTopologyRightMet(t *testing.T) {
	gap1 := NewGap(schema.NewGap("g1", 3))
	clip := NewClip(mediaClip("clip", 1, 9))
	gap2 := NewGap(schema.NewGap("g2", 4))
	track := NewTrack(schema.NewTrack("t"), []Handle{gap1, clip, gap2})

	bounds, err := BoundsOf(track, space.PresentationLabel())
	if err != nil {
		t.Fatalf("BoundsOf: %v", err)
	}
	if !bounds.Start.Equal(0) || !bounds.End.Equal(15) {
		t.Fatalf("track bounds = %+v, want [0,15)", bounds)
	}
}

// scenario 4: Warp(scale=-2) over a clip whose media bounds are [1, 9)
// (i.e. child presentation span [0, 8)).
func TestScenario4WarpSpanningTopology(t *testing.T) {
	clip := NewClip(mediaClip("clip", 1, 9))
	transform := affine.Mapping{
		InputBounds:   interval.Unbounded(),
		InputToOutput: affine.Transform1D{Offset: 0, Scale: -2},
	}
	warp := NewWarp(schema.NewWarp("w", transform), clip)

	topo, err := SpanningTopology(warp)
	if err != nil {
		t.Fatalf("SpanningTopology: %v", err)
	}
	ib, ok := topo.InputBounds()
	if !ok || !ib.Start.Equal(0) || !ib.End.Equal(4) {
		t.Fatalf("input bounds = %+v, ok=%v, want [0,4)", ib, ok)
	}
	ob, ok, err := topo.OutputBounds()
	if err != nil {
		t.Fatalf("OutputBounds: %v", err)
	}
	if !ok || !ob.Start.Equal(0) || !ob.End.Equal(8) {
		t.Fatalf("output bounds = %+v, ok=%v, want [0,8)", ob, ok)
	}

	got0, err := topo.ProjectInstantaneous(0)
	if err != nil || !got0.Equal(8) {
		t.Errorf("project(0) = %v, %v, want 8", got0, err)
	}
	got4, err := topo.ProjectInstantaneous(4)
	if err != nil || !got4.Equal(0) {
		t.Errorf("project(4) = %v, %v, want 0", got4, err)
	}

	inv, err := topo.Invert()
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}
	invGot, err := inv.ProjectInstantaneous(0)
	if err != nil || !invGot.Equal(4) {
		t.Errorf("inverse project(0) = %v, %v, want 4", invGot, err)
	}
}

func TestWarpRejectsInstantTransformBounds(t *testing.T) {
	clip := NewClip(mediaClip("clip", 0, 1))
	transform := affine.Mapping{
		InputBounds:   interval.Instant(3),
		InputToOutput: affine.Identity,
	}
	warp := NewWarp(schema.NewWarp("w", transform), clip)
	if _, err := SpanningTopology(warp); err != ErrInvalidBounds {
		t.Errorf("got %v, want ErrInvalidBounds", err)
	}
}

func TestDiscretePartitionForSpaceDomainMismatch(t *testing.T) {
	media := schema.NewMediaReference("m", domain.NewPicture())
	gen, err := sampling.New(24, 0)
	if err != nil {
		t.Fatalf("sampling.New: %v", err)
	}
	media.Partition = &gen
	clip := NewClip(schema.NewClip("c", media, nil))
	if _, ok := DiscretePartitionForSpace(clip, space.MediaLabel(), domain.NewAudio()); ok {
		t.Errorf("expected no partition for mismatched domain")
	}
	if _, ok := DiscretePartitionForSpace(clip, space.MediaLabel(), domain.NewPicture()); !ok {
		t.Errorf("expected a partition for matching domain")
	}
}
