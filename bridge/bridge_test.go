package bridge

import (
	"testing"

	"github.com/edl-space/chronotree/affine"
	"github.com/edl-space/chronotree/domain"
	"github.com/edl-space/chronotree/handle"
	"github.com/edl-space/chronotree/interval"
	"github.com/edl-space/chronotree/ordinate"
	"github.com/edl-space/chronotree/sampling"
	"github.com/edl-space/chronotree/schema"
	"github.com/edl-space/chronotree/space"
)

// scenario 5: Timeline(rate 24 Hz) > Track > Warp(identity on [1,9)) >
// Clip(signal, rate 24 Hz). Continuous-to-discrete topology on
// timeline-presentation covers [0, 8) with step 1/24 s, start index 0,
// increment 1.
func TestScenario5TimelineDiscreteTopology(t *testing.T) {
	media := schema.NewMediaReference("signal", domain.NewPicture())
	rng := interval.New(1, 9)
	media.AvailableRange = &rng
	clip := handle.NewClip(schema.NewClip("clip", media, nil))

	identity := affine.Mapping{InputBounds: interval.Unbounded(), InputToOutput: affine.Identity}
	warp := handle.NewWarp(schema.NewWarp("warp", identity), clip)

	track := handle.NewTrack(schema.NewTrack("track"), []handle.Handle{warp})

	gen, err := sampling.New(24, 0)
	if err != nil {
		t.Fatalf("sampling.New: %v", err)
	}
	timelineSchema := schema.NewTimeline("timeline").WithPartition(domain.NewPicture(), gen)
	timeline := handle.NewTimeline(timelineSchema, track)

	bounds, err := handle.BoundsOf(timeline, space.PresentationLabel())
	if err != nil {
		t.Fatalf("BoundsOf: %v", err)
	}
	if !bounds.Start.Equal(0) || !bounds.End.Equal(8) {
		t.Fatalf("timeline presentation bounds = %+v, want [0,8)", bounds)
	}

	topo, err := ContinuousToDiscreteTopology(timeline, space.PresentationLabel(), domain.NewPicture())
	if err != nil {
		t.Fatalf("ContinuousToDiscreteTopology: %v", err)
	}
	ib, ok := topo.InputBounds()
	if !ok || !ib.Start.Equal(0) || !ib.End.Equal(8) {
		t.Fatalf("input bounds = %+v, ok=%v, want [0,8)", ib, ok)
	}

	idx0, err := ContinuousOrdinateToDiscreteIndex(timeline, space.PresentationLabel(), domain.NewPicture(), 0)
	if err != nil || idx0 != 0 {
		t.Errorf("index at 0 = %v, %v, want 0", idx0, err)
	}
	rng0, err := DiscreteIndexToContinuousRange(timeline, space.PresentationLabel(), domain.NewPicture(), 0)
	if err != nil {
		t.Fatalf("DiscreteIndexToContinuousRange: %v", err)
	}
	wantStep := ordinate.Ordinate(1.0 / 24.0)
	if !rng0.Start.Equal(0) || !rng0.End.Equal(wantStep) {
		t.Errorf("range(0) = %+v, want [0, %v)", rng0, wantStep)
	}
}

func TestNoDiscreteInfoForSpace(t *testing.T) {
	media := schema.NewMediaReference("m", domain.NewPicture())
	clip := handle.NewClip(schema.NewClip("c", media, nil))
	if _, err := DiscreteIndexToContinuousRange(clip, space.PresentationLabel(), domain.NewPicture(), 0); err != ErrNoDiscreteInfoForSpace {
		t.Errorf("got %v, want ErrNoDiscreteInfoForSpace", err)
	}
}

func TestSpaceOnObjectHasNoDiscreteSpecification(t *testing.T) {
	media := schema.NewMediaReference("m", domain.NewPicture())
	clip := handle.NewClip(schema.NewClip("c", media, nil))
	if _, err := ContinuousToDiscreteTopology(clip, space.PresentationLabel(), domain.NewPicture()); err != ErrSpaceOnObjectHasNoDiscreteSpecification {
		t.Errorf("got %v, want ErrSpaceOnObjectHasNoDiscreteSpecification", err)
	}
}

// T5: project_instantaneous_cd(project_index_dc(k).start) == k for all k.
func TestT5DiscreteRoundTripViaBridge(t *testing.T) {
	media := schema.NewMediaReference("m", domain.NewPicture())
	gen, err := sampling.New(24, 0)
	if err != nil {
		t.Fatalf("sampling.New: %v", err)
	}
	media.Partition = &gen
	clip := handle.NewClip(schema.NewClip("c", media, nil))

	for k := int64(0); k < 100; k++ {
		rng, err := DiscreteIndexToContinuousRange(clip, space.MediaLabel(), domain.NewPicture(), k)
		if err != nil {
			t.Fatalf("DiscreteIndexToContinuousRange(%d): %v", k, err)
		}
		got, err := ContinuousOrdinateToDiscreteIndex(clip, space.MediaLabel(), domain.NewPicture(), rng.Start)
		if err != nil {
			t.Fatalf("ContinuousOrdinateToDiscreteIndex: %v", err)
		}
		if got != k {
			t.Errorf("round trip of %d = %d", k, got)
		}
	}
}
