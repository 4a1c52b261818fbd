// chronoframe builds a small demonstration item tree, runs the space-graph
// builder over it, and prints the node count plus the fixed
// track-presentation -> last-clip-media projection. Grounded on cmd/otiogen/main.go's flag
// parsing and stdlib log usage, and examples/build_simple_timeline/main.go's
// "build a fixed timeline, report a summary" shape.
//
// Usage:
//
//	go run ./cmd/chronoframe -dot tree.dot -snapshot tree.json
package main

import (
	"flag"
	"log"

	"github.com/edl-space/chronotree/diag"
	"github.com/edl-space/chronotree/domain"
	"github.com/edl-space/chronotree/handle"
	"github.com/edl-space/chronotree/interval"
	"github.com/edl-space/chronotree/ordinate"
	"github.com/edl-space/chronotree/schema"
	"github.com/edl-space/chronotree/space"
	"github.com/edl-space/chronotree/spacegraph"
)

func main() {
	dotPath := flag.String("dot", "", "write a Graphviz .dot export of the built tree to this path")
	snapshotPath := flag.String("snapshot", "", "write a JSON debug snapshot of the built tree to this path")
	flag.Parse()

	track, lastClip := demoTrack()
	tree, err := spacegraph.Build(track)
	if err != nil {
		log.Fatalf("chronoframe: build temporal tree: %v", err)
	}

	log.Printf("built tree with %d nodes", tree.Len())

	topo, err := spacegraph.ProjectNamed(tree, track, space.PresentationLabel(), lastClip, space.MediaLabel())
	if err != nil {
		log.Fatalf("chronoframe: project track-presentation -> clip-media: %v", err)
	}
	ib, _ := topo.InputBounds()
	ob, _, _ := topo.OutputBounds()
	log.Printf("track-presentation -> last-clip-media: input %v, output %v", ib, ob)

	if *dotPath != "" {
		if err := diag.DumpDotFile(*dotPath, tree); err != nil {
			log.Fatalf("chronoframe: dump dot: %v", err)
		}
		log.Printf("wrote %s", *dotPath)
	}
	if *snapshotPath != "" {
		if err := diag.DumpSnapshot(diag.DefaultFS, *snapshotPath, tree); err != nil {
			log.Fatalf("chronoframe: dump snapshot: %v", err)
		}
		log.Printf("wrote %s", *snapshotPath)
	}
}

// demoTrack constructs Track = [clip("opening", media [0,5)),
// clip("interview", media [0,300)), clip("broll", media [0,20))] and
// returns the track handle plus its last clip's handle.
func demoTrack() (handle.Handle, handle.Handle) {
	opening := mediaClip("opening", 0, 5)
	interview := mediaClip("interview", 0, 300)
	broll := mediaClip("broll", 0, 20)

	track := handle.NewTrack(schema.NewTrack("Documentary Edit v1"), []handle.Handle{opening, interview, broll})
	return track, broll
}

func mediaClip(name string, start, end ordinate.Ordinate) handle.Handle {
	media := schema.NewMediaReference(name+"-media", domain.NewPicture())
	rng := interval.New(start, end)
	media.AvailableRange = &rng
	return handle.NewClip(schema.NewClip(name, media, nil))
}
