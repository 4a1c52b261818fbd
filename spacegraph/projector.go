package spacegraph

import (
	"github.com/edl-space/chronotree/edges"
	"github.com/edl-space/chronotree/handle"
	"github.com/edl-space/chronotree/space"
	"github.com/edl-space/chronotree/topology"
	"github.com/edl-space/chronotree/treecode"
)

// Project composes the topology that carries coordinates from source to
// destination, per spec.md §4.5: walk from source up to their lowest
// common ancestor, inverting each step along the way, then down from the
// ancestor to destination, composing forward steps; fold the two halves
// together with topology.Join (grounded on opentimelineio/item.go's
// TransformedTime, which walks up to a common ancestor then back down).
func Project(t *TemporalTree, source, destination space.Node[handle.Handle]) (topology.Topology, error) {
	srcIdx, ok := t.IndexOf(source)
	if !ok {
		return topology.Topology{}, ErrNodeNotFound
	}
	dstIdx, ok := t.IndexOf(destination)
	if !ok {
		return topology.Topology{}, ErrNodeNotFound
	}

	srcCode, _ := t.tree.CodeFromNode(srcIdx)
	dstCode, _ := t.tree.CodeFromNode(dstIdx)
	lcaCode := treecode.LCA(srcCode, dstCode)
	lcaIdx, ok := t.tree.IndexForNode(lcaCode)
	if !ok {
		return topology.Topology{}, ErrNodeNotFound
	}

	upTopo, err := t.walkUpTopology(srcIdx, lcaIdx)
	if err != nil {
		return topology.Topology{}, err
	}
	downTopo, err := t.walkDownTopology(lcaIdx, dstIdx)
	if err != nil {
		return topology.Topology{}, err
	}
	return topology.Join(upTopo, downTopo)
}

// walkUpTopology composes the inverse of each edge from idx up to (and
// excluding) ancestor: moving from a child to its parent is the reverse
// of the parent's step rule towards that child.
func (t *TemporalTree) walkUpTopology(idx, ancestor int) (topology.Topology, error) {
	result := topology.IdentityInfinite()
	cur := idx
	for cur != ancestor {
		parentIdx, ok := t.tree.ParentOf(cur)
		if !ok {
			return topology.Topology{}, ErrNodeNotFound
		}
		parentNode, ok := t.tree.Value(parentIdx)
		if !ok {
			return topology.Topology{}, ErrNodeNotFound
		}
		parentCode, _ := t.tree.CodeFromNode(parentIdx)
		curCode, _ := t.tree.CodeFromNode(cur)
		dir, err := parentCode.NextStepTowards(curCode)
		if err != nil {
			return topology.Topology{}, err
		}
		forward, err := edges.StepTopology(parentNode.Item, parentNode.Label, dir)
		if err != nil {
			return topology.Topology{}, err
		}
		inv, err := forward.Invert()
		if err != nil {
			return topology.Topology{}, err
		}
		result, err = topology.Join(result, inv)
		if err != nil {
			return topology.Topology{}, err
		}
		cur = parentIdx
	}
	return result, nil
}

// walkDownTopology composes the forward edge steps from ancestor down to
// idx.
func (t *TemporalTree) walkDownTopology(ancestor, idx int) (topology.Topology, error) {
	chain := []int{idx}
	cur := idx
	for cur != ancestor {
		parentIdx, ok := t.tree.ParentOf(cur)
		if !ok {
			return topology.Topology{}, ErrNodeNotFound
		}
		chain = append(chain, parentIdx)
		cur = parentIdx
	}
	// chain runs idx...ancestor; reverse it to ancestor...idx.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	result := topology.IdentityInfinite()
	for i := 0; i < len(chain)-1; i++ {
		curIdx, nextIdx := chain[i], chain[i+1]
		curNode, ok := t.tree.Value(curIdx)
		if !ok {
			return topology.Topology{}, ErrNodeNotFound
		}
		curCode, _ := t.tree.CodeFromNode(curIdx)
		nextCode, _ := t.tree.CodeFromNode(nextIdx)
		dir, err := curCode.NextStepTowards(nextCode)
		if err != nil {
			return topology.Topology{}, err
		}
		step, err := edges.StepTopology(curNode.Item, curNode.Label, dir)
		if err != nil {
			return topology.Topology{}, err
		}
		result, err = topology.Join(result, step)
		if err != nil {
			return topology.Topology{}, err
		}
	}
	return result, nil
}

// ProjectNamed is a convenience wrapper around Project that takes each
// endpoint as an (item, label) pair instead of a prebuilt space.Node
// (SPEC_FULL.md §11's supplemental ergonomics): e.g. ProjectNamed(t, track,
// space.PresentationLabel(), clip, space.MediaLabel()).
func ProjectNamed(t *TemporalTree, srcItem handle.Handle, srcLabel space.Label, dstItem handle.Handle, dstLabel space.Label) (topology.Topology, error) {
	return Project(t, space.Node[handle.Handle]{Item: srcItem, Label: srcLabel}, space.Node[handle.Handle]{Item: dstItem, Label: dstLabel})
}
