// Package spacegraph implements the space-graph builder (C5 of spec.md
// §4.5): it expands a schema item tree into the (object, space) graph
// whose nodes are path-coded, and projects coordinates between any two
// graph nodes by composing the one-step topologies of package edges along
// the tree path between them (grounded on opentimelineio/item.go's
// TransformedTime: walk up to the common ancestor, then down to the
// target, composing transforms along the way).
package spacegraph

import (
	"errors"

	"github.com/edl-space/chronotree/handle"
	"github.com/edl-space/chronotree/space"
	"github.com/edl-space/chronotree/treecode"
)

// ErrNodeNotFound is returned when a requested SpaceNode was never
// inserted into the tree.
var ErrNodeNotFound = errors.New("spacegraph: space node not present in tree")

// ErrDuplicateSpaceNode is returned when the same (item, label) pair would
// be inserted twice, e.g. because the same item handle was aliased under
// two parents (spec.md §7: "structural invariant violations in
// construction (duplicate SpaceNode) are asserted and indicate a caller
// bug"). Note this is a distinct check from the underlying
// treecode.BinaryTree's code collision: two aliased occurrences of the
// same item get distinct path codes (different tree positions), so only an
// explicit (item, label) check catches this case.
var ErrDuplicateSpaceNode = errors.New("spacegraph: item already has a node for this space (aliased child)")

// TemporalTree is the (object, space) graph produced by Build.
// It pairs a treecode.BinaryTree with a reverse index from SpaceNode to
// tree index, since a treecode.BinaryTree only knows how to look nodes up
// by Code.
type TemporalTree struct {
	tree      *treecode.BinaryTree[space.Node[handle.Handle]]
	nodeIndex map[space.Node[handle.Handle]]int
}

// Len returns the number of (object, space) nodes in the tree.
func (t *TemporalTree) Len() int { return t.tree.Len() }

// IndexOf returns the tree index of node, if present.
func (t *TemporalTree) IndexOf(node space.Node[handle.Handle]) (int, bool) {
	idx, ok := t.nodeIndex[node]
	return idx, ok
}

// CodeOf returns the path code of node, if present.
func (t *TemporalTree) CodeOf(node space.Node[handle.Handle]) (treecode.Code, bool) {
	idx, ok := t.IndexOf(node)
	if !ok {
		return treecode.Code{}, false
	}
	return t.tree.CodeFromNode(idx)
}

// Tree exposes the underlying treecode.BinaryTree for diagnostics (see
// package diag).
func (t *TemporalTree) Tree() *treecode.BinaryTree[space.Node[handle.Handle]] {
	return t.tree
}

func (t *TemporalTree) put(node space.Node[handle.Handle], code treecode.Code, parentIdx int) (int, error) {
	if _, exists := t.nodeIndex[node]; exists {
		return -1, ErrDuplicateSpaceNode
	}
	idx, err := t.tree.Put(node, code, parentIdx)
	if err != nil {
		return -1, err
	}
	t.nodeIndex[node] = idx
	return idx, nil
}

// Build expands root into a TemporalTree, per spec.md §4.5. The tree is
// pointer-locked (spec.md §5) before being returned.
func Build(root handle.Handle) (*TemporalTree, error) {
	t := &TemporalTree{
		tree:      treecode.NewBinaryTree[space.Node[handle.Handle]](),
		nodeIndex: make(map[space.Node[handle.Handle]]int),
	}
	if err := t.walk(root, treecode.Root(), -1); err != nil {
		return nil, err
	}
	t.tree.LockPointers()
	return t, nil
}

// walk implements walk_internal_spaces followed by walk_child_spaces for
// one item, then recurses into its children. code is the path code the
// item's first internal space should receive; parentIdx is that first
// space's parent node index.
func (t *TemporalTree) walk(item handle.Handle, code treecode.Code, parentIdx int) error {
	lastCode, lastIdx, err := t.walkInternalSpaces(item, code, parentIdx)
	if err != nil {
		return err
	}
	return t.walkChildSpaces(item, lastCode, lastIdx)
}

// walkInternalSpaces inserts one node per entry of AvailableLocalSpaces,
// in declared order. The first reuses the inherited code; every
// subsequent space appends a left bit to the previous space's code.
func (t *TemporalTree) walkInternalSpaces(item handle.Handle, code treecode.Code, parentIdx int) (treecode.Code, int, error) {
	labels := handle.AvailableLocalSpaces(item)
	lastCode := code
	lastIdx := parentIdx
	for i, label := range labels {
		var thisCode treecode.Code
		var thisParent int
		if i == 0 {
			thisCode = code
			thisParent = parentIdx
		} else {
			thisCode = lastCode.Append(treecode.Left)
			thisParent = lastIdx
		}
		node := space.Node[handle.Handle]{Item: item, Label: label}
		idx, err := t.put(node, thisCode, thisParent)
		if err != nil {
			return treecode.Code{}, -1, err
		}
		lastCode, lastIdx = thisCode, idx
	}
	return lastCode, lastIdx, nil
}

// walkChildSpaces inserts one child(i) wrapper node per child, each
// appending a right bit to the previous child-wrapper's code (or the last
// internal-space index for i == 0), then recurses into the child with its
// own code descending left from the wrapper.
func (t *TemporalTree) walkChildSpaces(item handle.Handle, lastInternalCode treecode.Code, lastInternalIdx int) error {
	children := handle.ChildrenRefs(item)
	prevCode := lastInternalCode
	prevIdx := lastInternalIdx
	for i, child := range children {
		wrapperCode := prevCode.Append(treecode.Right)
		wrapperLabel := space.ChildLabel(i)
		wrapperNode := space.Node[handle.Handle]{Item: item, Label: wrapperLabel}
		wrapperIdx, err := t.put(wrapperNode, wrapperCode, prevIdx)
		if err != nil {
			return err
		}
		if err := t.walk(child, wrapperCode.Append(treecode.Left), wrapperIdx); err != nil {
			return err
		}
		prevCode, prevIdx = wrapperCode, wrapperIdx
	}
	return nil
}
