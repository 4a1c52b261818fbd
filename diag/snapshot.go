package diag

import (
	"github.com/bytedance/sonic"

	"github.com/edl-space/chronotree/spacegraph"
)

// NodeSnapshot is one (item, space) vertex of a TemporalTree, flattened to
// plain data for serialization: handle.Handle itself carries internal
// pointers and isn't meaningful outside the process that built it, so a
// snapshot records just enough to inspect or diff a tree offline.
type NodeSnapshot struct {
	Index       int    `json:"index"`
	ParentIndex int    `json:"parent_index"`
	Code        string `json:"code"`
	Label       string `json:"label"`
	Item        string `json:"item"`
}

// Snapshot is a whole TemporalTree flattened to NodeSnapshots, in index
// order.
type Snapshot struct {
	Nodes []NodeSnapshot `json:"nodes"`
}

// BuildSnapshot flattens t into a Snapshot.
func BuildSnapshot(t *spacegraph.TemporalTree) Snapshot {
	tree := t.Tree()
	snap := Snapshot{Nodes: make([]NodeSnapshot, 0, tree.Len())}
	for idx := 0; idx < tree.Len(); idx++ {
		node, _ := tree.Value(idx)
		code, _ := tree.CodeFromNode(idx)
		parentIdx, hasParent := tree.ParentOf(idx)
		if !hasParent {
			parentIdx = -1
		}
		snap.Nodes = append(snap.Nodes, NodeSnapshot{
			Index:       idx,
			ParentIndex: parentIdx,
			Code:        code.String(),
			Label:       node.Label.String(),
			Item:        NodeLabel(node),
		})
	}
	return snap
}

// DumpSnapshot marshals t's snapshot as JSON via sonic and writes it
// through fsys. Grounded on opentimelineio/decode_sonic.go's use of
// sonic for OTIO's own JSON round trip, applied here to a diagnostic
// rather than a wire format.
func DumpSnapshot(fsys FileSystem, path string, t *spacegraph.TemporalTree) error {
	data, err := sonic.Marshal(BuildSnapshot(t))
	if err != nil {
		return err
	}
	return fsys.WriteFile(path, data, 0o644)
}

// LoadSnapshot reads and unmarshals a Snapshot previously written by
// DumpSnapshot.
func LoadSnapshot(fsys FileSystem, path string) (Snapshot, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := sonic.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
