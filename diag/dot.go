package diag

import (
	"github.com/edl-space/chronotree/handle"
	"github.com/edl-space/chronotree/space"
	"github.com/edl-space/chronotree/spacegraph"
)

// NodeLabel renders a space.Node[handle.Handle] as "<name-or-kind> <label>"
// for use with DumpDot.
func NodeLabel(n space.Node[handle.Handle]) string {
	name, ok := handle.MaybeName(n.Item)
	if !ok {
		name = n.Item.Kind().String()
	}
	return name + " " + n.Label.String()
}

// DumpDot renders t as Graphviz dot source through fsys, for visual
// inspection of a built TemporalTree. Grounded on treecode.BinaryTree's
// own DotExport plus bundle/fs.go's FileSystem-abstracted writes, so tests
// can substitute memfs instead of touching the real filesystem.
func DumpDot(fsys FileSystem, path string, t *spacegraph.TemporalTree) error {
	dot := t.Tree().DotExport(NodeLabel)
	return fsys.WriteFile(path, []byte(dot), 0o644)
}

// DumpDotFile is the common case of DumpDot against the real filesystem.
func DumpDotFile(path string, t *spacegraph.TemporalTree) error {
	return DumpDot(DefaultFS, path, t)
}
