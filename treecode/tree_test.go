package treecode

import "testing"

func TestPutAndLookup(t *testing.T) {
	tree := NewBinaryTree[string]()
	root := Root()
	rootIdx, err := tree.Put("root", root, -1)
	if err != nil {
		t.Fatalf("Put root: %v", err)
	}
	leftIdx, err := tree.Put("left", root.Append(Left), rootIdx)
	if err != nil {
		t.Fatalf("Put left: %v", err)
	}
	rightIdx, err := tree.Put("right", root.Append(Right), rootIdx)
	if err != nil {
		t.Fatalf("Put right: %v", err)
	}

	if c, _ := tree.ChildOf(rootIdx, Left); c != leftIdx {
		t.Errorf("ChildOf(root,Left) = %d, want %d", c, leftIdx)
	}
	if c, _ := tree.ChildOf(rootIdx, Right); c != rightIdx {
		t.Errorf("ChildOf(root,Right) = %d, want %d", c, rightIdx)
	}
	if p, ok := tree.ParentOf(leftIdx); !ok || p != rootIdx {
		t.Errorf("ParentOf(left) = %d, %v, want %d, true", p, ok, rootIdx)
	}
}

func TestPutDuplicate(t *testing.T) {
	tree := NewBinaryTree[int]()
	root := Root()
	if _, err := tree.Put(1, root, -1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tree.Put(2, root, -1); err != ErrAlreadyPresent {
		t.Errorf("Put duplicate = %v, want ErrAlreadyPresent", err)
	}
}

func TestLockPointers(t *testing.T) {
	tree := NewBinaryTree[int]()
	root := Root()
	tree.Put(1, root, -1)
	tree.LockPointers()
	if _, err := tree.Put(2, root.Append(Left), 0); err != ErrTreeLocked {
		t.Errorf("Put after lock = %v, want ErrTreeLocked", err)
	}
}

func TestPath(t *testing.T) {
	tree := NewBinaryTree[string]()
	root := Root()
	rootIdx, _ := tree.Put("root", root, -1)
	leftIdx, _ := tree.Put("left", root.Append(Left), rootIdx)
	leftLeftIdx, _ := tree.Put("left.left", root.Append(Left).Append(Left), leftIdx)
	rightIdx, _ := tree.Put("right", root.Append(Right), rootIdx)

	path, err := tree.Path(leftLeftIdx, rightIdx)
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	want := []int{leftLeftIdx, leftIdx, rootIdx, rightIdx}
	if len(path) != len(want) {
		t.Fatalf("Path() = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("Path()[%d] = %d, want %d", i, path[i], want[i])
		}
	}
}

func TestGraphClosure(t *testing.T) {
	// T4: after construction, every non-root node has a parent, and
	// parent.children[next_step_towards(node.code)] == node.index.
	tree := NewBinaryTree[int]()
	root := Root()
	rootIdx, _ := tree.Put(0, root, -1)
	leftIdx, _ := tree.Put(1, root.Append(Left), rootIdx)
	tree.LockPointers()

	if tree.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tree.Len())
	}
	if _, ok := tree.ParentOf(rootIdx); ok {
		t.Errorf("root must not report a parent")
	}
	dir, err := root.NextStepTowards(root.Append(Left))
	if err != nil {
		t.Fatalf("NextStepTowards error: %v", err)
	}
	if c, ok := tree.ChildOf(rootIdx, dir); !ok || c != leftIdx {
		t.Errorf("ChildOf(root, %v) = %d, %v, want %d, true", dir, c, ok, leftIdx)
	}
}
