package treecode

import "testing"

func TestRootString(t *testing.T) {
	if got := Root().String(); got != "0b1" {
		t.Errorf("Root().String() = %q, want %q", got, "0b1")
	}
	if Root().Length() != 0 {
		t.Errorf("Root().Length() = %d, want 0", Root().Length())
	}
}

func TestAppend(t *testing.T) {
	c := Root().Append(Left).Append(Right).Append(Left)
	if got := c.String(); got != "0b1010" {
		t.Errorf("Append chain = %q, want %q", got, "0b1010")
	}
	if c.Length() != 3 {
		t.Errorf("Length() = %d, want 3", c.Length())
	}
}

func TestIsAncestorOf(t *testing.T) {
	root := Root()
	child := root.Append(Left)
	grandchild := child.Append(Right)
	if !root.IsAncestorOf(grandchild) {
		t.Errorf("root should be ancestor of grandchild")
	}
	if !child.IsAncestorOf(grandchild) {
		t.Errorf("child should be ancestor of grandchild")
	}
	if grandchild.IsAncestorOf(child) {
		t.Errorf("grandchild must not be ancestor of child")
	}
}

func TestNextStepTowards(t *testing.T) {
	root := Root()
	child := root.Append(Left)
	grandchild := child.Append(Right)

	dir, err := root.NextStepTowards(grandchild)
	if err != nil || dir != Left {
		t.Errorf("NextStepTowards = %v, %v, want Left, nil", dir, err)
	}
	dir, err = child.NextStepTowards(grandchild)
	if err != nil || dir != Right {
		t.Errorf("NextStepTowards = %v, %v, want Right, nil", dir, err)
	}
	if _, err := grandchild.NextStepTowards(child); err != ErrNotDescendant {
		t.Errorf("expected ErrNotDescendant, got %v", err)
	}
}

func TestLCA(t *testing.T) {
	root := Root()
	a := root.Append(Left).Append(Left)
	b := root.Append(Left).Append(Right)
	lca := LCA(a, b)
	if !lca.Eql(root.Append(Left)) {
		t.Errorf("LCA(a,b) = %v, want root.Append(Left)", lca)
	}

	c := root.Append(Right)
	lca2 := LCA(a, c)
	if !lca2.Eql(root) {
		t.Errorf("LCA(a,c) = %v, want root", lca2)
	}

	if !LCA(a, a).Eql(a) {
		t.Errorf("LCA(a,a) must equal a")
	}
}
