package stree

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
)

func newTree(s string) *Tree {
	t := New()
	t.Write([]byte(s))
	return t
}

func logTree(t *testing.T, tr *Tree) {
	tr.Edges(func(e Edge) {
		t.Logf("%3d parent=%3d %q", e.Node, e.Parent,
			tr.EdgeLabel(int(e.Node)))
	})
}

// checkStructure verifies the parent/child relations, the branching of
// internal nodes and the suffix links.
func checkStructure(t *testing.T, tr *Tree) {
	t.Helper()
	tr.Edges(func(e Edge) {
		id := int(e.Node)
		if id == 0 {
			if e.Parent != -1 || e.Len != 0 {
				t.Fatalf("root is %+v", e)
			}
			return
		}
		label := tr.EdgeLabel(id)
		if len(label) == 0 {
			t.Fatalf("node %d has an empty edge label", id)
		}
		k, ok := tr.Child(int(e.Parent), label[0])
		if !ok || k != id {
			t.Fatalf("node %d isn't the child of %d for %q",
				id, e.Parent, label[0])
		}
		if tr.IsLeaf(id) {
			if tr.NumChildren(id) != 0 {
				t.Fatalf("leaf %d has children", id)
			}
			return
		}
		if e.Len == Open {
			t.Fatalf("internal node %d has an open edge", id)
		}
		if n := tr.NumChildren(id); n < 2 {
			t.Fatalf("internal node %d has %d children; want >= 2",
				id, n)
		}
		l, ok := tr.SuffixLink(id)
		if !ok {
			t.Fatalf("internal node %d has no suffix link", id)
		}
		p, q := tr.PathLabel(id), tr.PathLabel(l)
		if !bytes.Equal(p[1:], q) {
			t.Fatalf("suffix link %d -> %d: %q -> %q", id, l, p, q)
		}
	})
}

func TestTreeSmall(t *testing.T) {
	tr := newTree("abab$")
	logTree(t, tr)
	checkStructure(t, tr)
	// root, "ab", "b" and five leaves
	if n := tr.NumNodes(); n != 8 {
		t.Fatalf("NumNodes() = %d; want %d", n, 8)
	}
	ab, ok := tr.Child(0, 'a')
	if !ok {
		t.Fatalf("root has no child for 'a'")
	}
	if got := string(tr.PathLabel(ab)); got != "ab" {
		t.Fatalf("PathLabel(%d) = %q; want %q", ab, got, "ab")
	}
	l, ok := tr.SuffixLink(ab)
	if !ok || string(tr.PathLabel(l)) != "b" {
		t.Fatalf("SuffixLink(%d) = %d, %t; want node for %q",
			ab, l, ok, "b")
	}
}

func TestTreeOpenEdge(t *testing.T) {
	tr := New()
	tr.Append('a')
	leaf, ok := tr.Child(0, 'a')
	if !ok {
		t.Fatalf("root has no child for 'a'")
	}
	tr.Append('a')
	tr.Append('b')
	if e := tr.Node(leaf); e.Len != Open {
		t.Fatalf("Node(%d).Len = %d; want Open", leaf, e.Len)
	}
	checkStructure(t, tr)
}

// leafLabels returns the sorted path labels of all leaves.
func leafLabels(tr *Tree) []string {
	var a []string
	tr.Edges(func(e Edge) {
		if tr.IsLeaf(int(e.Node)) {
			a = append(a, string(tr.PathLabel(int(e.Node))))
		}
	})
	slices.Sort(a)
	return a
}

func allSuffixes(s string) []string {
	a := make([]string, len(s))
	for i := range s {
		a[i] = s[i:]
	}
	slices.Sort(a)
	return a
}

func TestTreeLeaves(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tests := []string{
		"a$",
		"aaaa$",
		"abab$",
		"bananaba$",
		"mississippi$",
		"=====foofoobarfoobar bartender====$",
	}
	for i := 0; i < 40; i++ {
		p := make([]byte, r.Intn(100))
		for j := range p {
			p[j] = 'a' + byte(r.Intn(1+i%3))
		}
		tests = append(tests, string(p)+"$")
	}
	for _, tc := range tests {
		tr := newTree(tc)
		checkStructure(t, tr)
		if diff := cmp.Diff(allSuffixes(tc), leafLabels(tr)); diff != "" {
			t.Fatalf("%q: leaf labels mismatch (-want +got):\n%s",
				tc, diff)
		}
	}
}

func TestTreeOnline(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		tr := New()
		var text []byte
		for j := 0; j < 150; j++ {
			c := 'a' + byte(r.Intn(1+i%4))
			tr.Append(c)
			text = append(text, c)
			checkStructure(t, tr)
		}
		if !bytes.Equal(tr.Text(), text) {
			t.Fatalf("Text() = %q; want %q", tr.Text(), text)
		}
		for a := 0; a < len(text); a++ {
			for b := a + 1; b <= len(text) && b <= a+20; b++ {
				if !tr.Contains(text[a:b]) {
					t.Fatalf("Contains(%q) = false; want true",
						text[a:b])
				}
			}
		}
	}
}

func TestTreeContains(t *testing.T) {
	const s = "=====foofoobarfoobar bartender===="
	tr := newTree(s)
	tests := []string{
		"", "=", "foo", "foobar ", "bartender====", "bartender=====",
		"barf", "fob", "x", s, s + "=",
	}
	for _, tc := range tests {
		want := bytes.Contains([]byte(s), []byte(tc))
		if got := tr.Contains([]byte(tc)); got != want {
			t.Errorf("Contains(%q) = %t; want %t", tc, got, want)
		}
	}
}

func TestTreeWrite(t *testing.T) {
	tr := New()
	n, err := tr.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write error %s", err)
	}
	if n != 5 || tr.Len() != 5 {
		t.Fatalf("Write returned %d, Len() = %d; want 5", n, tr.Len())
	}
}

func TestTreeNodePanics(t *testing.T) {
	tr := newTree("ab")
	defer func() {
		if recover() == nil {
			t.Fatalf("Node(%d) didn't panic", tr.NumNodes())
		}
	}()
	tr.Node(tr.NumNodes())
}

func FuzzTree(f *testing.F) {
	f.Add([]byte("abab"))
	f.Add([]byte("bananaba"))
	f.Add([]byte("aaaaaaaaab"))
	f.Fuzz(func(t *testing.T, p []byte) {
		if len(p) > 200 {
			p = p[:200]
		}
		tr := New()
		tr.Write(p)
		checkStructure(t, tr)
		for a := range p {
			if !tr.Contains(p[a:]) {
				t.Fatalf("Contains(%q) = false; want true", p[a:])
			}
		}
	})
}
