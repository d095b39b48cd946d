// Package stree implements an online suffix tree. Bytes are appended to the
// text one at a time and the tree is updated in amortized constant time per
// byte using Ukkonen's algorithm.
//
// The tree isn't terminated: suffixes that are prefixes of other suffixes
// end implicitly inside edges. Append a unique terminator byte to get a leaf
// for every suffix.
package stree

import (
	"fmt"
	"math"
)

// EdgeLen gives the length of the edge leading to a node. Leaf edges have the
// length Open and extend to the end of the text.
type EdgeLen int32

// Open marks a leaf edge that grows with the text.
const Open EdgeLen = -1

// Edge describes a node and the edge leading to it. The label of the edge
// starts at position Start of the text. The root has Parent -1 and an empty
// edge.
type Edge struct {
	Node   int32
	Parent int32
	Start  int32
	Len    EdgeLen
}

// node is a single node in the arena.
type node struct {
	parent   int32
	start    int32
	len      EdgeLen
	children map[byte]int32
}

const (
	root = 0
	none = -1
)

// Tree is an online suffix tree. Nodes are identified by integers; the root
// has the id 0. Node ids never change while the tree grows, but an append may
// split the edge leading to a node. The zero value isn't usable; use New.
type Tree struct {
	text  []byte
	nodes []node
	links map[int32]int32

	// active point
	activeNode int32
	activeEdge int32
	activeLen  int32
	// number of suffixes that still need to be inserted explicitly
	remainder int32
	// internal node waiting for its suffix link
	needLink int32
}

// New creates an empty suffix tree.
func New() *Tree {
	t := &Tree{
		links:    make(map[int32]int32),
		needLink: none,
	}
	t.nodes = append(t.nodes, node{parent: none})
	return t
}

// Text returns the text of the tree. The slice must not be modified.
func (t *Tree) Text() []byte { return t.text }

// Len returns the length of the text.
func (t *Tree) Len() int { return len(t.text) }

// NumNodes returns the number of nodes including the root.
func (t *Tree) NumNodes() int { return len(t.nodes) }

func (t *Tree) newNode(parent, start int32, n EdgeLen) int32 {
	id := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{parent: parent, start: start, len: n})
	return id
}

func (t *Tree) setChild(parent int32, c byte, child int32) {
	nd := &t.nodes[parent]
	if nd.children == nil {
		nd.children = make(map[byte]int32, 2)
	}
	nd.children[c] = child
	t.nodes[child].parent = parent
}

// edgeLen returns the current length of the edge leading to node id.
func (t *Tree) edgeLen(id int32) int32 {
	nd := &t.nodes[id]
	if nd.len == Open {
		return int32(len(t.text)) - nd.start
	}
	return int32(nd.len)
}

// addLink sets the suffix link of the node waiting for it to id and makes
// id the node waiting for a link.
func (t *Tree) addLink(id int32) {
	if t.needLink > root {
		t.links[t.needLink] = id
	}
	t.needLink = id
}

// Append adds the byte c to the text and updates the tree.
func (t *Tree) Append(c byte) {
	if len(t.text) >= math.MaxInt32 {
		panic(fmt.Errorf("stree: text length exceeds MaxInt32"))
	}
	pos := int32(len(t.text))
	t.text = append(t.text, c)
	t.needLink = none
	t.remainder++
	for t.remainder > 0 {
		if t.activeLen == 0 {
			t.activeEdge = pos
		}
		a := t.text[t.activeEdge]
		child, ok := t.nodes[t.activeNode].children[a]
		if !ok {
			leaf := t.newNode(t.activeNode, pos, Open)
			t.setChild(t.activeNode, a, leaf)
			t.addLink(t.activeNode)
		} else {
			if n := t.edgeLen(child); t.activeLen >= n {
				// The active point lies below child.
				t.activeEdge += n
				t.activeLen -= n
				t.activeNode = child
				continue
			}
			start := t.nodes[child].start
			if t.text[start+t.activeLen] == c {
				// The suffix is already in the tree.
				t.activeLen++
				t.addLink(t.activeNode)
				break
			}
			split := t.newNode(t.activeNode, start,
				EdgeLen(t.activeLen))
			t.setChild(t.activeNode, a, split)
			leaf := t.newNode(split, pos, Open)
			t.setChild(split, c, leaf)
			cn := &t.nodes[child]
			cn.start += t.activeLen
			if cn.len != Open {
				cn.len -= EdgeLen(t.activeLen)
			}
			t.setChild(split, t.text[cn.start], child)
			t.addLink(split)
		}
		t.remainder--
		if t.activeNode == root && t.activeLen > 0 {
			t.activeLen--
			t.activeEdge = pos - t.remainder + 1
		} else if l, ok := t.links[t.activeNode]; ok {
			t.activeNode = l
		} else {
			t.activeNode = root
		}
	}
}

// Write appends all bytes of p to the tree. It implements io.Writer and never
// returns an error.
func (t *Tree) Write(p []byte) (n int, err error) {
	for _, c := range p {
		t.Append(c)
	}
	return len(p), nil
}

func (t *Tree) check(id int) {
	if !(0 <= id && id < len(t.nodes)) {
		panic(fmt.Errorf("stree: node id %d out of range [0,%d)",
			id, len(t.nodes)))
	}
}

// Node returns the description of node id. It panics if the node doesn't
// exist.
func (t *Tree) Node(id int) Edge {
	t.check(id)
	nd := &t.nodes[id]
	return Edge{
		Node:   int32(id),
		Parent: nd.parent,
		Start:  nd.start,
		Len:    nd.len,
	}
}

// EdgeLabel returns the label of the edge leading to node id. For leaves the
// label extends to the end of the text.
func (t *Tree) EdgeLabel(id int) []byte {
	t.check(id)
	s := t.nodes[id].start
	return t.text[s : s+t.edgeLen(int32(id))]
}

// Depth returns the length of the path label of node id.
func (t *Tree) Depth(id int) int {
	t.check(id)
	d := 0
	for i := int32(id); i != none; i = t.nodes[i].parent {
		d += int(t.edgeLen(i))
	}
	return d
}

// PathLabel returns the concatenation of the edge labels from the root to
// node id.
func (t *Tree) PathLabel(id int) []byte {
	d := t.Depth(id)
	p := make([]byte, d)
	for i := int32(id); i != none; i = t.nodes[i].parent {
		n := int(t.edgeLen(i))
		s := t.nodes[i].start
		copy(p[d-n:d], t.text[s:])
		d -= n
	}
	return p
}

// IsLeaf reports whether node id is a leaf.
func (t *Tree) IsLeaf(id int) bool {
	t.check(id)
	return t.nodes[id].len == Open
}

// Child returns the child of node id whose edge label starts with c.
func (t *Tree) Child(id int, c byte) (child int, ok bool) {
	t.check(id)
	k, ok := t.nodes[id].children[c]
	return int(k), ok
}

// NumChildren returns the number of children of node id.
func (t *Tree) NumChildren(id int) int {
	t.check(id)
	return len(t.nodes[id].children)
}

// SuffixLink returns the suffix link of the internal node id. The path label
// of the target is the path label of id without its first byte. Only
// internal nodes other than the root have suffix links.
func (t *Tree) SuffixLink(id int) (target int, ok bool) {
	t.check(id)
	k, ok := t.links[int32(id)]
	return int(k), ok
}

// Edges calls f for all nodes in the order of their ids.
func (t *Tree) Edges(f func(e Edge)) {
	for id := range t.nodes {
		f(t.Node(id))
	}
}

// Contains reports whether p is a substring of the text.
func (t *Tree) Contains(p []byte) bool {
	id := int32(root)
	for len(p) > 0 {
		k, ok := t.nodes[id].children[p[0]]
		if !ok {
			return false
		}
		id = k
		s := t.nodes[id].start
		n := min(int(t.edgeLen(id)), len(p))
		for i := 1; i < n; i++ {
			if t.text[int(s)+i] != p[i] {
				return false
			}
		}
		p = p[n:]
	}
	return true
}
