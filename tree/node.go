package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"
)

/*
We manage trees of nodes, allocated in an arena. All nodes of a tree live in
one contiguous slice and refer to each other by index (NodeID), not by
pointer. Node 0 is the root, NoNode is the null reference. This keeps a
large styled tree in a handful of allocations and makes node identity a
small stable integer which other layers may use as an index into parallel
property arrays.

Clients address nodes by NodeID for mutation, and through short-lived
*Node handles for traversal. Handles stay valid as long as no new nodes are
allocated; tree walks therefore must not overlap with tree construction.
*/

// NodeID identifies a node within the arena of its tree.
// IDs are dense: a tree with n nodes uses IDs 0…n-1.
type NodeID uint32

// NoNode is the null node reference.
const NoNode NodeID = ^NodeID(0)

func (id NodeID) String() string {
	if id == NoNode {
		return "⌀"
	}
	return fmt.Sprintf("#%d", uint32(id))
}

// Node is the base type our trees are built of.
// Nodes are stored inline in the arena of their tree; clients obtain a
// handle by calling Tree.Node(id).
type Node[T comparable] struct {
	tree        *Tree[T] // the arena this node lives in
	id          NodeID
	parent      NodeID
	firstChild  NodeID
	lastChild   NodeID
	prevSibling NodeID
	nextSibling NodeID
	childCount  uint32
	Payload     T      // nodes may carry a payload of arbitrary type
	Rank        uint32 // rank is used for preserving sequence
}

// Tree is an arena of nodes. The zero value is an empty tree, ready to use.
// The first node allocated with NewNode becomes the root.
type Tree[T comparable] struct {
	mx         sync.RWMutex
	nodes      []Node[T]
	generation uint64
}

// NewTree creates an empty tree.
func NewTree[T comparable]() *Tree[T] {
	return &Tree[T]{}
}

// Reserve pre-allocates arena space for n additional nodes.
func (t *Tree[T]) Reserve(n int) {
	t.mx.Lock()
	defer t.mx.Unlock()
	if n <= 0 {
		return
	}
	nodes := make([]Node[T], len(t.nodes), len(t.nodes)+n)
	copy(nodes, t.nodes)
	t.nodes = nodes
}

// NewNode allocates a node in the arena and returns its ID.
// The node is unattached; link it with AddChild or InsertChildAt.
//
// This operation is concurrency-safe.
func (t *Tree[T]) NewNode(payload T) NodeID {
	t.mx.Lock()
	defer t.mx.Unlock()
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node[T]{
		tree:        t,
		id:          id,
		parent:      NoNode,
		firstChild:  NoNode,
		lastChild:   NoNode,
		prevSibling: NoNode,
		nextSibling: NoNode,
		Payload:     payload,
	})
	t.generation++
	return id
}

// NodeCount returns the number of nodes allocated in the arena.
func (t *Tree[T]) NodeCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return len(t.nodes)
}

// Root returns the root node of the tree, i.e. node 0, or nil for an
// empty tree.
func (t *Tree[T]) Root() *Node[T] {
	t.mx.RLock()
	defer t.mx.RUnlock()
	if len(t.nodes) == 0 {
		return nil
	}
	return &t.nodes[0]
}

// Node returns a handle for a node ID, or nil for NoNode and unallocated
// IDs.
func (t *Tree[T]) Node(id NodeID) *Node[T] {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.node(id)
}

// node is the lock-free variant of Node; callers hold t.mx.
func (t *Tree[T]) node(id NodeID) *Node[T] {
	if id == NoNode || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Generation returns a counter which is incremented with every structural
// mutation of the tree. Clients use it to detect stale snapshots.
func (t *Tree[T]) Generation() uint64 {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.generation
}

// AddChild links a node as the last child of parent. If the child is
// currently attached elsewhere, it is detached first.
// It returns the parent's ID to allow for chaining.
//
// This operation is concurrency-safe.
func (t *Tree[T]) AddChild(parent NodeID, child NodeID) NodeID {
	t.mx.Lock()
	defer t.mx.Unlock()
	p, ch := t.node(parent), t.node(child)
	if p == nil || ch == nil || parent == child {
		tracer().Errorf("tree.AddChild called with invalid node %v/%v", parent, child)
		return parent
	}
	t.unlink(ch)
	ch.parent = parent
	t.appendLink(p, ch)
	t.generation++
	return parent
}

// InsertChildAt links a node as the child at position i of parent,
// shifting children at later positions. A position beyond the current
// child count appends. If the child is currently attached elsewhere, it
// is detached first.
// It returns the parent's ID to allow for chaining.
//
// This operation is concurrency-safe.
func (t *Tree[T]) InsertChildAt(parent NodeID, i int, child NodeID) NodeID {
	t.mx.Lock()
	defer t.mx.Unlock()
	p, ch := t.node(parent), t.node(child)
	if p == nil || ch == nil || parent == child {
		tracer().Errorf("tree.InsertChildAt called with invalid node %v/%v", parent, child)
		return parent
	}
	t.unlink(ch)
	ch.parent = parent
	if i < 0 {
		i = 0
	}
	if uint32(i) >= p.childCount { // append as last child
		t.appendLink(p, ch)
	} else {
		before := t.node(p.firstChild)
		for ; i > 0; i-- {
			before = t.node(before.nextSibling)
		}
		ch.nextSibling = before.id
		ch.prevSibling = before.prevSibling
		if before.prevSibling == NoNode {
			p.firstChild = child
		} else {
			t.node(before.prevSibling).nextSibling = child
		}
		before.prevSibling = child
		p.childCount++
	}
	t.generation++
	return parent
}

// appendLink links ch at the end of p's child chain; callers hold t.mx.
func (t *Tree[T]) appendLink(p *Node[T], ch *Node[T]) {
	if p.lastChild == NoNode {
		p.firstChild = ch.id
		p.lastChild = ch.id
	} else {
		last := t.node(p.lastChild)
		last.nextSibling = ch.id
		ch.prevSibling = p.lastChild
		p.lastChild = ch.id
	}
	p.childCount++
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node's ID.
func (t *Tree[T]) Isolate(n NodeID) NodeID {
	t.mx.Lock()
	defer t.mx.Unlock()
	if node := t.node(n); node != nil {
		t.unlink(node)
		t.generation++
	}
	return n
}

// unlink detaches a node from its parent's child chain; callers hold t.mx.
func (t *Tree[T]) unlink(node *Node[T]) {
	if node.parent == NoNode {
		return
	}
	p := t.node(node.parent)
	if node.prevSibling == NoNode {
		p.firstChild = node.nextSibling
	} else {
		t.node(node.prevSibling).nextSibling = node.nextSibling
	}
	if node.nextSibling == NoNode {
		p.lastChild = node.prevSibling
	} else {
		t.node(node.nextSibling).prevSibling = node.prevSibling
	}
	node.parent = NoNode
	node.prevSibling = NoNode
	node.nextSibling = NoNode
	p.childCount--
}

// --- Node handles ----------------------------------------------------

func (node *Node[T]) String() string {
	if node == nil {
		return "(Node ⌀)"
	}
	return fmt.Sprintf("(Node %v #ch=%d %v)", node.id, node.ChildCount(), node.Payload)
}

// ID returns the arena ID of this node.
func (node *Node[T]) ID() NodeID {
	if node == nil {
		return NoNode
	}
	return node.id
}

// Tree returns the tree this node belongs to.
func (node *Node[T]) Tree() *Tree[T] {
	if node == nil {
		return nil
	}
	return node.tree
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	if node == nil || node.parent == NoNode {
		return nil
	}
	return node.tree.Node(node.parent)
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return int(node.childCount)
}

// Child returns the children-node at a position, counting from 0.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if node == nil || n < 0 || n >= int(node.childCount) {
		return nil, false
	}
	ch := node.tree.Node(node.firstChild)
	for ; n > 0; n-- {
		ch = node.tree.Node(ch.nextSibling)
	}
	return ch, ch != nil
}

// Children returns a slice with all children of a node.
func (node *Node[T]) Children() []*Node[T] {
	if node == nil || node.childCount == 0 {
		return nil
	}
	children := make([]*Node[T], 0, node.childCount)
	for id := node.firstChild; id != NoNode; {
		ch := node.tree.Node(id)
		children = append(children, ch)
		id = ch.nextSibling
	}
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1. ch may not be nil.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	if node == nil || ch == nil || ch.parent != node.id {
		return -1
	}
	position := 0
	for id := node.firstChild; id != NoNode; position++ {
		if id == ch.id {
			return position
		}
		id = node.tree.Node(id).nextSibling
	}
	return -1
}
