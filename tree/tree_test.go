package tree

import (
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
	"go.uber.org/goleak"
)

// buildTestTree creates this tree:
//
//	root
//	├── a
//	│   ├── a1
//	│   └── a2
//	└── b
//	    └── b1
func buildTestTree() (*Tree[string], map[string]NodeID) {
	tree := NewTree[string]()
	ids := make(map[string]NodeID)
	for _, name := range []string{"root", "a", "a1", "a2", "b", "b1"} {
		ids[name] = tree.NewNode(name)
	}
	tree.AddChild(ids["root"], ids["a"])
	tree.AddChild(ids["a"], ids["a1"])
	tree.AddChild(ids["a"], ids["a2"])
	tree.AddChild(ids["root"], ids["b"])
	tree.AddChild(ids["b"], ids["b1"])
	return tree, ids
}

func TestArenaCreateNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.tree")
	defer teardown()
	//
	tree, ids := buildTestTree()
	t.Logf("test tree =\n%s", printTree(tree))
	if tree.NodeCount() != 6 {
		t.Errorf("expected arena to hold 6 nodes, has %d", tree.NodeCount())
	}
	if tree.Root().Payload != "root" {
		t.Errorf("expected node 0 to be the root, is %v", tree.Root())
	}
	a := tree.Node(ids["a"])
	if a.ChildCount() != 2 {
		t.Errorf("expected node a to have 2 children, has %d", a.ChildCount())
	}
	if ch, ok := a.Child(1); !ok || ch.Payload != "a2" {
		t.Errorf("expected child #1 of a to be a2, is %v", ch)
	}
	b1 := tree.Node(ids["b1"])
	if b1.Parent().Payload != "b" {
		t.Errorf("expected parent of b1 to be b, is %v", b1.Parent())
	}
	if a.IndexOfChild(tree.Node(ids["a2"])) != 1 {
		t.Error("expected a2 to be at position 1, isn't")
	}
}

func TestArenaIsolate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.tree")
	defer teardown()
	//
	tree, ids := buildTestTree()
	gen := tree.Generation()
	tree.Isolate(ids["a2"])
	a := tree.Node(ids["a"])
	if a.ChildCount() != 1 {
		t.Errorf("expected a to have 1 child after isolating a2, has %d", a.ChildCount())
	}
	if tree.Node(ids["a2"]).Parent() != nil {
		t.Error("expected a2 to have no parent after isolation, has one")
	}
	if tree.Generation() == gen {
		t.Error("expected tree generation to change with structural mutation, didn't")
	}
}

func TestArenaInsertChildAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.tree")
	defer teardown()
	//
	tree, ids := buildTestTree()
	a0 := tree.NewNode("a0")
	tree.InsertChildAt(ids["a"], 0, a0)
	a := tree.Node(ids["a"])
	if a.ChildCount() != 3 {
		t.Fatalf("expected a to have 3 children, has %d", a.ChildCount())
	}
	var names []string
	for _, ch := range a.Children() {
		names = append(names, ch.Payload)
	}
	if strings.Join(names, " ") != "a0 a1 a2" {
		t.Errorf("expected children of a to be [a0 a1 a2], are %v", names)
	}
	// moving an attached node re-links it
	tree.InsertChildAt(ids["root"], 0, ids["b"])
	root := tree.Root()
	first, _ := root.Child(0)
	if first.Payload != "b" {
		t.Errorf("expected first child of root to be b now, is %v", first)
	}
	if root.ChildCount() != 2 {
		t.Errorf("expected root to still have 2 children, has %d", root.ChildCount())
	}
}

func TestWalkerEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.tree")
	defer teardown()
	//
	future := NewWalker[string](nil).Promise()
	if _, err := future(); err != ErrEmptyTree {
		t.Errorf("expected walking an empty tree to fail with ErrEmptyTree, got %v", err)
	}
}

func TestWalkerAllDescendents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree, _ := buildTestTree()
	future := NewWalker(tree.Root()).AllDescendents().Promise()
	nodes, err := future()
	if err != nil {
		t.Error(err)
	}
	if len(nodes) != 5 {
		t.Errorf("expected 5 descendents of root, got %d", len(nodes))
	}
}

func TestWalkerAncestorWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree, ids := buildTestTree()
	isRoot := func(test *Node[string], node *Node[string]) (*Node[string], error) {
		if test.Payload == "root" {
			return test, nil
		}
		return nil, nil
	}
	future := NewWalker(tree.Node(ids["a1"])).AncestorWith(isRoot).Promise()
	nodes, err := future()
	if err != nil {
		t.Error(err)
	}
	if len(nodes) != 1 || nodes[0].Payload != "root" {
		t.Errorf("expected to find ancestor root of a1, got %v", nodes)
	}
}

func TestWalkerFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree, _ := buildTestTree()
	aish := func(test *Node[string], node *Node[string]) (*Node[string], error) {
		if strings.HasPrefix(test.Payload, "a") {
			return test, nil
		}
		return nil, nil
	}
	future := NewWalker(tree.Root()).AllDescendents().Filter(aish).Promise()
	nodes, err := future()
	if err != nil {
		t.Error(err)
	}
	if len(nodes) != 3 {
		t.Errorf("expected filter to select [a a1 a2], got %v", nodes)
	}
}

func TestWalkerTopDownOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree, _ := buildTestTree()
	var mx sync.Mutex
	var sequence []*Node[string]
	record := func(n *Node[string], parent *Node[string], position int) (*Node[string], error) {
		mx.Lock()
		defer mx.Unlock()
		sequence = append(sequence, n)
		return n, nil
	}
	future := NewWalker(tree.Root()).TopDown(record).Promise()
	if _, err := future(); err != nil {
		t.Error(err)
	}
	if len(sequence) != 6 {
		t.Fatalf("expected top-down walk to visit 6 nodes, visited %d", len(sequence))
	}
	visited := make(map[*Node[string]]int)
	for i, n := range sequence {
		visited[n] = i
	}
	for _, n := range sequence {
		if p := n.Parent(); p != nil {
			if visited[p] > visited[n] {
				t.Errorf("node %v visited before its parent %v", n, p)
			}
		}
	}
}

func TestWalkerBottomUpRank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree, ids := buildTestTree()
	future := NewWalker(tree.Root()).DescendentsWith(NodeIsLeaf[string]()).BottomUp(CalcRank[string]).Promise()
	if _, err := future(); err != nil {
		t.Error(err)
	}
	if rank := tree.Root().Rank; rank != 6 {
		t.Errorf("expected rank of root to equal node count 6, is %d", rank)
	}
	if rank := tree.Node(ids["a"]).Rank; rank != 3 {
		t.Errorf("expected rank of a to be 3, is %d", rank)
	}
	if rank := tree.Node(ids["b1"]).Rank; rank != 1 {
		t.Errorf("expected rank of leaf b1 to be 1, is %d", rank)
	}
}

func TestWalkerGoroutineHygiene(t *testing.T) {
	defer goleak.VerifyNone(t)
	//
	tree, _ := buildTestTree()
	future := NewWalker(tree.Root()).AllDescendents().Promise()
	if _, err := future(); err != nil {
		t.Error(err)
	}
}

// --- Helpers ---------------------------------------------------------

func printTree(tree *Tree[string]) string {
	p := tp.New()
	ppt(p, tree.Root())
	return p.String()
}

func ppt(p tp.Tree, node *Node[string]) {
	if node == nil {
		return
	}
	if node.ChildCount() == 0 {
		p.AddNode(node.Payload)
		return
	}
	branch := p.AddBranch(node.Payload)
	for _, ch := range node.Children() {
		ppt(branch, ch)
	}
}
