package menu

import (
	"errors"
	"strings"
	"testing"
)

func buildSample(t *testing.T) (*Tree, map[string]NodeID) {
	t.Helper()
	var speed uint8
	var mode uint8
	var flags uint8
	b := NewBuilder()
	ids := map[string]NodeID{}
	ids["speed"] = b.Value("speed", "Speed", ByteValue("speed", &speed, 0, 10))
	ids["mode"] = b.Value("mode", "Mode", SelectValue("mode", &mode, Option{"Slow", 1}, Option{"Fast", 2}))
	ids["invert"] = b.Value("invert", "Invert", FlagValue("flags", &flags, 3))
	ids["motion"] = b.Submenu("motion", "Motion", ids["speed"], ids["mode"], ids["invert"])
	ids["reset"] = b.Action("reset", "Reset", ActionFunc(func() {}))
	ids["root"] = b.Submenu("root", "Main", ids["motion"], ids["reset"])
	tree, err := b.Build(ids["root"])
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return tree, ids
}

func TestBuilderProducesTree(t *testing.T) {
	tree, ids := buildSample(t)
	if tree.Root() != ids["root"] {
		t.Fatalf("expected root %d, got %d", ids["root"], tree.Root())
	}
	if got := tree.ChildCount(ids["motion"]); got != 3 {
		t.Fatalf("expected 3 children, got %d", got)
	}
	child, ok := tree.Child(ids["root"], 1)
	if !ok || child != ids["reset"] {
		t.Fatalf("expected reset as second child, got %d (%v)", child, ok)
	}
	if _, ok := tree.Child(ids["root"], 2); ok {
		t.Fatalf("expected out of range child lookup to fail")
	}
	if id, ok := tree.Lookup("mode"); !ok || id != ids["mode"] {
		t.Fatalf("expected lookup of mode, got %d (%v)", id, ok)
	}
	if tree.Node(NodeID(tree.Len())) != nil {
		t.Fatalf("expected nil node past the arena")
	}
}

func TestNodeKindsFollowPayload(t *testing.T) {
	tree, ids := buildSample(t)
	cases := map[string]Kind{
		"root":   KindSubmenu,
		"speed":  KindValue,
		"reset":  KindAction,
		"motion": KindSubmenu,
	}
	for name, want := range cases {
		if got := tree.Node(ids[name]).Kind(); got != want {
			t.Fatalf("expected %s to be %s, got %s", name, want, got)
		}
	}
	if _, ok := tree.Node(ids["reset"]).Descriptor(); ok {
		t.Fatalf("action node must not expose a descriptor")
	}
	if children := tree.Node(ids["speed"]).Children(); children != nil {
		t.Fatalf("value node must not expose children, got %v", children)
	}
}

func TestNewTreeRejectsInvalidNodes(t *testing.T) {
	var cell uint8
	var wide int16
	cases := []struct {
		name   string
		nodes  []Node
		root   NodeID
		reason string
	}{
		{"empty", nil, 0, "no nodes"},
		{"root not submenu", []Node{{Label: "x", Payload: Invoke{}}}, 0, "root must be a submenu"},
		{"root out of range", []Node{{Label: "x", Payload: Submenu{Children: []NodeID{0}}}}, 4, "root out of range"},
		{"empty submenu", []Node{{Label: "x", Payload: Submenu{}}}, 0, "no children"},
		{"dangling child", []Node{{Label: "x", Payload: Submenu{Children: []NodeID{7}}}}, 0, "out of range"},
		{"kind mismatch", []Node{
			{Label: "root", Payload: Submenu{Children: []NodeID{1}}},
			{Label: "v", Payload: Value{Descriptor: Descriptor{Kind: Byte, Storage: IntCell{Ptr: &wide}}}},
		}, 0, "does not match"},
		{"bounds", []Node{
			{Label: "root", Payload: Submenu{Children: []NodeID{1}}},
			{Label: "v", Payload: Value{Descriptor: ByteValue("v", &cell, 5, 1)}},
		}, 0, "greater than max"},
		{"int bounds beyond storage", []Node{
			{Label: "root", Payload: Submenu{Children: []NodeID{1}}},
			{Label: "v", Payload: Value{Descriptor: IntValue("v", &wide, -40000, 40000)}},
		}, 0, "exceed int range"},
		{"byte bounds beyond storage", []Node{
			{Label: "root", Payload: Submenu{Children: []NodeID{1}}},
			{Label: "v", Payload: Value{Descriptor: ByteValue("v", &cell, 0, 300)}},
		}, 0, "exceed byte range"},
		{"flag bit", []Node{
			{Label: "root", Payload: Submenu{Children: []NodeID{1}}},
			{Label: "v", Payload: Value{Descriptor: FlagValue("v", &cell, 8)}},
		}, 0, "flag bit"},
		{"empty select", []Node{
			{Label: "root", Payload: Submenu{Children: []NodeID{1}}},
			{Label: "v", Payload: Value{Descriptor: SelectValue("v", &cell)}},
		}, 0, "no options"},
		{"duplicate name", []Node{
			{Name: "a", Label: "root", Payload: Submenu{Children: []NodeID{1}}},
			{Name: "a", Label: "act", Payload: Invoke{}},
		}, 0, "already used"},
	}
	for _, tc := range cases {
		_, err := NewTree(tc.nodes, tc.root)
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !errors.Is(err, ErrInvalidTree) {
			t.Fatalf("%s: expected ErrInvalidTree, got %v", tc.name, err)
		}
		if !strings.Contains(err.Error(), tc.reason) {
			t.Fatalf("%s: expected %q in %q", tc.name, tc.reason, err.Error())
		}
	}
}

func TestWalkVisitsReachableNodesOnce(t *testing.T) {
	b := NewBuilder()
	leaf := b.Action("leaf", "Leaf", nil)
	shared := b.Submenu("shared", "Shared", leaf)
	b.Action("orphan", "Orphan", nil)
	root := b.Submenu("root", "Root", shared, shared)
	tree, err := b.Build(root)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	depths := map[NodeID]int{}
	tree.Walk(func(id NodeID, depth int) {
		if _, dup := depths[id]; dup {
			t.Fatalf("node %d visited twice", id)
		}
		depths[id] = depth
	})
	if len(depths) != 3 {
		t.Fatalf("expected 3 reachable nodes, got %d", len(depths))
	}
	if depths[leaf] != 2 {
		t.Fatalf("expected leaf at depth 2, got %d", depths[leaf])
	}
}

func TestRunActionToleratesNil(t *testing.T) {
	RunAction(nil)
	var f ActionFunc
	f.Run()
	called := false
	RunAction(ActionFunc(func() { called = true }))
	if !called {
		t.Fatalf("expected action to run")
	}
}
