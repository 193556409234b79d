package menu

import (
	"errors"
	"fmt"
)

// ErrInvalidTree is wrapped by every ValidationError.
var ErrInvalidTree = errors.New("invalid menu tree")

// ValidationError reports the node that failed tree validation.
type ValidationError struct {
	Node   NodeID
	Name   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("menu: node %d (%s): %s", e.Node, e.Name, e.Reason)
	}
	return fmt.Sprintf("menu: node %d: %s", e.Node, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidTree
}

// Tree is an immutable arena of menu nodes addressed by NodeID.
type Tree struct {
	nodes []Node
	root  NodeID
	names map[string]NodeID
}

// NewTree validates nodes and wraps them in a Tree rooted at root. The
// slice is copied; callers may not mutate the tree afterwards.
func NewTree(nodes []Node, root NodeID) (*Tree, error) {
	if len(nodes) == 0 {
		return nil, &ValidationError{Node: root, Reason: "tree has no nodes"}
	}
	if len(nodes) >= int(NoNode) {
		return nil, &ValidationError{Node: root, Reason: fmt.Sprintf("too many nodes (%d)", len(nodes))}
	}
	t := &Tree{
		nodes: append([]Node(nil), nodes...),
		root:  root,
		names: make(map[string]NodeID, len(nodes)),
	}
	if int(root) >= len(nodes) {
		return nil, &ValidationError{Node: root, Reason: "root out of range"}
	}
	if t.nodes[root].Kind() != KindSubmenu {
		return nil, &ValidationError{Node: root, Name: t.nodes[root].Name, Reason: "root must be a submenu"}
	}
	for i := range t.nodes {
		id := NodeID(i)
		if err := t.validate(id); err != nil {
			return nil, err
		}
		if name := t.nodes[i].Name; name != "" {
			if prev, dup := t.names[name]; dup {
				return nil, &ValidationError{Node: id, Name: name, Reason: fmt.Sprintf("name already used by node %d", prev)}
			}
			t.names[name] = id
		}
	}
	return t, nil
}

func (t *Tree) validate(id NodeID) error {
	n := &t.nodes[id]
	fail := func(format string, args ...interface{}) error {
		return &ValidationError{Node: id, Name: n.Name, Reason: fmt.Sprintf(format, args...)}
	}
	if n.Payload == nil {
		return fail("missing payload")
	}
	switch n.Kind() {
	case KindSubmenu:
		children := n.Children()
		if len(children) == 0 {
			return fail("submenu has no children")
		}
		if len(children) > 255 {
			return fail("submenu has %d children, limit is 255", len(children))
		}
		for _, child := range children {
			if int(child) >= len(t.nodes) {
				return fail("child %d out of range", child)
			}
		}
	case KindValue, KindValueWithCallback:
		d, _ := n.Descriptor()
		if d.Storage == nil {
			return fail("value has no storage")
		}
		if !storageMatches(d.Kind, d.Storage) {
			return fail("storage %T does not match kind %s", d.Storage, d.Kind)
		}
		if d.Min > d.Max {
			return fail("min %d greater than max %d", d.Min, d.Max)
		}
		if lo, hi, ok := d.Kind.Range(); ok && d.Bounded() && (d.Min < lo || d.Max > hi) {
			return fail("bounds [%d, %d] exceed %s range [%d, %d]", d.Min, d.Max, d.Kind, lo, hi)
		}
		switch s := d.Storage.(type) {
		case SelectCell:
			if len(s.Options) == 0 {
				return fail("select has no options")
			}
			if len(s.Options) > 255 {
				return fail("select has %d options, limit is 255", len(s.Options))
			}
		case FlagCell:
			if s.Bit > 7 {
				return fail("flag bit %d out of range", s.Bit)
			}
		}
	}
	return nil
}

// Root returns the root submenu id.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len reports the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node for id, or nil when id is out of range.
func (t *Tree) Node(id NodeID) *Node {
	if t == nil || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Lookup locates a node by name.
func (t *Tree) Lookup(name string) (NodeID, bool) {
	id, ok := t.names[name]
	return id, ok
}

// ChildCount returns the number of children of a submenu, zero otherwise.
func (t *Tree) ChildCount(id NodeID) int {
	return len(t.Node(id).Children())
}

// Child returns the idx-th child of a submenu.
func (t *Tree) Child(parent NodeID, idx int) (NodeID, bool) {
	children := t.Node(parent).Children()
	if idx < 0 || idx >= len(children) {
		return NoNode, false
	}
	return children[idx], true
}

// Walk visits every node reachable from the root once, depth first, with
// the depth at which it was first seen.
func (t *Tree) Walk(fn func(id NodeID, depth int)) {
	seen := make([]bool, len(t.nodes))
	var visit func(id NodeID, depth int)
	visit = func(id NodeID, depth int) {
		if seen[id] {
			return
		}
		seen[id] = true
		fn(id, depth)
		for _, child := range t.nodes[id].Children() {
			visit(child, depth+1)
		}
	}
	visit(t.root, 0)
}

// Builder assembles a tree bottom-up: children are added before the
// submenu that lists them.
type Builder struct {
	nodes []Node
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a node and returns its id.
func (b *Builder) Add(n Node) NodeID {
	b.nodes = append(b.nodes, n)
	return NodeID(len(b.nodes) - 1)
}

// Submenu adds a submenu listing children.
func (b *Builder) Submenu(name, label string, children ...NodeID) NodeID {
	return b.Add(Node{Name: name, Label: label, Payload: Submenu{Children: children}})
}

// Value adds an editable leaf.
func (b *Builder) Value(name, label string, d Descriptor) NodeID {
	return b.Add(Node{Name: name, Label: label, Payload: Value{Descriptor: d}})
}

// ValueWithCallback adds an editable leaf whose callback fires after commit.
func (b *Builder) ValueWithCallback(name, label string, d Descriptor, callback Action) NodeID {
	return b.Add(Node{Name: name, Label: label, Payload: ValueWithCallback{Descriptor: d, Callback: callback}})
}

// Action adds a node running a in place.
func (b *Builder) Action(name, label string, a Action) NodeID {
	return b.Add(Node{Name: name, Label: label, Payload: Invoke{Run: a}})
}

// Screen adds a node handing control to an exclusive screen.
func (b *Builder) Screen(name, label string, a Action) NodeID {
	return b.Add(Node{Name: name, Label: label, Payload: Screen{Run: a}})
}

// Build validates the collected nodes.
func (b *Builder) Build(root NodeID) (*Tree, error) {
	return NewTree(b.nodes, root)
}
