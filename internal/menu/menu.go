package menu

// NodeID addresses a node inside a Tree arena.
type NodeID uint16

// NoNode marks the absence of a node reference.
const NoNode NodeID = 0xFFFF

// Kind identifies how a node behaves when activated.
type Kind uint8

const (
	KindSubmenu Kind = iota
	KindValue
	KindValueWithCallback
	KindAction
	KindScreen
)

func (k Kind) String() string {
	switch k {
	case KindSubmenu:
		return "submenu"
	case KindValue:
		return "value"
	case KindValueWithCallback:
		return "value+callback"
	case KindAction:
		return "action"
	case KindScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// Action is a zero-argument hook fired by action, screen and callback nodes.
type Action interface {
	Run()
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func()

// Run calls f.
func (f ActionFunc) Run() {
	if f != nil {
		f()
	}
}

// RunAction invokes a, treating a nil reference as a no-op.
func RunAction(a Action) {
	if a == nil {
		return
	}
	a.Run()
}

// Payload is the kind-dependent part of a node. The set of implementations
// is closed: Submenu, Value, ValueWithCallback, Invoke and Screen.
type Payload interface {
	kind() Kind
}

// Submenu lists the ordered children of a menu level.
type Submenu struct {
	Children []NodeID
}

// Value is an editable leaf.
type Value struct {
	Descriptor Descriptor
}

// ValueWithCallback is an editable leaf whose Callback fires after commit.
type ValueWithCallback struct {
	Descriptor Descriptor
	Callback   Action
}

// Invoke runs an action in place; navigation does not move.
type Invoke struct {
	Run Action
}

// Screen hands control to an exclusive full-screen action.
type Screen struct {
	Run Action
}

func (Submenu) kind() Kind           { return KindSubmenu }
func (Value) kind() Kind             { return KindValue }
func (ValueWithCallback) kind() Kind { return KindValueWithCallback }
func (Invoke) kind() Kind            { return KindAction }
func (Screen) kind() Kind            { return KindScreen }

// Node is one immutable entry of the menu tree.
type Node struct {
	// Name is an optional stable identifier used by assets, tracing and lookups.
	Name    string
	Label   string
	Payload Payload
}

// Kind reports the node kind derived from its payload.
func (n *Node) Kind() Kind {
	if n == nil || n.Payload == nil {
		return KindAction
	}
	return n.Payload.kind()
}

// Descriptor returns the value descriptor of a leaf node.
func (n *Node) Descriptor() (*Descriptor, bool) {
	if n == nil {
		return nil, false
	}
	switch p := n.Payload.(type) {
	case Value:
		return &p.Descriptor, true
	case *Value:
		return &p.Descriptor, true
	case ValueWithCallback:
		return &p.Descriptor, true
	case *ValueWithCallback:
		return &p.Descriptor, true
	}
	return nil, false
}

// Children returns the ordered children of a submenu node.
func (n *Node) Children() []NodeID {
	if n == nil {
		return nil
	}
	switch p := n.Payload.(type) {
	case Submenu:
		return p.Children
	case *Submenu:
		return p.Children
	}
	return nil
}

// Hook returns the action attached to an action, screen or callback node.
func (n *Node) Hook() Action {
	if n == nil {
		return nil
	}
	switch p := n.Payload.(type) {
	case Invoke:
		return p.Run
	case *Invoke:
		return p.Run
	case Screen:
		return p.Run
	case *Screen:
		return p.Run
	case ValueWithCallback:
		return p.Callback
	case *ValueWithCallback:
		return p.Callback
	}
	return nil
}
