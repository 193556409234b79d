package asset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/lcdmenu/internal/menu"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultAsset []byte

// ErrUnknownAction is returned when a node names an action missing from
// the registry.
var ErrUnknownAction = errors.New("unknown action")

// Registry maps action names used in assets to their hooks.
type Registry map[string]menu.Action

type document struct {
	Title string     `yaml:"title"`
	Root  string     `yaml:"root"`
	Nodes []nodeSpec `yaml:"nodes"`
}

type nodeSpec struct {
	Name     string     `yaml:"name"`
	Label    string     `yaml:"label"`
	Kind     string     `yaml:"kind"`
	Children []string   `yaml:"children,omitempty"`
	Value    *valueSpec `yaml:"value,omitempty"`
	Action   string     `yaml:"action,omitempty"`
	Callback string     `yaml:"callback,omitempty"`
}

type valueSpec struct {
	Type    string       `yaml:"type"`
	Key     string       `yaml:"key"`
	Min     int64        `yaml:"min"`
	Max     int64        `yaml:"max"`
	Default float64      `yaml:"default"`
	Bit     uint8        `yaml:"bit"`
	Options []optionSpec `yaml:"options,omitempty"`
}

type optionSpec struct {
	Label string `yaml:"label"`
	Value uint8  `yaml:"value"`
}

// Asset is a decoded menu tree together with the storage cells its values
// live in.
type Asset struct {
	Title string
	Tree  *menu.Tree

	cells    map[string]menu.Descriptor
	defaults map[string]uint32
	order    []string
}

// Default decodes the embedded motion controller menu.
func Default(actions Registry) (*Asset, error) {
	return Parse(defaultAsset, actions)
}

// DefaultSource returns the embedded asset document.
func DefaultSource() []byte {
	return append([]byte(nil), defaultAsset...)
}

// Load reads and decodes the asset at path.
func Load(path string, actions Registry) (*Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}
	a, err := Parse(data, actions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Parse decodes an asset document. Action names are resolved through
// actions; a nil registry leaves every hook unbound instead of failing,
// which lets tools inspect assets without a host.
func Parse(data []byte, actions Registry) (*Asset, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode asset: %w", err)
	}
	if len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("decode asset: no nodes")
	}
	ids := make(map[string]menu.NodeID, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if n.Name == "" {
			return nil, fmt.Errorf("node %d: missing name", i)
		}
		if _, dup := ids[n.Name]; dup {
			return nil, fmt.Errorf("node %q: defined twice", n.Name)
		}
		ids[n.Name] = menu.NodeID(i)
	}

	a := &Asset{
		Title:    doc.Title,
		cells:    make(map[string]menu.Descriptor),
		defaults: make(map[string]uint32),
	}
	flagBytes := make(map[string]*uint8)
	nodes := make([]menu.Node, len(doc.Nodes))
	for i, spec := range doc.Nodes {
		label := spec.Label
		if label == "" {
			label = spec.Name
		}
		node := menu.Node{Name: spec.Name, Label: label}
		kind := strings.ToLower(strings.TrimSpace(spec.Kind))
		if kind == "" {
			kind = inferKind(spec)
		}
		switch kind {
		case "submenu":
			children := make([]menu.NodeID, 0, len(spec.Children))
			for _, c := range spec.Children {
				id, ok := ids[c]
				if !ok {
					return nil, fmt.Errorf("node %q: unknown child %q", spec.Name, c)
				}
				children = append(children, id)
			}
			node.Payload = menu.Submenu{Children: children}
		case "value", "value+callback":
			if spec.Value == nil {
				return nil, fmt.Errorf("node %q: value section missing", spec.Name)
			}
			d, err := a.descriptor(spec.Name, *spec.Value, flagBytes)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", spec.Name, err)
			}
			if kind == "value" {
				node.Payload = menu.Value{Descriptor: d}
				break
			}
			cb, err := resolve(actions, spec.Callback)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", spec.Name, err)
			}
			node.Payload = menu.ValueWithCallback{Descriptor: d, Callback: cb}
		case "action", "screen":
			hook, err := resolve(actions, spec.Action)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", spec.Name, err)
			}
			if kind == "action" {
				node.Payload = menu.Invoke{Run: hook}
			} else {
				node.Payload = menu.Screen{Run: hook}
			}
		default:
			return nil, fmt.Errorf("node %q: unknown kind %q", spec.Name, spec.Kind)
		}
		nodes[i] = node
	}

	rootName := doc.Root
	if rootName == "" {
		rootName = doc.Nodes[0].Name
	}
	root, ok := ids[rootName]
	if !ok {
		return nil, fmt.Errorf("unknown root %q", rootName)
	}
	tree, err := menu.NewTree(nodes, root)
	if err != nil {
		return nil, err
	}
	a.Tree = tree
	return a, nil
}

// Hooks lists the distinct action and callback names a document refers
// to, in document order.
func Hooks(data []byte) ([]string, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode asset: %w", err)
	}
	seen := make(map[string]bool)
	var names []string
	for _, n := range doc.Nodes {
		for _, name := range []string{n.Action, n.Callback} {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}

func inferKind(spec nodeSpec) string {
	switch {
	case len(spec.Children) > 0:
		return "submenu"
	case spec.Value != nil && spec.Callback != "":
		return "value+callback"
	case spec.Value != nil:
		return "value"
	}
	return "action"
}

func resolve(actions Registry, name string) (menu.Action, error) {
	if name == "" || actions == nil {
		return nil, nil
	}
	a, ok := actions[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAction, name)
	}
	return a, nil
}

// descriptor allocates the storage cell for a value and seeds it with the
// default. Flags naming the same key share one byte.
func (a *Asset) descriptor(name string, v valueSpec, flagBytes map[string]*uint8) (menu.Descriptor, error) {
	kind, ok := menu.ParseValueKind(strings.ToLower(v.Type))
	if !ok {
		return menu.Descriptor{}, fmt.Errorf("unknown value type %q", v.Type)
	}
	key := v.Key
	if key == "" {
		key = name
	}
	var d menu.Descriptor
	switch kind {
	case menu.Byte:
		d = menu.ByteValue(key, new(uint8), v.Min, v.Max)
	case menu.Int:
		d = menu.IntValue(key, new(int16), v.Min, v.Max)
	case menu.UInt:
		d = menu.UIntValue(key, new(uint16), v.Min, v.Max)
	case menu.Long:
		d = menu.LongValue(key, new(int32), v.Min, v.Max)
	case menu.ULong:
		d = menu.ULongValue(key, new(uint32), v.Min, v.Max)
	case menu.Float, menu.Float10, menu.Float100, menu.Float1000:
		d = menu.FloatValue(key, kind, new(float32), v.Min, v.Max)
	case menu.Select:
		opts := make([]menu.Option, len(v.Options))
		for i, o := range v.Options {
			opts[i] = menu.Option{Label: o.Label, Value: o.Value}
		}
		d = menu.SelectValue(key, new(uint8), opts...)
	case menu.BitFlag:
		if prev, used := a.cells[key]; used && prev.Kind != menu.BitFlag {
			return menu.Descriptor{}, fmt.Errorf("key %q already used by a %s value", key, prev.Kind)
		}
		target, shared := flagBytes[key]
		if !shared {
			target = new(uint8)
			flagBytes[key] = target
		}
		d = menu.FlagValue(key, target, v.Bit)
		if v.Default != 0 {
			*target |= 1 << v.Bit
		}
		if !shared {
			a.order = append(a.order, key)
		}
		a.cells[key] = d
		a.defaults[key] = uint32(*target)
		return d, nil
	}
	if _, dup := a.cells[key]; dup {
		return menu.Descriptor{}, fmt.Errorf("key %q already used", key)
	}
	d.SetRaw(encodeDefault(kind, v.Default))
	a.cells[key] = d
	a.defaults[key] = d.Raw()
	a.order = append(a.order, key)
	return d, nil
}

// Keys lists persistence keys in document order.
func (a *Asset) Keys() []string {
	return append([]string(nil), a.order...)
}

// Descriptor returns the descriptor owning key.
func (a *Asset) Descriptor(key string) (menu.Descriptor, bool) {
	d, ok := a.cells[key]
	return d, ok
}

// ResetDefaults writes every default back into its cell and returns the
// keys touched.
func (a *Asset) ResetDefaults() []string {
	for _, key := range a.order {
		a.cells[key].SetRaw(a.defaults[key])
	}
	return a.Keys()
}
