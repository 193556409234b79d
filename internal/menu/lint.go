package menu

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Severity ranks lint findings.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue is a single lint finding.
type Issue struct {
	Node     NodeID
	Severity Severity
	Message  string
}

// LintOptions carries the display geometry labels are checked against.
type LintOptions struct {
	// LabelWidth is the number of columns available to a list label.
	LabelWidth int
	// ValueWidth is the number of columns available on the edit value row.
	ValueWidth int
}

// Lint reports authoring problems that validation accepts but that render
// or persist poorly.
func Lint(t *Tree, opts LintOptions) []Issue {
	var issues []Issue
	add := func(id NodeID, sev Severity, format string, args ...interface{}) {
		issues = append(issues, Issue{Node: id, Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	reachable := make([]bool, t.Len())
	t.Walk(func(id NodeID, _ int) { reachable[id] = true })

	keys := make(map[string]NodeID)
	for i := 0; i < t.Len(); i++ {
		id := NodeID(i)
		n := t.Node(id)
		if !reachable[i] {
			add(id, SeverityWarning, "node %q is not reachable from the root", displayName(n))
		}
		if opts.LabelWidth > 0 && len(n.Label) > opts.LabelWidth {
			add(id, SeverityWarning, "label %q is %d columns, only %d are shown", n.Label, len(n.Label), opts.LabelWidth)
		}
		switch n.Kind() {
		case KindSubmenu:
			lintSiblings(t, id, add)
		case KindValue, KindValueWithCallback:
			d, _ := n.Descriptor()
			if d.Key == "" {
				add(id, SeverityWarning, "value %q has no persistence key", displayName(n))
			} else if d.Kind != BitFlag {
				if prev, dup := keys[d.Key]; dup {
					add(id, SeverityError, "key %q already used by node %d", d.Key, prev)
				} else {
					keys[d.Key] = id
				}
			}
			if sel, ok := d.Storage.(SelectCell); ok && opts.ValueWidth > 0 {
				for _, opt := range sel.Options {
					if len(opt.Label) > opts.ValueWidth {
						add(id, SeverityWarning, "option %q is %d columns, only %d are shown", opt.Label, len(opt.Label), opts.ValueWidth)
					}
				}
			}
		case KindAction, KindScreen:
			if n.Hook() == nil {
				add(id, SeverityWarning, "%s %q has no action bound", n.Kind(), displayName(n))
			}
		}
	}
	return issues
}

func lintSiblings(t *Tree, parent NodeID, add func(NodeID, Severity, string, ...interface{})) {
	children := t.Node(parent).Children()
	for i := 0; i < len(children); i++ {
		a := strings.ToLower(strings.TrimSpace(t.Node(children[i]).Label))
		for j := i + 1; j < len(children); j++ {
			b := strings.ToLower(strings.TrimSpace(t.Node(children[j]).Label))
			if a == b {
				add(children[j], SeverityError, "duplicate label %q under %q", b, displayName(t.Node(parent)))
				continue
			}
			if len(a) > 3 && levenshtein.ComputeDistance(a, b) <= 1 {
				add(children[j], SeverityWarning, "label %q is easily confused with %q", t.Node(children[j]).Label, t.Node(children[i]).Label)
			}
		}
	}
}

func displayName(n *Node) string {
	if n.Name != "" {
		return n.Name
	}
	return strings.TrimSpace(n.Label)
}
