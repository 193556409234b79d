package events

import (
	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/atomicstack/lcdmenu/internal/logging"
	"github.com/atomicstack/lcdmenu/internal/menu"
)

// EngineTracer records engine transitions in the trace log. Node ids are
// resolved to names through the tree so entries stay readable.
type EngineTracer struct {
	tree *menu.Tree
}

var _ engine.Observer = (*EngineTracer)(nil)

// NewEngineTracer returns an observer tracing transitions within tree.
func NewEngineTracer(tree *menu.Tree) *EngineTracer {
	return &EngineTracer{tree: tree}
}

func (t *EngineTracer) name(id menu.NodeID) string {
	if t.tree == nil {
		return ""
	}
	n := t.tree.Node(id)
	if n == nil {
		return ""
	}
	if n.Name != "" {
		return n.Name
	}
	return n.Label
}

func (t *EngineTracer) Input(b engine.Button) {
	logging.Trace("engine.input", map[string]interface{}{"button": b.String()})
}

func (t *EngineTracer) Cursor(parent menu.NodeID, index int) {
	logging.Trace("engine.cursor", map[string]interface{}{"parent": t.name(parent), "index": index})
}

func (t *EngineTracer) Descend(from, to menu.NodeID) {
	logging.Trace("engine.descend", map[string]interface{}{"from": t.name(from), "to": t.name(to)})
}

func (t *EngineTracer) Ascend(from, to menu.NodeID) {
	logging.Trace("engine.ascend", map[string]interface{}{"from": t.name(from), "to": t.name(to)})
}

func (t *EngineTracer) Exit(full bool) {
	logging.Trace("engine.exit", map[string]interface{}{"full": full})
}

func (t *EngineTracer) Activate(node menu.NodeID, kind menu.Kind) {
	logging.Trace("engine.activate", map[string]interface{}{"node": t.name(node), "kind": kind.String()})
}

func (t *EngineTracer) EditBegin(node menu.NodeID) {
	logging.Trace("engine.edit.begin", map[string]interface{}{"node": t.name(node)})
}

func (t *EngineTracer) EditChange(node menu.NodeID) {
	logging.Trace("engine.edit.change", map[string]interface{}{"node": t.name(node)})
}

func (t *EngineTracer) Commit(w engine.Write) {
	logging.Trace("engine.edit.commit", map[string]interface{}{
		"node":  t.name(w.Node),
		"key":   w.Key,
		"kind":  w.Kind.String(),
		"width": int(w.Width),
		"raw":   w.Raw,
	})
}

func (t *EngineTracer) Abort(node menu.NodeID) {
	logging.Trace("engine.edit.abort", map[string]interface{}{"node": t.name(node)})
}

func (t *EngineTracer) HistoryDropped(parent menu.NodeID) {
	logging.Trace("engine.history.drop", map[string]interface{}{"parent": t.name(parent)})
}

func (t *EngineTracer) SelectFallback(node menu.NodeID, stored uint8) {
	logging.Trace("engine.select.fallback", map[string]interface{}{"node": t.name(node), "stored": stored})
}
