package engine

import (
	"fmt"
	"strings"

	"github.com/atomicstack/lcdmenu/internal/menu"
)

const (
	DefaultRows   = 2
	DefaultCols   = 16
	DefaultCursor = ">"
)

// Engine walks a menu tree in response to button events. It is single
// owner and non-reentrant: HandleInput must not be called concurrently, and
// actions invoked by the engine must not call back into it.
type Engine struct {
	tree *menu.Tree
	root menu.NodeID

	parent      menu.NodeID
	index       int
	highlighted menu.NodeID
	editing     bool
	ed          editor
	history     *History

	rows, cols  int
	cursor      []byte
	blankCursor []byte
	flagOn      []byte
	flagOff     []byte
	row         []byte

	render  Renderer
	life    Lifecycle
	persist Persister
	obs     Observer
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithRenderer sets the display the engine paints on.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		if r != nil {
			e.render = r
		}
	}
}

// WithLifecycle sets the receiver of exit notifications.
func WithLifecycle(l Lifecycle) Option {
	return func(e *Engine) {
		if l != nil {
			e.life = l
		}
	}
}

// WithPersister sets the store invoked after each commit.
func WithPersister(p Persister) Option {
	return func(e *Engine) {
		if p != nil {
			e.persist = p
		}
	}
}

// WithObserver attaches an observer. Repeated use fans out to all of them.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o == nil {
			return
		}
		switch cur := e.obs.(type) {
		case NopObserver:
			e.obs = o
		case Observers:
			e.obs = append(cur, o)
		default:
			e.obs = Observers{cur, o}
		}
	}
}

// WithGeometry sets the number of display rows and columns.
func WithGeometry(rows, cols int) Option {
	return func(e *Engine) {
		e.rows, e.cols = rows, cols
	}
}

// WithDepth sets the history capacity.
func WithDepth(depth int) Option {
	return func(e *Engine) {
		e.history = NewHistory(depth)
	}
}

// WithCursor sets the glyph drawn in front of the highlighted row.
func WithCursor(glyph string) Option {
	return func(e *Engine) {
		e.cursor = []byte(glyph)
	}
}

// WithFlagLabels sets the text shown for set and cleared flags.
func WithFlagLabels(on, off string) Option {
	return func(e *Engine) {
		e.flagOn, e.flagOff = []byte(on), []byte(off)
	}
}

// WithRoot starts the engine at a submenu other than the tree root. Backing
// out of it exits the menu.
func WithRoot(id menu.NodeID) Option {
	return func(e *Engine) {
		e.root = id
	}
}

// New builds an engine browsing the root of tree.
func New(tree *menu.Tree, opts ...Option) (*Engine, error) {
	if tree == nil {
		return nil, fmt.Errorf("engine: nil tree")
	}
	e := &Engine{
		tree:        tree,
		root:        tree.Root(),
		highlighted: menu.NoNode,
		rows:        DefaultRows,
		cols:        DefaultCols,
		cursor:      []byte(DefaultCursor),
		flagOn:      []byte("ON"),
		flagOff:     []byte("OFF"),
		render:      nopRenderer{},
		life:        nopLifecycle{},
		persist:     nopPersister{},
		obs:         NopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.history == nil {
		e.history = NewHistory(DefaultDepth)
	}
	if e.rows <= 0 || e.cols <= 0 {
		return nil, fmt.Errorf("engine: invalid geometry %dx%d", e.rows, e.cols)
	}
	if len(e.cursor) >= e.cols {
		return nil, fmt.Errorf("engine: cursor %q leaves no room for labels", e.cursor)
	}
	if n := tree.Node(e.root); n == nil || n.Kind() != menu.KindSubmenu {
		return nil, fmt.Errorf("engine: start node %d is not a submenu", e.root)
	}
	e.blankCursor = []byte(strings.Repeat(" ", len(e.cursor)))
	// Room for the widest formatted number keeps appends in place.
	e.row = make([]byte, e.cols, e.cols+32)
	e.parent = e.root
	return e, nil
}

// HandleInput processes one button event.
func (e *Engine) HandleInput(b Button) {
	e.obs.Input(b)
	switch b {
	case ButtonNone:
		e.refresh()
	case ButtonSelect, ButtonForward:
		if e.editing {
			e.save()
			return
		}
		target := e.highlighted
		if target == menu.NoNode {
			target = e.root
		}
		e.activate(target)
	case ButtonIncrease:
		e.move(1)
	case ButtonDecrease:
		e.move(-1)
	case ButtonBack:
		if e.editing {
			e.cancel()
			return
		}
		e.back()
	}
}

func (e *Engine) refresh() {
	if e.editing {
		e.paintEdit()
		return
	}
	e.paintList()
}

func (e *Engine) move(dir int) {
	if e.editing {
		e.ed.step(dir)
		e.obs.EditChange(e.highlighted)
		e.paintValue()
		return
	}
	n := e.tree.ChildCount(e.parent)
	if n == 0 {
		return
	}
	e.setIndex(wrapIndex(e.index+dir, n))
	e.paintList()
}

func (e *Engine) setIndex(i int) {
	e.index = i
	if child, ok := e.tree.Child(e.parent, i); ok {
		e.highlighted = child
	} else {
		e.highlighted = menu.NoNode
	}
	e.obs.Cursor(e.parent, i)
}

func (e *Engine) activate(id menu.NodeID) {
	n := e.tree.Node(id)
	if n == nil {
		return
	}
	e.obs.Activate(id, n.Kind())
	switch n.Kind() {
	case menu.KindValue, menu.KindValueWithCallback:
		d, _ := n.Descriptor()
		e.edit(id, d)
	case menu.KindSubmenu:
		e.enter(id)
	case menu.KindAction:
		menu.RunAction(n.Hook())
		e.paintList()
	case menu.KindScreen:
		e.obs.Exit(false)
		e.life.OnExit(false)
		menu.RunAction(n.Hook())
		e.life.OnExitCallbackComplete()
	}
}

func (e *Engine) edit(id menu.NodeID, d *menu.Descriptor) {
	if d == nil {
		return
	}
	if !e.ed.load(d) {
		e.obs.SelectFallback(id, uint8(d.Raw()))
	}
	e.highlighted = id
	e.editing = true
	e.obs.EditBegin(id)
	e.paintEdit()
}

// enter makes id the current parent. Descending pushes the previous parent
// and starts at the first child; re-entering the current parent keeps the
// index.
func (e *Engine) enter(id menu.NodeID) {
	if id != e.parent {
		if !e.history.Push(e.parent) {
			e.obs.HistoryDropped(e.parent)
		}
		e.obs.Descend(e.parent, id)
		e.parent = id
		e.setIndex(0)
	} else if e.tree.ChildCount(id) > 0 {
		e.setIndex(wrapIndex(e.index, e.tree.ChildCount(id)))
	}
	e.paintList()
}

func (e *Engine) save() {
	id := e.highlighted
	w := e.ed.commit(id)
	e.persist.Persist(w)
	e.obs.Commit(w)
	if n := e.tree.Node(id); n.Kind() == menu.KindValueWithCallback {
		menu.RunAction(n.Hook())
	}
	e.editing = false
	e.paintList()
}

func (e *Engine) cancel() {
	e.ed.abort()
	e.editing = false
	e.obs.Abort(e.highlighted)
	e.paintList()
}

func (e *Engine) back() {
	if e.parent == e.root {
		e.exit()
		return
	}
	prev, ok := e.history.Pop()
	if !ok {
		e.exit()
		return
	}
	e.obs.Ascend(e.parent, prev)
	e.parent = prev
	e.setIndex(0)
	e.paintList()
}

// exit returns to the root with nothing highlighted and tells the host the
// menu was left.
func (e *Engine) exit() {
	e.parent = e.root
	e.index = 0
	e.highlighted = menu.NoNode
	e.history.Reset()
	e.obs.Exit(true)
	e.life.OnExit(true)
	e.life.OnExitCallbackComplete()
}

// Tree returns the tree being browsed.
func (e *Engine) Tree() *menu.Tree { return e.tree }

// Parent returns the submenu whose children are listed.
func (e *Engine) Parent() menu.NodeID { return e.parent }

// Index returns the highlighted position among the parent's children.
func (e *Engine) Index() int { return e.index }

// Highlighted returns the highlighted node, or menu.NoNode before the first
// entry and after an exit.
func (e *Engine) Highlighted() menu.NodeID { return e.highlighted }

// Editing reports whether a value edit is pending.
func (e *Engine) Editing() bool { return e.editing }

// Depth returns the number of parents on the history stack.
func (e *Engine) Depth() int { return e.history.Len() }

// Geometry returns the display size the engine paints.
func (e *Engine) Geometry() (rows, cols int) { return e.rows, e.cols }
