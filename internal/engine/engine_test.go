package engine

import (
	"strings"
	"testing"

	"github.com/atomicstack/lcdmenu/internal/menu"
)

type screen struct {
	cells [][]byte
	draws int
}

func newScreen(rows, cols int) *screen {
	s := &screen{cells: make([][]byte, rows)}
	for i := range s.cells {
		s.cells[i] = []byte(strings.Repeat("?", cols))
	}
	return s
}

func (s *screen) Draw(row, col int, text []byte) {
	copy(s.cells[row][col:], text)
	s.draws++
}

func (s *screen) line(row int) string {
	return strings.TrimRight(string(s.cells[row]), " ")
}

type recorder struct {
	events []string
	writes []Write
}

func (r *recorder) OnExit(full bool) {
	if full {
		r.events = append(r.events, "exit-full")
		return
	}
	r.events = append(r.events, "exit-partial")
}

func (r *recorder) OnExitCallbackComplete() {
	r.events = append(r.events, "complete")
}

func (r *recorder) Persist(w Write) {
	r.writes = append(r.writes, w)
	r.events = append(r.events, "persist:"+w.Key)
}

type fixture struct {
	eng    *Engine
	screen *screen
	rec    *recorder
	stats  *Stats
	ids    map[string]menu.NodeID

	speed   uint8
	mode    uint8
	flags   uint8
	accel   float32
	offset  uint16
	actions int
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{speed: 4, mode: 2, flags: 0x81, ids: map[string]menu.NodeID{}}
	b := menu.NewBuilder()
	f.ids["speed"] = b.Value("speed", "Speed", menu.ByteValue("speed", &f.speed, 0, 10))
	f.ids["mode"] = b.Value("mode", "Mode", menu.SelectValue("mode", &f.mode,
		menu.Option{Label: "Slow", Value: 1},
		menu.Option{Label: "Fast", Value: 2},
		menu.Option{Label: "Turbo", Value: 7},
	))
	f.ids["invert"] = b.Value("invert", "Invert", menu.FlagValue("flags", &f.flags, 3))
	f.ids["accel"] = b.ValueWithCallback("accel", "Accel", menu.FloatValue("accel", menu.Float100, &f.accel, 0, 5),
		menu.ActionFunc(func() { f.rec.events = append(f.rec.events, "callback") }))
	f.ids["offset"] = b.Value("offset", "Offset", menu.UIntValue("offset", &f.offset, 0, 0))
	f.ids["motion"] = b.Submenu("motion", "Motion", f.ids["speed"], f.ids["mode"], f.ids["invert"], f.ids["accel"], f.ids["offset"])
	f.ids["reset"] = b.Action("reset", "Reset", menu.ActionFunc(func() { f.actions++ }))
	f.ids["run"] = b.Screen("run", "Run", menu.ActionFunc(func() { f.rec.events = append(f.rec.events, "screen") }))
	f.ids["root"] = b.Submenu("root", "Main", f.ids["motion"], f.ids["reset"], f.ids["run"])
	tree, err := b.Build(f.ids["root"])
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	f.screen = newScreen(2, 16)
	f.rec = &recorder{}
	f.stats = &Stats{}
	base := []Option{WithRenderer(f.screen), WithLifecycle(f.rec), WithPersister(f.rec), WithObserver(f.stats)}
	eng, err := New(tree, append(base, opts...)...)
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}
	f.eng = eng
	return f
}

func (f *fixture) press(buttons ...Button) {
	for _, b := range buttons {
		f.eng.HandleInput(b)
	}
}

// openMotion enters the root list and descends into the motion submenu.
func (f *fixture) openMotion(t *testing.T) {
	t.Helper()
	f.press(ButtonSelect, ButtonSelect)
	if f.eng.Parent() != f.ids["motion"] {
		t.Fatalf("expected motion to be current, got %d", f.eng.Parent())
	}
}

// editChild highlights the child at index i of motion and starts editing it.
func (f *fixture) editChild(t *testing.T, i int) {
	t.Helper()
	f.openMotion(t)
	for j := 0; j < i; j++ {
		f.press(ButtonIncrease)
	}
	f.press(ButtonSelect)
	if !f.eng.Editing() {
		t.Fatalf("expected editing after select")
	}
}

func TestSelectWithoutHighlightShowsRoot(t *testing.T) {
	f := newFixture(t)
	if f.eng.Highlighted() != menu.NoNode {
		t.Fatalf("expected nothing highlighted initially")
	}
	f.press(ButtonSelect)
	if f.eng.Parent() != f.ids["root"] || f.eng.Index() != 0 {
		t.Fatalf("expected root at index 0, got %d/%d", f.eng.Parent(), f.eng.Index())
	}
	if f.eng.Highlighted() != f.ids["motion"] {
		t.Fatalf("expected motion highlighted, got %d", f.eng.Highlighted())
	}
	if f.eng.Depth() != 0 {
		t.Fatalf("expected no history after entering root, got %d", f.eng.Depth())
	}
	if got := f.screen.line(0); got != ">Motion" {
		t.Fatalf("expected first row %q, got %q", ">Motion", got)
	}
	if got := f.screen.line(1); got != " Reset" {
		t.Fatalf("expected second row %q, got %q", " Reset", got)
	}
}

func TestDecreaseWrapsAcrossThreeChildren(t *testing.T) {
	f := newFixture(t)
	f.press(ButtonSelect, ButtonIncrease, ButtonIncrease)
	if f.eng.Index() != 2 {
		t.Fatalf("expected index 2, got %d", f.eng.Index())
	}
	for _, want := range []int{1, 0, 2} {
		f.press(ButtonDecrease)
		if f.eng.Index() != want {
			t.Fatalf("expected index %d, got %d", want, f.eng.Index())
		}
	}
}

func TestCursorWrapsFullCycle(t *testing.T) {
	f := newFixture(t)
	f.openMotion(t)
	n := f.eng.Tree().ChildCount(f.ids["motion"])
	for i := 0; i < n; i++ {
		f.press(ButtonDecrease)
	}
	if f.eng.Index() != 0 {
		t.Fatalf("expected %d decrements to return to 0, got %d", n, f.eng.Index())
	}
	f.press(ButtonDecrease)
	if f.eng.Index() != n-1 {
		t.Fatalf("expected decrement from 0 to land on %d, got %d", n-1, f.eng.Index())
	}
	f.press(ButtonIncrease)
	if f.eng.Index() != 0 {
		t.Fatalf("expected increment from last to wrap to 0, got %d", f.eng.Index())
	}
}

func TestListIsPaged(t *testing.T) {
	f := newFixture(t)
	f.press(ButtonSelect, ButtonIncrease, ButtonIncrease)
	if got := f.screen.line(0); got != ">Run" {
		t.Fatalf("expected page two first row %q, got %q", ">Run", got)
	}
	if got := f.screen.line(1); got != "" {
		t.Fatalf("expected blank row past the last child, got %q", got)
	}
	f.press(ButtonDecrease)
	if got := f.screen.line(1); got != ">Reset" {
		t.Fatalf("expected cursor on second row, got %q", got)
	}
}

func TestRefreshIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.press(ButtonSelect, ButtonIncrease)
	before := []string{f.screen.line(0), f.screen.line(1)}
	f.press(ButtonNone, ButtonNone)
	if f.eng.Index() != 1 {
		t.Fatalf("expected refresh to keep index, got %d", f.eng.Index())
	}
	if f.screen.line(0) != before[0] || f.screen.line(1) != before[1] {
		t.Fatalf("expected identical frame after refresh")
	}
}

func TestDescendAndBackReturnsToParentAtFirstChild(t *testing.T) {
	f := newFixture(t)
	f.openMotion(t)
	if f.eng.Depth() != 1 {
		t.Fatalf("expected one history entry, got %d", f.eng.Depth())
	}
	f.press(ButtonIncrease, ButtonIncrease)
	f.press(ButtonBack)
	if f.eng.Parent() != f.ids["root"] {
		t.Fatalf("expected root after back, got %d", f.eng.Parent())
	}
	if f.eng.Index() != 0 || f.eng.Highlighted() != f.ids["motion"] {
		t.Fatalf("expected first child highlighted, got index %d node %d", f.eng.Index(), f.eng.Highlighted())
	}
	if f.eng.Depth() != 0 {
		t.Fatalf("expected ascent not to push history, got depth %d", f.eng.Depth())
	}
	if len(f.rec.events) != 0 {
		t.Fatalf("expected no lifecycle events, got %v", f.rec.events)
	}
}

func TestBackAtRootExitsFully(t *testing.T) {
	f := newFixture(t)
	f.press(ButtonSelect, ButtonIncrease, ButtonBack)
	if got := strings.Join(f.rec.events, ","); got != "exit-full,complete" {
		t.Fatalf("expected full exit notifications, got %q", got)
	}
	if f.eng.Highlighted() != menu.NoNode || f.eng.Index() != 0 || f.eng.Parent() != f.ids["root"] {
		t.Fatalf("expected reset to root with nothing highlighted")
	}
	if f.stats.FullExits.Load() != 1 {
		t.Fatalf("expected one full exit counted, got %d", f.stats.FullExits.Load())
	}
}

func TestActionKeepsPosition(t *testing.T) {
	f := newFixture(t)
	f.press(ButtonSelect, ButtonIncrease)
	draws := f.screen.draws
	f.press(ButtonSelect)
	if f.actions != 1 {
		t.Fatalf("expected action to run once, got %d", f.actions)
	}
	if f.eng.Index() != 1 || f.eng.Parent() != f.ids["root"] {
		t.Fatalf("expected position unchanged after action")
	}
	if f.screen.draws == draws {
		t.Fatalf("expected list repaint after action")
	}
}

func TestScreenBracketsActionWithLifecycle(t *testing.T) {
	f := newFixture(t)
	f.press(ButtonSelect, ButtonIncrease, ButtonIncrease)
	draws := f.screen.draws
	f.press(ButtonSelect)
	if got := strings.Join(f.rec.events, ","); got != "exit-partial,screen,complete" {
		t.Fatalf("expected partial exit around screen action, got %q", got)
	}
	if f.screen.draws != draws {
		t.Fatalf("expected no repaint after screen hand-off")
	}
}

func TestScreenWithNilActionStillNotifies(t *testing.T) {
	b := menu.NewBuilder()
	run := b.Screen("run", "Run", nil)
	root := b.Submenu("root", "Main", run)
	tree, err := b.Build(root)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	rec := &recorder{}
	eng, err := New(tree, WithLifecycle(rec))
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}
	eng.HandleInput(ButtonSelect)
	eng.HandleInput(ButtonSelect)
	if got := strings.Join(rec.events, ","); got != "exit-partial,complete" {
		t.Fatalf("expected exit then complete, got %q", got)
	}
}

func TestEditViewShowsLabelAndValue(t *testing.T) {
	f := newFixture(t)
	f.editChild(t, 0)
	if got := f.screen.line(0); got != "Speed" {
		t.Fatalf("expected label row, got %q", got)
	}
	if got := f.screen.line(1); got != "4" {
		t.Fatalf("expected value row 4, got %q", got)
	}
}

func TestCommitWritesAndPersistsOnce(t *testing.T) {
	f := newFixture(t)
	f.editChild(t, 0)
	f.press(ButtonIncrease, ButtonIncrease)
	if f.speed != 4 {
		t.Fatalf("expected storage untouched before commit, got %d", f.speed)
	}
	f.press(ButtonSelect)
	if f.speed != 6 {
		t.Fatalf("expected speed 6, got %d", f.speed)
	}
	if len(f.rec.writes) != 1 {
		t.Fatalf("expected exactly one persist, got %d", len(f.rec.writes))
	}
	w := f.rec.writes[0]
	if w.Width != menu.Width8 || w.Raw != 6 || w.Key != "speed" || w.Node != f.ids["speed"] {
		t.Fatalf("unexpected write %+v", w)
	}
	if f.eng.Editing() {
		t.Fatalf("expected browsing after commit")
	}
	if got := f.screen.line(0); got != ">Speed" {
		t.Fatalf("expected list repainted with speed highlighted, got %q", got)
	}
}

func TestForwardCommitsLikeSelect(t *testing.T) {
	f := newFixture(t)
	f.editChild(t, 0)
	f.press(ButtonDecrease, ButtonForward)
	if f.speed != 3 || len(f.rec.writes) != 1 {
		t.Fatalf("expected forward to commit 3 once, got %d (%d writes)", f.speed, len(f.rec.writes))
	}
}

func TestAbortLeavesStorageUntouched(t *testing.T) {
	f := newFixture(t)
	f.editChild(t, 0)
	f.press(ButtonIncrease, ButtonIncrease, ButtonIncrease, ButtonBack)
	if f.speed != 4 {
		t.Fatalf("expected speed unchanged, got %d", f.speed)
	}
	if len(f.rec.writes) != 0 {
		t.Fatalf("expected no persist after abort, got %d", len(f.rec.writes))
	}
	if f.eng.Editing() || f.eng.Parent() != f.ids["motion"] {
		t.Fatalf("expected browsing motion after abort")
	}
	if f.stats.Aborts.Load() != 1 {
		t.Fatalf("expected abort counted")
	}
}

func TestByteWrapsAtUpperBound(t *testing.T) {
	f := newFixture(t)
	f.speed = 10
	f.editChild(t, 0)
	f.press(ButtonIncrease)
	if got := f.screen.line(1); got != "0" {
		t.Fatalf("expected 10 to wrap to 0, got %q", got)
	}
	f.press(ButtonDecrease)
	if got := f.screen.line(1); got != "10" {
		t.Fatalf("expected 0 to wrap to 10, got %q", got)
	}
}

func TestSelectCyclesThroughOptions(t *testing.T) {
	f := newFixture(t)
	f.editChild(t, 1)
	if got := f.screen.line(1); got != "Fast" {
		t.Fatalf("expected stored option Fast, got %q", got)
	}
	for i := 0; i < 3; i++ {
		f.press(ButtonIncrease)
	}
	if got := f.screen.line(1); got != "Fast" {
		t.Fatalf("expected three increments to return to Fast, got %q", got)
	}
	f.press(ButtonIncrease, ButtonSelect)
	if f.mode != 7 {
		t.Fatalf("expected option value 7 written to target, got %d", f.mode)
	}
	if w := f.rec.writes[0]; w.Kind != menu.Select || w.Raw != 7 {
		t.Fatalf("unexpected write %+v", w)
	}
}

func TestSelectFallsBackToFirstOption(t *testing.T) {
	f := newFixture(t)
	f.mode = 42
	f.editChild(t, 1)
	if got := f.screen.line(1); got != "Slow" {
		t.Fatalf("expected fallback to first option, got %q", got)
	}
	if f.stats.SelectFallbacks.Load() != 1 {
		t.Fatalf("expected fallback reported")
	}
	if f.mode != 42 {
		t.Fatalf("expected load not to modify storage")
	}
}

func TestFlagCommitTouchesOneBit(t *testing.T) {
	f := newFixture(t)
	f.editChild(t, 2)
	if got := f.screen.line(1); got != "OFF" {
		t.Fatalf("expected bit 3 clear, got %q", got)
	}
	f.press(ButtonIncrease)
	if got := f.screen.line(1); got != "ON" {
		t.Fatalf("expected toggled flag, got %q", got)
	}
	f.press(ButtonSelect)
	if f.flags != 0x89 {
		t.Fatalf("expected flags 0x89, got %#x", f.flags)
	}
}

func TestCallbackFiresAfterPersist(t *testing.T) {
	f := newFixture(t)
	f.editChild(t, 3)
	f.press(ButtonDecrease)
	if got := f.screen.line(1); got != "5.00" {
		t.Fatalf("expected float to wrap to max, got %q", got)
	}
	f.press(ButtonDecrease)
	if got := f.screen.line(1); got != "4.99" {
		t.Fatalf("expected one hundredth step, got %q", got)
	}
	f.press(ButtonSelect)
	if got := strings.Join(f.rec.events, ","); got != "persist:accel,callback" {
		t.Fatalf("expected callback after persist, got %q", got)
	}
	if f.accel != 4.99 {
		t.Fatalf("expected accel 4.99, got %v", f.accel)
	}
}

func TestUnboundedUnsignedWrapsAtWidth(t *testing.T) {
	f := newFixture(t)
	f.editChild(t, 4)
	f.press(ButtonDecrease)
	if got := f.screen.line(1); got != "65535" {
		t.Fatalf("expected 0-1 to wrap to 65535, got %q", got)
	}
	f.press(ButtonIncrease)
	if got := f.screen.line(1); got != "0" {
		t.Fatalf("expected 65535+1 to wrap to 0, got %q", got)
	}
}

func TestRefreshWhileEditingShowsPendingValue(t *testing.T) {
	f := newFixture(t)
	f.editChild(t, 0)
	f.press(ButtonIncrease)
	f.speed = 9
	f.press(ButtonNone)
	if got := f.screen.line(1); got != "5" {
		t.Fatalf("expected pending value 5, got %q", got)
	}
	if f.eng.Parent() != f.ids["motion"] || !f.eng.Editing() {
		t.Fatalf("expected refresh to keep edit state")
	}
}

func TestHistoryOverflowIsDropped(t *testing.T) {
	b := menu.NewBuilder()
	leaf := b.Action("leaf", "Leaf", nil)
	c := b.Submenu("c", "C", leaf)
	bb := b.Submenu("b", "B", c)
	a := b.Submenu("a", "A", bb)
	root := b.Submenu("root", "Root", a)
	tree, err := b.Build(root)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	stats := &Stats{}
	rec := &recorder{}
	eng, err := New(tree, WithDepth(2), WithObserver(stats), WithLifecycle(rec))
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		eng.HandleInput(ButtonSelect)
	}
	if eng.Parent() != c {
		t.Fatalf("expected to reach c, got %d", eng.Parent())
	}
	if eng.Depth() != 2 || stats.HistoryDrops.Load() != 1 {
		t.Fatalf("expected depth 2 with one drop, got %d/%d", eng.Depth(), stats.HistoryDrops.Load())
	}
	eng.HandleInput(ButtonBack)
	if eng.Parent() != a {
		t.Fatalf("expected back to pop a, got %d", eng.Parent())
	}
	eng.HandleInput(ButtonBack)
	if eng.Parent() != root {
		t.Fatalf("expected back to pop root, got %d", eng.Parent())
	}
	if len(rec.events) != 0 {
		t.Fatalf("expected no exit yet, got %v", rec.events)
	}
}

func TestBackUnwindsToRootThenExits(t *testing.T) {
	b := menu.NewBuilder()
	leaf := b.Action("leaf", "Leaf", nil)
	inner := b.Submenu("inner", "Inner", leaf)
	root := b.Submenu("root", "Root", inner)
	tree, err := b.Build(root)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	rec := &recorder{}
	eng, err := New(tree, WithDepth(1), WithLifecycle(rec))
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}
	eng.HandleInput(ButtonSelect)
	eng.HandleInput(ButtonSelect)
	eng.HandleInput(ButtonBack)
	eng.HandleInput(ButtonBack)
	if got := strings.Join(rec.events, ","); got != "exit-full,complete" {
		t.Fatalf("expected exit after returning to root, got %q", got)
	}
}

func TestStartAtSubmenu(t *testing.T) {
	f := newFixture(t)
	eng, err := New(f.eng.Tree(), WithRoot(f.ids["motion"]), WithLifecycle(f.rec))
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}
	eng.HandleInput(ButtonSelect)
	if eng.Parent() != f.ids["motion"] || eng.Highlighted() != f.ids["speed"] {
		t.Fatalf("expected motion list, got parent %d", eng.Parent())
	}
	eng.HandleInput(ButtonBack)
	if got := strings.Join(f.rec.events, ","); got != "exit-full,complete" {
		t.Fatalf("expected back at start node to exit, got %q", got)
	}
	if _, err := New(f.eng.Tree(), WithRoot(f.ids["speed"])); err == nil {
		t.Fatalf("expected leaf start node to be rejected")
	}
}

func TestEnginesAreIndependent(t *testing.T) {
	a := newFixture(t)
	b := newFixture(t)
	a.openMotion(t)
	b.press(ButtonSelect, ButtonIncrease)
	if a.eng.Parent() == b.eng.Parent() {
		t.Fatalf("expected engines to track their own parent")
	}
	if b.eng.Depth() != 0 || a.eng.Depth() != 1 {
		t.Fatalf("expected independent history, got %d/%d", a.eng.Depth(), b.eng.Depth())
	}
}

func TestNewRejectsBadGeometry(t *testing.T) {
	f := newFixture(t)
	if _, err := New(f.eng.Tree(), WithGeometry(0, 16)); err == nil {
		t.Fatalf("expected zero rows to be rejected")
	}
	if _, err := New(f.eng.Tree(), WithCursor(">>"), WithGeometry(2, 2)); err == nil {
		t.Fatalf("expected cursor wider than display to be rejected")
	}
	if _, err := New(nil); err == nil {
		t.Fatalf("expected nil tree to be rejected")
	}
}

func TestFourRowGeometry(t *testing.T) {
	f := newFixture(t)
	s := newScreen(4, 20)
	eng, err := New(f.eng.Tree(), WithRenderer(s), WithGeometry(4, 20), WithCursor("->"))
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}
	eng.HandleInput(ButtonSelect)
	want := []string{"->Motion", "  Reset", "  Run", ""}
	for i, w := range want {
		if got := s.line(i); got != w {
			t.Fatalf("row %d: expected %q, got %q", i, w, got)
		}
	}
	eng.HandleInput(ButtonSelect)
	eng.HandleInput(ButtonSelect)
	if got := s.line(2); got != "" {
		t.Fatalf("expected edit view to clear extra rows, got %q", got)
	}
}

// valueBench is an engine whose root holds a single value.
type valueBench struct {
	eng    *Engine
	screen *screen
	rec    *recorder
}

// editValue builds a one-value menu around d and starts editing it.
func editValue(t *testing.T, d menu.Descriptor) *valueBench {
	t.Helper()
	b := menu.NewBuilder()
	v := b.Value("v", "Value", d)
	root := b.Submenu("root", "Main", v)
	tree, err := b.Build(root)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	vb := &valueBench{screen: newScreen(2, 16), rec: &recorder{}}
	vb.eng, err = New(tree, WithRenderer(vb.screen), WithLifecycle(vb.rec), WithPersister(vb.rec), WithGeometry(2, 16))
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}
	vb.eng.HandleInput(ButtonSelect)
	vb.eng.HandleInput(ButtonSelect)
	if !vb.eng.Editing() {
		t.Fatalf("expected editing after select")
	}
	return vb
}

func (vb *valueBench) expect(t *testing.T, b Button, want string) {
	t.Helper()
	vb.eng.HandleInput(b)
	if got := vb.screen.line(1); got != want {
		t.Fatalf("after %s expected %q, got %q", b, want, got)
	}
}

func TestSignedIntLoadsNegativeValues(t *testing.T) {
	v := int16(-2)
	vb := editValue(t, menu.IntValue("v", &v, 0, 0))
	if got := vb.screen.line(1); got != "-2" {
		t.Fatalf("expected -2 loaded, got %q", got)
	}
	vb.expect(t, ButtonDecrease, "-3")
	vb.eng.HandleInput(ButtonSelect)
	if v != -3 || vb.rec.writes[0].Int() != -3 {
		t.Fatalf("expected -3 stored and persisted, got %d (%+v)", v, vb.rec.writes[0])
	}
}

func TestUnboundedSignedWrapsAtWidth(t *testing.T) {
	v := int16(32767)
	vb := editValue(t, menu.IntValue("v", &v, 0, 0))
	vb.expect(t, ButtonIncrease, "-32768")
	vb.expect(t, ButtonDecrease, "32767")
	vb.expect(t, ButtonIncrease, "-32768")
	vb.eng.HandleInput(ButtonSelect)
	if v != -32768 {
		t.Fatalf("expected -32768 stored, got %d", v)
	}
	if w := vb.rec.writes[0]; w.Raw != 0x8000 || w.Int() != -32768 {
		t.Fatalf("unexpected write %+v", w)
	}
}

func TestNegativeBoundsWrap(t *testing.T) {
	v := int16(-5)
	vb := editValue(t, menu.IntValue("v", &v, -5, 5))
	vb.expect(t, ButtonDecrease, "5")
	vb.expect(t, ButtonIncrease, "-5")
	vb.expect(t, ButtonIncrease, "-4")
	vb.eng.HandleInput(ButtonSelect)
	if v != -4 {
		t.Fatalf("expected -4 stored, got %d", v)
	}
}

func TestLongBoundsWrap(t *testing.T) {
	v := int32(-50000)
	vb := editValue(t, menu.LongValue("v", &v, -50000, 50000))
	vb.expect(t, ButtonDecrease, "50000")
	vb.eng.HandleInput(ButtonSelect)
	if v != 50000 {
		t.Fatalf("expected 50000 stored, got %d", v)
	}
	if w := vb.rec.writes[0]; w.Width != menu.Width32 || w.Int() != 50000 {
		t.Fatalf("unexpected write %+v", w)
	}
}

func TestUnboundedULongWrapsAtWidth(t *testing.T) {
	var v uint32
	vb := editValue(t, menu.ULongValue("v", &v, 0, 0))
	vb.expect(t, ButtonDecrease, "4294967295")
	vb.eng.HandleInput(ButtonSelect)
	if v != 4294967295 {
		t.Fatalf("expected max uint32 stored, got %d", v)
	}
	if w := vb.rec.writes[0]; w.Raw != 0xFFFFFFFF || w.Int() != 4294967295 {
		t.Fatalf("unexpected write %+v", w)
	}
}

func TestFloatStepsFollowKind(t *testing.T) {
	whole := float32(2)
	vb := editValue(t, menu.FloatValue("v", menu.Float, &whole, 0, 0))
	vb.expect(t, ButtonDecrease, "1.0")
	vb.eng.HandleInput(ButtonSelect)
	if whole != 1 {
		t.Fatalf("expected 1 stored, got %v", whole)
	}

	tenths := float32(1)
	vb = editValue(t, menu.FloatValue("v", menu.Float10, &tenths, 0, 0))
	vb.expect(t, ButtonIncrease, "1.1")
	vb.expect(t, ButtonIncrease, "1.2")
	vb.eng.HandleInput(ButtonSelect)
	if tenths != 1.2 {
		t.Fatalf("expected 1.2 stored, got %v", tenths)
	}

	thousandths := float32(0)
	vb = editValue(t, menu.FloatValue("v", menu.Float1000, &thousandths, 0, 1))
	vb.expect(t, ButtonIncrease, "0.001")
	vb.expect(t, ButtonDecrease, "0.000")
	vb.expect(t, ButtonDecrease, "1.000")
	vb.expect(t, ButtonDecrease, "0.999")
	vb.eng.HandleInput(ButtonSelect)
	if thousandths != 0.999 {
		t.Fatalf("expected 0.999 stored, got %v", thousandths)
	}
	if w := vb.rec.writes[0]; w.Float() != 0.999 {
		t.Fatalf("unexpected write %+v", w)
	}
}

func TestSelectDecreaseWrapsToLastOption(t *testing.T) {
	f := newFixture(t)
	f.mode = 1
	f.editChild(t, 1)
	if got := f.screen.line(1); got != "Slow" {
		t.Fatalf("expected first option, got %q", got)
	}
	f.press(ButtonDecrease)
	if got := f.screen.line(1); got != "Turbo" {
		t.Fatalf("expected wrap to last option, got %q", got)
	}
	f.press(ButtonSelect)
	if f.mode != 7 {
		t.Fatalf("expected option value 7 written, got %d", f.mode)
	}
}
