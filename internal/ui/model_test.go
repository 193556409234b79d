package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/atomicstack/lcdmenu/internal/input"
	"github.com/atomicstack/lcdmenu/internal/menu"
	"github.com/charmbracelet/x/ansi"
)

type bench struct {
	h     *Harness
	panel Panel
	speed *uint8
}

func newBench(t *testing.T, opts Options) *bench {
	t.Helper()
	panel, err := NewPanel(PanelLCD, 2, 16)
	if err != nil {
		t.Fatalf("panel failed: %v", err)
	}
	if opts.Title == "" {
		opts.Title = "Bench"
	}
	host := NewHost(panel, opts.Title)
	speed := new(uint8)
	*speed = 4
	b := menu.NewBuilder()
	sp := b.Value("speed", "Speed", menu.ByteValue("speed", speed, 0, 10))
	about := b.Screen("about", "About", menu.ActionFunc(func() {
		host.Print(0, "lcdmenu test")
		host.Printf(1, "speed=%d", *speed)
	}))
	root := b.Submenu("root", "Main", sp, about)
	tree, err := b.Build(root)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	rows, cols := panel.Cells()
	eng, err := engine.New(tree,
		engine.WithRenderer(panel),
		engine.WithLifecycle(host),
		engine.WithGeometry(rows, cols),
	)
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}
	return &bench{h: NewHarness(NewModel(eng, host, opts)), panel: panel, speed: speed}
}

func (b *bench) row(i int) string {
	return b.panel.Rows()[i]
}

func (b *bench) mode() Mode {
	return b.h.Model().Host().Mode()
}

func TestIdleScreenShowsTitle(t *testing.T) {
	b := newBench(t, Options{})
	if b.mode() != ModeIdle {
		t.Fatalf("expected idle mode, got %s", b.mode())
	}
	if got := b.row(0); got != "Bench           " {
		t.Fatalf("expected title row, got %q", got)
	}
	if got := b.row(1); got != "        [select]" {
		t.Fatalf("expected hint row, got %q", got)
	}
	if b.h.Model().Init() != nil {
		t.Fatalf("expected no startup commands without tick or source")
	}
}

func TestAnyKeyEntersMenuFromIdle(t *testing.T) {
	b := newBench(t, Options{})
	b.h.Key("down")
	if b.mode() != ModeMenu {
		t.Fatalf("expected menu mode, got %s", b.mode())
	}
	if got := b.row(0); got != ">Speed          " {
		t.Fatalf("expected list, got %q", got)
	}
	if got := b.row(1); got != " About          " {
		t.Fatalf("expected second entry, got %q", got)
	}
	if !strings.Contains(b.h.View(), "Bench · Main") {
		t.Fatalf("expected breadcrumb header, got:\n%s", b.h.View())
	}
}

func TestEditAndCommitThroughKeys(t *testing.T) {
	b := newBench(t, Options{})
	b.h.Key("enter")
	b.h.Key("enter")
	if !b.h.Model().Engine().Editing() {
		t.Fatalf("expected edit mode")
	}
	b.h.Key("down")
	if got := b.row(1); got != "5               " {
		t.Fatalf("expected edited value on second row, got %q", got)
	}
	if *b.speed != 4 {
		t.Fatalf("expected cell untouched before commit, got %d", *b.speed)
	}
	if !strings.Contains(b.h.View(), "editing") {
		t.Fatalf("expected editing status, got:\n%s", b.h.View())
	}
	b.h.Key("enter")
	if *b.speed != 5 {
		t.Fatalf("expected committed 5, got %d", *b.speed)
	}
	if got := b.row(0); got != ">Speed          " {
		t.Fatalf("expected list after commit, got %q", got)
	}
}

func TestScreenOwnsPanelUntilNextPress(t *testing.T) {
	b := newBench(t, Options{})
	b.h.Key("enter")
	b.h.Key("down")
	b.h.Key("enter")
	if b.mode() != ModeScreen {
		t.Fatalf("expected screen mode, got %s", b.mode())
	}
	if b.h.Model().Host().Pending() {
		t.Fatalf("expected exit callback to have completed")
	}
	if got := b.row(0); got != "lcdmenu test    " {
		t.Fatalf("expected screen output, got %q", got)
	}
	if got := b.row(1); got != "speed=4         " {
		t.Fatalf("expected screen output, got %q", got)
	}
	b.h.Key("up")
	if b.mode() != ModeMenu {
		t.Fatalf("expected menu mode after press, got %s", b.mode())
	}
	if got := b.row(1); got != ">About          " {
		t.Fatalf("expected list at About, got %q", got)
	}
	if b.h.Model().Engine().Index() != 1 {
		t.Fatalf("expected the press to only repaint, got index %d", b.h.Model().Engine().Index())
	}
}

func TestBackFromRootReturnsToIdle(t *testing.T) {
	b := newBench(t, Options{})
	b.h.Key("enter")
	b.h.Key("esc")
	if b.mode() != ModeIdle {
		t.Fatalf("expected idle mode, got %s", b.mode())
	}
	if got := b.row(0); got != "Bench           " {
		t.Fatalf("expected idle screen, got %q", got)
	}
	b.h.Key("enter")
	if got := b.row(0); got != ">Speed          " {
		t.Fatalf("expected list again, got %q", got)
	}
}

func TestTickRepaintsOnlyInMenu(t *testing.T) {
	b := newBench(t, Options{})
	lcd := b.panel.(*lcdPanel)
	before := lcd.Draws()
	b.h.Send(tickMsg{})
	if lcd.Draws() != before {
		t.Fatalf("expected idle tick to leave the panel alone")
	}
	b.h.Key("enter")
	before = lcd.Draws()
	b.h.Send(tickMsg{})
	if lcd.Draws() <= before {
		t.Fatalf("expected menu tick to repaint")
	}
}

func TestButtonsFromSource(t *testing.T) {
	b := newBench(t, Options{})
	b.h.Send(buttonMsg{event: input.Event{Button: engine.ButtonSelect}})
	if b.mode() != ModeMenu {
		t.Fatalf("expected menu mode, got %s", b.mode())
	}
	b.h.Send(buttonMsg{event: input.Event{Err: errors.New("device unplugged")}})
	if !strings.Contains(b.h.View(), "device unplugged") {
		t.Fatalf("expected error in status line, got:\n%s", b.h.View())
	}
	b.h.Send(sourceDoneMsg{})
	b.h.Key("down")
	view := b.h.View()
	if strings.Contains(view, "device unplugged") || !strings.Contains(view, "input device closed") {
		t.Fatalf("expected info status after close, got:\n%s", view)
	}
	if b.h.Model().Presses() != 2 {
		t.Fatalf("expected 2 presses, got %d", b.h.Model().Presses())
	}
}

func TestQuitKey(t *testing.T) {
	b := newBench(t, Options{})
	b.h.Key("q")
	if !b.h.Quit() {
		t.Fatalf("expected quit")
	}
	if b.mode() != ModeIdle {
		t.Fatalf("expected quit key not to reach the engine")
	}
}

func TestViewFitsFixedWidth(t *testing.T) {
	b := newBench(t, Options{Title: "A title that is much too wide", Width: 20, ShowFooter: true})
	b.h.Key("enter")
	lines := strings.Split(ansi.Strip(b.h.View()), "\n")
	if !strings.HasSuffix(strings.TrimRight(lines[0], " "), "…") {
		t.Fatalf("expected truncated header, got %q", lines[0])
	}
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > 20 {
			t.Fatalf("expected lines within 20 columns, got %d: %q", w, line)
		}
	}
}

func TestOLEDPanel(t *testing.T) {
	panel, err := NewPanel(PanelOLED, 0, 0)
	if err != nil {
		t.Fatalf("panel failed: %v", err)
	}
	rows, cols := panel.Cells()
	if rows < 2 || cols < 16 {
		t.Fatalf("expected at least 2x16 cells, got %dx%d", rows, cols)
	}
	NewHost(panel, "OLED")
	lines := panel.Rows()
	if len(lines) != oledHeight/2 {
		t.Fatalf("expected %d text lines, got %d", oledHeight/2, len(lines))
	}
	if strings.TrimSpace(strings.Join(lines, "")) == "" {
		t.Fatalf("expected idle screen pixels")
	}
	if _, err := NewPanel("vfd", 2, 16); err == nil {
		t.Fatalf("expected unknown display to fail")
	}
}
