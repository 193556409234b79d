package display

import (
	"testing"

	"github.com/atomicstack/lcdmenu/internal/menu"
)

func sampleTree(t *testing.T) *menu.Tree {
	t.Helper()
	var contrast uint8
	b := menu.NewBuilder()
	c := b.Value("contrast", "Contrast", menu.ByteValue("contrast", &contrast, 0, 15))
	about := b.Screen("about", "About", nil)
	root := b.Submenu("root", "Display", c, about)
	tree, err := b.Build(root)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return tree
}
