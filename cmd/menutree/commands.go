package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atomicstack/lcdmenu/internal/asset"
	"github.com/atomicstack/lcdmenu/internal/format/table"
	"github.com/atomicstack/lcdmenu/internal/menu"
	"github.com/atomicstack/lcdmenu/internal/store"
)

// loadAsset decodes the selected asset with every hook bound to a no-op,
// so only hooks the document never names are reported as unbound.
func loadAsset(opts *options) (*asset.Asset, error) {
	data := asset.DefaultSource()
	if opts.assetPath != "" {
		var err error
		if data, err = os.ReadFile(opts.assetPath); err != nil {
			return nil, fmt.Errorf("read asset: %w", err)
		}
	}
	names, err := asset.Hooks(data)
	if err != nil {
		return nil, err
	}
	stubs := make(asset.Registry, len(names))
	for _, name := range names {
		stubs[name] = menu.ActionFunc(func() {})
	}
	a, err := asset.Parse(data, stubs)
	if err != nil && opts.assetPath != "" {
		return nil, fmt.Errorf("%s: %w", opts.assetPath, err)
	}
	return a, err
}

func newShowCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the menu tree with current values",
		Example: `  # Built-in menu with its defaults
  menutree show

  # Values as saved by a running device
  menutree show --asset slider.yaml --store values.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAsset(opts)
			if err != nil {
				return err
			}
			if opts.storePath != "" {
				s, err := store.Open(opts.storePath)
				if err != nil {
					return err
				}
				defer s.Close()
				if _, err := s.Restore(a.Tree); err != nil {
					return fmt.Errorf("restore values: %w", err)
				}
			}
			out := cmd.OutOrStdout()
			if a.Title != "" {
				fmt.Fprintln(out, a.Title)
				fmt.Fprintln(out)
			}
			for _, line := range describe(a.Tree).Lines() {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.storePath, "store", "", "value store to read saved values from (.yaml or .db)")
	return cmd
}

// describe lays the tree out one node per row, indented by depth.
func describe(t *menu.Tree) *table.Table {
	tbl := table.New(
		table.Column{Title: "NODE"},
		table.Column{Title: "KIND"},
		table.Column{Title: "KEY"},
		table.Column{Title: "VALUE", Align: table.AlignRight},
	)
	t.Walk(func(id menu.NodeID, depth int) {
		n := t.Node(id)
		name := strings.Repeat("  ", depth) + n.Label
		d, ok := n.Descriptor()
		if !ok {
			tbl.Add(name, n.Kind().String())
			return
		}
		tbl.Add(name, d.Kind.String(), d.Key, asset.Format(*d))
	})
	return tbl
}

func newLintCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check a menu asset for authoring problems",
		Long: `Checks that labels fit the display, that sibling labels are not easily
confused, that select options fit the value row, and that every node is
reachable. Exits non-zero when any error is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAsset(opts)
			if err != nil {
				return err
			}
			issues := menu.Lint(a.Tree, menu.LintOptions{LabelWidth: opts.labelWidth, ValueWidth: opts.valueWidth})
			out := cmd.OutOrStdout()
			errs := 0
			for _, issue := range issues {
				if issue.Severity == menu.SeverityError {
					errs++
				}
				fmt.Fprintf(out, "%s: %s\n", issue.Severity, issue.Message)
			}
			if errs > 0 {
				return fmt.Errorf("%d error(s) found", errs)
			}
			if len(issues) == 0 {
				fmt.Fprintln(out, "ok")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.labelWidth, "label-width", 15, "columns available to a list label")
	cmd.Flags().IntVar(&opts.valueWidth, "value-width", 16, "columns available on the value row")
	return cmd
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the built-in menu asset to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(asset.DefaultSource())
			return err
		},
	}
}
