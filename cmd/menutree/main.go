// Menutree inspects menu assets for lcdmenu.
//
// Usage:
//
//	menutree [command] [flags]
//
// Without --asset every command works on the built-in menu.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the flags shared by every subcommand.
type options struct {
	assetPath  string
	storePath  string
	labelWidth int
	valueWidth int
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "menutree",
		Short: "Inspect lcdmenu menu assets",
		Long: `Loads a YAML menu asset, or the built-in menu, and prints or checks it.

Use show to see every node with its current value, lint to catch labels that
will not fit the display and other authoring mistakes, and export to write the
built-in asset out as a starting point for a new menu.`,
		SilenceUsage: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&opts.assetPath, "asset", "", "path to a YAML menu asset (default: built-in menu)")

	root.AddCommand(newShowCmd(opts))
	root.AddCommand(newLintCmd(opts))
	root.AddCommand(newExportCmd())
	return root
}
