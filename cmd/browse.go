package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/runloopai/rlctl/internal/errors"
	"github.com/runloopai/rlctl/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse resources interactively",
	Long: `browse opens a full-screen browser over devboxes, blueprints,
objects, and disk snapshots. Lists poll while visible, page through
the service's cursor API, and drill into per-devbox detail and logs.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.ValidationError("browse requires an interactive terminal")
	}

	a, err := getApp()
	if err != nil {
		return err
	}
	return tui.Run(a)
}
