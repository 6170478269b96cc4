package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/runloopai/rlctl/internal/config"
	"github.com/runloopai/rlctl/internal/logging"
	"github.com/runloopai/rlctl/internal/update"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "rlctl",
	Short: "Runloop devbox management CLI",
	Long: `rlctl manages Runloop cloud devboxes from the terminal.

A devbox is an ephemeral cloud development sandbox:
  - Launched from scratch, a blueprint, or a disk snapshot
  - Reachable over SSH through the Runloop proxy
  - Paired with blueprints, stored objects, and snapshots`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
		maybeCheckUpdate()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	_          = logging.UserError // reserved for future use
)

// maybeCheckUpdate prints a one-line notice when a newer release is
// available, at most once a day. Failures are silent; the command's
// own work is never affected. Non-interactive runs skip the check.
func maybeCheckUpdate() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return
	}
	cacheDir, err := config.CacheDir()
	if err != nil {
		return
	}
	if notice := updateNotice(update.NewChecker(cacheDir)); notice != "" {
		logWarning("%s", notice)
	}
}

// updateNotice asks the checker for an upgrade hint. The checker
// gates and stamps its own daily window; stamping here first would
// silence it permanently.
func updateNotice(c *update.Checker) string {
	return c.Notice()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rlctl version",
	Run: func(cmd *cobra.Command, args []string) {
		logInfo("rlctl %s", update.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
