package cmd

import (
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/runloopai/rlctl/internal/api"
	"github.com/runloopai/rlctl/internal/config"
	"github.com/runloopai/rlctl/internal/errors"
	"github.com/runloopai/rlctl/internal/ssh"
)

var devboxCmd = &cobra.Command{
	Use:   "devbox",
	Short: "Manage cloud devboxes",
}

var devboxListCmd = &cobra.Command{
	Use:   "list",
	Short: "List devboxes",
	RunE:  runDevboxList,
}

var devboxGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show devbox details",
	Args:  cobra.ExactArgs(1),
	RunE:  runDevboxGet,
}

var devboxCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a devbox",
	RunE:  runDevboxCreate,
}

var devboxExecCmd = &cobra.Command{
	Use:   "exec <id> -- <command>",
	Short: "Run a command on a devbox and wait for it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDevboxExec,
}

var devboxSSHCmd = &cobra.Command{
	Use:   "ssh <id>",
	Short: "Open an SSH session to a devbox",
	Args:  cobra.ExactArgs(1),
	RunE:  runDevboxSSH,
}

var devboxLogsCmd = &cobra.Command{
	Use:   "logs <id>",
	Short: "Show devbox execution logs",
	Args:  cobra.ExactArgs(1),
	RunE:  runDevboxLogs,
}

var devboxShutdownCmd = &cobra.Command{
	Use:   "shutdown <id>",
	Short: "Shut a devbox down",
	Args:  cobra.ExactArgs(1),
	RunE:  runDevboxShutdown,
}

var devboxSuspendCmd = &cobra.Command{
	Use:   "suspend <id>",
	Short: "Suspend a devbox, preserving its disk",
	Args:  cobra.ExactArgs(1),
	RunE:  runDevboxSuspend,
}

var devboxResumeCmd = &cobra.Command{
	Use:   "resume <id>",
	Short: "Resume a suspended devbox",
	Args:  cobra.ExactArgs(1),
	RunE:  runDevboxResume,
}

var devboxSnapshotCmd = &cobra.Command{
	Use:   "snapshot <id>",
	Short: "Start a disk snapshot of a devbox",
	Args:  cobra.ExactArgs(1),
	RunE:  runDevboxSnapshot,
}

var devboxSnapshotStatusCmd = &cobra.Command{
	Use:   "snapshot-status <snapshot-id>",
	Short: "Show the progress of a disk snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runDevboxSnapshotStatus,
}

var devboxSnapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List devbox disk snapshots",
	RunE:  runDevboxSnapshots,
}

var (
	devboxListStatus       string
	devboxListLimit        int
	devboxCreateBlueprint  string
	devboxCreateEntrypoint string
	devboxCreateEnv        []string
	devboxCreateSetup      []string
	devboxSSHConfigOnly    bool
	devboxLogsLimit        int
)

func init() {
	devboxListCmd.Flags().StringVar(&devboxListStatus, "status", "", "Filter by status (running, stopped, shutdown)")
	devboxListCmd.Flags().IntVarP(&devboxListLimit, "limit", "n", 0, "Maximum devboxes to list")

	devboxCreateCmd.Flags().StringVar(&devboxCreateBlueprint, "blueprint", "", "Launch from a blueprint id")
	devboxCreateCmd.Flags().StringVar(&devboxCreateEntrypoint, "entrypoint", "", "Command to run on boot")
	devboxCreateCmd.Flags().StringArrayVarP(&devboxCreateEnv, "env", "e", nil, "Environment variable KEY=VALUE (repeatable)")
	devboxCreateCmd.Flags().StringArrayVar(&devboxCreateSetup, "setup", nil, "Setup command run before the entrypoint (repeatable)")

	devboxSSHCmd.Flags().BoolVar(&devboxSSHConfigOnly, "config-only", false, "Print an ssh_config block instead of connecting")

	devboxLogsCmd.Flags().IntVarP(&devboxLogsLimit, "limit", "n", 0, "Maximum log lines to fetch")

	devboxCmd.AddCommand(devboxListCmd, devboxGetCmd, devboxCreateCmd, devboxExecCmd,
		devboxSSHCmd, devboxLogsCmd, devboxShutdownCmd, devboxSuspendCmd, devboxResumeCmd,
		devboxSnapshotCmd, devboxSnapshotStatusCmd, devboxSnapshotsCmd)
	rootCmd.AddCommand(devboxCmd)
}

func runDevboxList(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	list, err := a.Client.ListDevboxes(ctx, api.DevboxListParams{
		Limit:  devboxListLimit,
		Status: devboxListStatus,
	})
	if err != nil {
		return errors.APIError("list devboxes", err)
	}

	if len(list.Devboxes) == 0 {
		logInfo("No devboxes found")
		return nil
	}
	for _, d := range list.Devboxes {
		name := d.Name
		if name == "" {
			name = "-"
		}
		fmt.Printf("%-24s %-20s %-10s %s\n", d.ID, name, d.Status, formatTimestamp(d.CreateTimeMs))
	}
	if list.HasMore {
		logInfo("More devboxes available; rerun with a larger --limit")
	}
	return nil
}

func runDevboxGet(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	d, err := a.Client.GetDevbox(ctx, args[0])
	if err != nil {
		if api.IsNotFound(err) {
			return errors.DevboxNotFound(args[0])
		}
		return errors.APIError("get devbox", err)
	}

	kvLine("ID", d.ID)
	if d.Name != "" {
		kvLine("Name", d.Name)
	}
	kvLine("Status", d.Status)
	if d.BlueprintID != "" {
		kvLine("Blueprint", d.BlueprintID)
	}
	if d.SnapshotID != "" {
		kvLine("Snapshot", d.SnapshotID)
	}
	if d.Entrypoint != "" {
		kvLine("Entrypoint", d.Entrypoint)
	}
	kvLine("Created", formatTimestamp(d.CreateTimeMs))
	return nil
}

func runDevboxCreate(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}

	envVars := make(map[string]string)
	for _, kv := range devboxCreateEnv {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return errors.ValidationError(fmt.Sprintf("invalid --env %q, expected KEY=VALUE", kv))
		}
		envVars[k] = v
	}
	if len(envVars) == 0 {
		envVars = nil
	}

	ctx, cancel := cmdContext()
	defer cancel()

	d, err := a.Client.CreateDevbox(ctx, api.CreateDevboxParams{
		Entrypoint:    devboxCreateEntrypoint,
		EnvVars:       envVars,
		SetupCommands: devboxCreateSetup,
		BlueprintID:   devboxCreateBlueprint,
	})
	if err != nil {
		return errors.APIError("create devbox", err)
	}

	logSuccess("Devbox %s created (%s)", d.ID, d.Status)
	return nil
}

func runDevboxExec(cmd *cobra.Command, args []string) error {
	id := args[0]

	// Find the command to execute (everything after --)
	var execArgs []string
	for i, arg := range args {
		if arg == "--" {
			execArgs = args[i+1:]
			break
		}
	}
	if len(execArgs) == 0 {
		// Cobra strips a leading -- before RunE; treat the remaining
		// args as the command.
		execArgs = args[1:]
	}
	if len(execArgs) == 0 {
		return errors.ValidationError("usage: rlctl devbox exec <id> -- <command>")
	}

	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	// Construct the command string with all arguments quoted.
	cmdStr := shellquote.Join(execArgs...)
	result, err := a.Client.ExecuteSync(ctx, id, cmdStr)
	if err != nil {
		if api.IsNotFound(err) {
			return errors.DevboxNotFound(id)
		}
		return errors.ExecError("execute command", err)
	}

	if result.Stdout != "" {
		fmt.Print(result.Stdout)
	}
	if result.Stderr != "" {
		fmt.Fprint(cmd.ErrOrStderr(), result.Stderr)
	}
	if result.ExitCode != 0 {
		return errors.New(errors.ExitExecError, fmt.Sprintf("command exited with status %d", result.ExitCode))
	}
	return nil
}

func runDevboxSSH(cmd *cobra.Command, args []string) error {
	id := args[0]

	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	key, err := a.Client.CreateSSHKey(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			return errors.DevboxNotFound(id)
		}
		return errors.SSHError("create ssh key", err)
	}

	keysDir, err := config.SSHKeysDir()
	if err != nil {
		return errors.SSHError("resolve key directory", err)
	}
	keyFile, err := ssh.WriteKey(keysDir, id, key.PrivateKey)
	if err != nil {
		return errors.SSHError("write ssh key", err)
	}

	opts := ssh.DefaultOptions(key.URL, keyFile, a.Config.SSHProxyAddr())

	if devboxSSHConfigOnly {
		fmt.Print(opts.ConfigBlock(id))
		return nil
	}

	logInfo("Connecting to %s...", id)
	return ssh.ReplaceWithSession(opts.WithTTY())
}

func runDevboxLogs(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	list, err := a.Client.DevboxLogs(ctx, args[0], devboxLogsLimit, "")
	if err != nil {
		if api.IsNotFound(err) {
			return errors.DevboxNotFound(args[0])
		}
		return errors.APIError("fetch logs", err)
	}

	for _, l := range list.Logs {
		fmt.Println(formatLog(l))
	}
	return nil
}

// formatLog renders one log line the way the service reports them:
// commands with an arrow, exits with their status, output verbatim.
func formatLog(l api.LogEntry) string {
	ts := ""
	if l.TimestampMs > 0 {
		ts = formatTimestamp(l.TimestampMs) + " "
	}
	switch {
	case l.Cmd != "":
		return fmt.Sprintf("%s-> %s", ts, l.Cmd)
	case l.ExitCode != nil:
		return fmt.Sprintf("%s-> exit_code=%d", ts, *l.ExitCode)
	default:
		return ts + l.Message
	}
}

func runDevboxShutdown(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	d, err := a.Client.ShutdownDevbox(ctx, args[0])
	if err != nil {
		if api.IsNotFound(err) {
			return errors.DevboxNotFound(args[0])
		}
		return errors.APIError("shutdown devbox", err)
	}

	logSuccess("Devbox %s is %s", d.ID, d.Status)
	return nil
}

func runDevboxSuspend(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	d, err := a.Client.SuspendDevbox(ctx, args[0])
	if err != nil {
		if api.IsNotFound(err) {
			return errors.DevboxNotFound(args[0])
		}
		return errors.APIError("suspend devbox", err)
	}

	logSuccess("Devbox %s is %s", d.ID, d.Status)
	return nil
}

func runDevboxResume(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	d, err := a.Client.ResumeDevbox(ctx, args[0])
	if err != nil {
		if api.IsNotFound(err) {
			return errors.DevboxNotFound(args[0])
		}
		return errors.APIError("resume devbox", err)
	}

	logSuccess("Devbox %s is %s", d.ID, d.Status)
	return nil
}

func runDevboxSnapshot(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	s, err := a.Client.SnapshotDisk(ctx, args[0])
	if err != nil {
		if api.IsNotFound(err) {
			return errors.DevboxNotFound(args[0])
		}
		return errors.APIError("snapshot devbox", err)
	}

	logSuccess("Snapshot %s started", s.ID)
	logInfo("Check progress with: rlctl devbox snapshot-status %s", s.ID)
	return nil
}

func runDevboxSnapshotStatus(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	status, err := a.Client.SnapshotStatus(ctx, args[0])
	if err != nil {
		if api.IsNotFound(err) {
			return errors.New(errors.ExitNotFound, fmt.Sprintf("snapshot not found: %s", args[0]))
		}
		return errors.APIError("query snapshot status", err)
	}

	kvLine("Status", status.Status)
	if status.ErrorDetails != "" {
		kvLine("Error", status.ErrorDetails)
	}
	if status.Snapshot != nil {
		kvLine("Snapshot", status.Snapshot.ID)
		kvLine("Source", status.Snapshot.SourceID)
	}
	return nil
}

func runDevboxSnapshots(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	list, err := a.Client.ListSnapshots(ctx, 0, "")
	if err != nil {
		return errors.APIError("list snapshots", err)
	}

	if len(list.Snapshots) == 0 {
		logInfo("No disk snapshots found")
		return nil
	}
	for _, s := range list.Snapshots {
		name := s.Name
		if name == "" {
			name = "-"
		}
		fmt.Printf("%-28s %-20s %-24s %s\n", s.ID, name, s.SourceID, formatTimestamp(s.CreateTimeMs))
	}
	return nil
}
