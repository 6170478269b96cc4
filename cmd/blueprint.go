package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runloopai/rlctl/internal/api"
	"github.com/runloopai/rlctl/internal/errors"
)

var blueprintCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "Manage devbox blueprints",
}

var blueprintListCmd = &cobra.Command{
	Use:   "list",
	Short: "List blueprints",
	RunE:  runBlueprintList,
}

var blueprintGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show blueprint details",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlueprintGet,
}

var blueprintCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Build a new blueprint",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlueprintCreate,
}

var blueprintPreviewCmd = &cobra.Command{
	Use:   "preview <name>",
	Short: "Preview the Dockerfile a create would build",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlueprintPreview,
}

var blueprintLogsCmd = &cobra.Command{
	Use:   "logs <id>",
	Short: "Show blueprint build logs",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlueprintLogs,
}

var (
	blueprintListName       string
	blueprintListLimit      int
	blueprintDockerfilePath string
	blueprintSetupCommands  []string
	blueprintResourceSize   string
	blueprintPorts          []int
	blueprintRunAsUser      bool
	blueprintRunAsRoot      bool
)

func init() {
	blueprintListCmd.Flags().StringVar(&blueprintListName, "name", "", "Filter by blueprint name")
	blueprintListCmd.Flags().IntVarP(&blueprintListLimit, "limit", "n", 0, "Maximum blueprints to list")

	for _, c := range []*cobra.Command{blueprintCreateCmd, blueprintPreviewCmd} {
		c.Flags().StringVar(&blueprintDockerfilePath, "dockerfile", "", "Path to a Dockerfile to build from")
		c.Flags().StringArrayVar(&blueprintSetupCommands, "setup", nil, "System setup command (repeatable)")
		c.Flags().StringVar(&blueprintResourceSize, "resource-size", "", "Devbox resource size for launches")
		c.Flags().IntSliceVar(&blueprintPorts, "port", nil, "Port to expose on launched devboxes (repeatable)")
		c.Flags().BoolVar(&blueprintRunAsUser, "user", false, "Launched devboxes run as the unprivileged user")
		c.Flags().BoolVar(&blueprintRunAsRoot, "root", false, "Launched devboxes run as root")
	}

	blueprintCmd.AddCommand(blueprintListCmd, blueprintGetCmd, blueprintCreateCmd,
		blueprintPreviewCmd, blueprintLogsCmd)
	rootCmd.AddCommand(blueprintCmd)
}

// blueprintParams assembles the create/preview request from flags.
func blueprintParams(name string) (api.CreateBlueprintParams, error) {
	if blueprintRunAsUser && blueprintRunAsRoot {
		return api.CreateBlueprintParams{}, errors.ValidationError("--user and --root are mutually exclusive")
	}

	params := api.CreateBlueprintParams{
		Name:                name,
		SystemSetupCommands: blueprintSetupCommands,
	}

	if blueprintDockerfilePath != "" {
		data, err := os.ReadFile(blueprintDockerfilePath)
		if err != nil {
			return api.CreateBlueprintParams{}, errors.ConfigError("read dockerfile", err)
		}
		params.Dockerfile = string(data)
	}

	launch := &api.LaunchParameters{
		ResourceSize:   blueprintResourceSize,
		AvailablePorts: blueprintPorts,
	}
	switch {
	case blueprintRunAsUser:
		launch.UserParameters = &api.UserPrm{Username: "user", UID: 1000}
	case blueprintRunAsRoot:
		launch.UserParameters = &api.UserPrm{Username: "root", UID: 0}
	}
	if launch.ResourceSize != "" || len(launch.AvailablePorts) > 0 || launch.UserParameters != nil {
		params.LaunchParameters = launch
	}
	return params, nil
}

func runBlueprintList(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	list, err := a.Client.ListBlueprints(ctx, api.BlueprintListParams{
		Limit: blueprintListLimit,
		Name:  blueprintListName,
	})
	if err != nil {
		return errors.APIError("list blueprints", err)
	}

	if len(list.Blueprints) == 0 {
		logInfo("No blueprints found")
		return nil
	}
	for _, b := range list.Blueprints {
		fmt.Printf("%-28s %-24s %-14s %s\n", b.ID, b.Name, b.Status, formatTimestamp(b.CreateTimeMs))
	}
	if list.HasMore {
		logInfo("More blueprints available; rerun with a larger --limit")
	}
	return nil
}

func runBlueprintGet(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	b, err := a.Client.GetBlueprint(ctx, args[0])
	if err != nil {
		if api.IsNotFound(err) {
			return errors.BlueprintNotFound(args[0])
		}
		return errors.APIError("get blueprint", err)
	}

	kvLine("ID", b.ID)
	kvLine("Name", b.Name)
	kvLine("Status", b.Status)
	kvLine("Created", formatTimestamp(b.CreateTimeMs))
	if b.Dockerfile != "" {
		fmt.Println("\nDockerfile:")
		fmt.Println(b.Dockerfile)
	}
	return nil
}

func runBlueprintCreate(cmd *cobra.Command, args []string) error {
	params, err := blueprintParams(args[0])
	if err != nil {
		return err
	}

	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	b, err := a.Client.CreateBlueprint(ctx, params)
	if err != nil {
		return errors.APIError("create blueprint", err)
	}

	logSuccess("Blueprint %s building (%s)", b.Name, b.ID)
	logInfo("Follow the build with: rlctl blueprint logs %s", b.ID)
	return nil
}

func runBlueprintPreview(cmd *cobra.Command, args []string) error {
	params, err := blueprintParams(args[0])
	if err != nil {
		return err
	}

	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	b, err := a.Client.PreviewBlueprint(ctx, params)
	if err != nil {
		return errors.APIError("preview blueprint", err)
	}

	fmt.Println(b.Dockerfile)
	return nil
}

func runBlueprintLogs(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	list, err := a.Client.BlueprintLogs(ctx, args[0])
	if err != nil {
		if api.IsNotFound(err) {
			return errors.BlueprintNotFound(args[0])
		}
		return errors.APIError("fetch build logs", err)
	}

	for _, l := range list.Logs {
		fmt.Println(formatLog(l))
	}
	return nil
}
