package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runloopai/rlctl/internal/api"
	"github.com/runloopai/rlctl/internal/errors"
)

var invocationCmd = &cobra.Command{
	Use:   "invocation",
	Short: "Inspect function invocations",
}

var invocationGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show invocation details",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvocationGet,
}

func init() {
	invocationCmd.AddCommand(invocationGetCmd)
	rootCmd.AddCommand(invocationCmd)
}

func runInvocationGet(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	inv, err := a.Client.GetInvocation(ctx, args[0])
	if err != nil {
		if api.IsNotFound(err) {
			return errors.New(errors.ExitNotFound, fmt.Sprintf("invocation not found: %s", args[0]))
		}
		return errors.APIError("get invocation", err)
	}

	kvLine("ID", inv.ID)
	kvLine("Status", inv.Status)
	if inv.Result != nil {
		out, err := json.MarshalIndent(inv.Result, "  ", "  ")
		if err == nil {
			fmt.Printf("  %-14s %s\n", "Result:", out)
		}
	}
	return nil
}
