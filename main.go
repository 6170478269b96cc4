package main

import (
	"os"

	"github.com/runloopai/rlctl/cmd"
	"github.com/runloopai/rlctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
