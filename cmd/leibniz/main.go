// Package main provides the leibniz CLI.
package main

import (
	"fmt"
	"os"

	"github.com/leibniz-ad/leibniz/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
