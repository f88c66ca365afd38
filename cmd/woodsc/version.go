package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information
var Version = "0.1.0-dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "woodsc version %s\n", Version)
			fmt.Fprintf(out, "go version %s\n", runtime.Version())
		},
	}
}
