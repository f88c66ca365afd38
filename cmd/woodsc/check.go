package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Parse files and report the first error of each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(args)
		},
	}
}

// runCheck parses every file; it keeps going after a failing file.
func (a *app) runCheck(filenames []string) error {
	failed := 0
	for _, filename := range filenames {
		if _, err := a.parseFile(filename); err != nil {
			a.report(err)
			failed++
			continue
		}
		fmt.Fprintf(a.stdout, "ok   %s\n", filename)
	}

	a.logger.Debug("check finished", "files", len(filenames), "failed", failed)
	if failed > 0 {
		return errReported
	}
	return nil
}
