package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/woods/internal/config"
	"github.com/you-not-fish/woods/internal/syntax"
)

// dumpConfig renders trees for the dump format.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func (a *app) newASTCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ast FILE",
		Short: "Print the syntax tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.Format
			}
			return a.runAST(args[0], format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format ("+strings.Join(config.Formats, ", ")+")")
	return cmd
}

// runAST parses the input file and prints its syntax tree.
func (a *app) runAST(filename, format string) error {
	if !config.IsFormat(format) {
		return fmt.Errorf("unknown format %q%s", format, suggestFormat(format))
	}

	tree, err := a.parseFile(filename)
	if err != nil {
		a.report(err)
		return errReported
	}

	switch format {
	case config.FormatTree:
		return syntax.Fprint(a.stdout, tree)
	case config.FormatJSON:
		return syntax.FprintJSON(a.stdout, tree)
	case config.FormatYAML:
		return syntax.FprintYAML(a.stdout, tree)
	case config.FormatDump:
		dumpConfig.Fdump(a.stdout, tree)
		return nil
	}
	_, err = fmt.Fprintln(a.stdout, syntax.Sprint(tree))
	return err
}

// suggestFormat returns a " (did you mean ...?)" hint for a misspelled format.
func suggestFormat(format string) string {
	if format == "" {
		return ""
	}
	ranks := fuzzy.RankFindNormalizedFold(format, config.Formats)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return fmt.Sprintf(" (did you mean %s?)", ranks[0].Target)
}
