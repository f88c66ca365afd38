package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/woods/internal/syntax"
)

func (a *app) newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokens(args[0])
		},
	}
}

// runTokens scans the input file and prints all tokens with positions.
func (a *app) runTokens(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	s, err := syntax.NewScanner(filename, f)

	// Print header
	fmt.Fprintf(a.stdout, "%-24s %-18s %s\n", "POSITION", "TOKEN", "TEXT")
	fmt.Fprintf(a.stdout, "%-24s %-18s %s\n", strings.Repeat("-", 24), strings.Repeat("-", 18), strings.Repeat("-", 20))

	count := 0
	for err == nil {
		tok := s.Token()
		fmt.Fprintf(a.stdout, "%-24s %-18s %s\n", tok.Pos(), tok.Kind, formatLiteral(tok.Text))
		count++

		if tok.Kind == syntax.EOF {
			break
		}
		_, err = s.Next()
	}
	a.logger.Debug("scan finished", "file", filename, "tokens", count, "duration", time.Since(start))

	if err != nil {
		a.report(err)
		return errReported
	}
	return nil
}

// formatLiteral formats a token text for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
