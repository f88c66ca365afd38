package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/woods/internal/config"
	"github.com/you-not-fish/woods/internal/diag"
	"github.com/you-not-fish/woods/internal/syntax"
)

// app holds the state shared by all subcommands.
type app struct {
	// Persistent flags
	cfgFile       string
	verbose       bool
	noColor       bool
	requireReturn bool

	stdout io.Writer
	stderr io.Writer

	// Set up by setup before any subcommand runs
	cfg      *config.Config
	logger   *slog.Logger
	renderer *diag.Renderer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "woodsc",
		Short: "Lexer and parser for the woods scripting language",
		Long: `woodsc tokenizes and parses woods source files.

Commands:
  tokens   - print the token stream of a file
  ast      - print the syntax tree of a file
  check    - report the first error of each file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ./woods.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log stage timings")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored diagnostics")
	root.PersistentFlags().BoolVar(&a.requireReturn, "require-return", false, "reject functions with a return type but no _return")

	root.AddCommand(
		a.newTokensCmd(),
		a.newASTCmd(),
		a.newCheckCmd(),
		newVersionCmd(),
	)
	return root
}

// setup configures logging, loads the configuration and applies flag overrides.
func (a *app) setup() error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	cfg, path, err := a.loadConfig()
	if err != nil {
		return err
	}
	if path != "" {
		a.logger.Debug("config loaded", "path", path)
	}

	if a.noColor {
		cfg.Diagnostics.Color = false
	}
	if a.requireReturn {
		cfg.Parser.RequireReturn = true
	}

	a.cfg = cfg
	a.renderer = diag.NewRenderer(a.stderr, cfg.Diagnostics)
	return nil
}

// loadConfig resolves the config file: --config, then $WOODS_CONFIG, then
// discovery in the working directory.
func (a *app) loadConfig() (*config.Config, string, error) {
	path := a.cfgFile
	if path == "" {
		path = os.Getenv(config.EnvVar)
	}
	if path != "" {
		cfg, err := config.Load(path)
		return cfg, path, err
	}
	return config.Discover(".")
}

// report writes the diagnostic for err to stderr.
func (a *app) report(err error) {
	fmt.Fprintln(a.stderr, a.renderer.Render(err))
}

// parseFile parses filename with the configured parser options.
func (a *app) parseFile(filename string) (*syntax.Node, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	start := time.Now()
	tree, err := syntax.Parse(filename, f, a.cfg.ParserOptions()...)
	a.logger.Debug("parse finished", "file", filename, "duration", time.Since(start), "ok", err == nil)
	return tree, err
}
