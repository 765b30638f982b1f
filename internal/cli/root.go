// Package cli implements the "silt" command-line front end: cobra command
// tree, context-threaded configuration/styles/logger, rooted at Execute
// and called from cmd/silt/main.go.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/silt-lang/silt/internal/cli/clictx"
	"github.com/silt-lang/silt/internal/cli/commands"
	"github.com/silt-lang/silt/internal/config"
	"github.com/silt-lang/silt/internal/diagnostic"
)

var noColor bool

// Version information, set at build time via -ldflags.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd builds the "silt" command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "silt",
		Short:   "Silt - a dependently-typed language front end",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("determining working directory: %w", err)
			}
			if root := config.FindProjectRoot(dir); root != "" {
				dir = root
			}
			cfg, err := config.LoadConfig(dir, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			effectiveNoColor := noColor || os.Getenv("SILT_NO_COLOR") != "" || cfg.Color == "never"
			styles := diagnostic.NewStyles(cmd.OutOrStdout(), effectiveNoColor)

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

			ctx := clictx.WithProjectConfig(cmd.Context(), cfg)
			ctx = clictx.WithStyles(ctx, styles)
			ctx = diagnostic.ContextWithLogger(ctx, logger)
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
	root.PersistentFlags().String("verbosity", "", "diagnostic severity stored in the project config (note|warning|error); printing does not filter by it")

	root.AddCommand(commands.NewTokensCommand())
	root.AddCommand(commands.NewFileCommand())
	root.AddCommand(commands.NewShineCommand())
	root.AddCommand(commands.NewParseCommand())
	root.AddCommand(commands.NewScopesCommand())
	root.AddCommand(commands.NewVerifyCommand())
	root.AddCommand(commands.NewCompileCommand())
	root.AddCommand(commands.NewReplCommand())
	root.AddCommand(commands.NewWatchCommand())
	root.AddCommand(commands.NewVersionCommand(Version, BuildDate, GitCommit))

	return root
}

// Execute runs the root command, printing any returned error to stderr.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
