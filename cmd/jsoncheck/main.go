package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jsoncheck/internal/bootstrap"
	checkinadapter "jsoncheck/internal/modules/check/adapter/in"
	"jsoncheck/internal/platform/config"
	"jsoncheck/internal/platform/logging"
	"jsoncheck/internal/platform/version"
	"jsoncheck/internal/ui/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv))
}

// exitCode carries a non-zero status through cobra without printing anything.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

func exitWith(code int) error {
	if code == 0 {
		return nil
	}
	return exitCode(code)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, lookup config.Lookup) int {
	root := newRootCmd(lookup)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			return int(code)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd(lookup config.Lookup) *cobra.Command {
	root := &cobra.Command{
		Use:   "jsoncheck",
		Short: "Pre-commit plugin that validates JSON syntax and formatting",
		Long: "Without a subcommand jsoncheck reads one plugin request from stdin and\n" +
			"writes one JSON response to stdout. INDENT_SIZE and SORT_KEYS select the\n" +
			"canonical format.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlugin(cmd, lookup)
		},
	}
	root.AddCommand(newLintCmd(lookup))
	root.AddCommand(newManifestCmd(lookup))
	root.AddCommand(newVersionCmd())
	return root
}

func loadApp(cmd *cobra.Command, lookup config.Lookup) (*bootstrap.App, error) {
	cfg, err := config.Load(lookup)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(cfg.LogLevel, cmd.ErrOrStderr()))
}

// runPlugin always answers with a protocol message, including when the
// environment is unusable. The request is read before the environment so a
// malformed payload is reported as such.
func runPlugin(cmd *cobra.Command, lookup config.Lookup) error {
	out := cmd.OutOrStdout()
	req, err := checkinadapter.DecodeRequest(cmd.InOrStdin())
	if err != nil {
		logging.New(config.DefaultLogLevel, cmd.ErrOrStderr()).Debug("rejecting request", "error", err)
		return exitWith(checkinadapter.WriteResponse(out, checkinadapter.InvalidInput()))
	}
	cfg, err := config.Load(lookup)
	if err != nil {
		logging.New(config.DefaultLogLevel, cmd.ErrOrStderr()).Warn("invalid plugin environment", "error", err)
		resp := checkinadapter.Failure(err.Error(), "Check the plugin environment")
		var invalid *config.InvalidValueError
		if errors.As(err, &invalid) {
			resp = checkinadapter.Failure(invalid.Error(), invalid.Hint)
		}
		return exitWith(checkinadapter.WriteResponse(out, resp))
	}
	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		logger.Error("bootstrap failed", "error", err)
		return exitWith(checkinadapter.WriteResponse(out, checkinadapter.Failure(err.Error(), "Check the plugin environment")))
	}
	return exitWith(checkinadapter.WriteResponse(out, app.CheckProtocol.Respond(cmd.Context(), req)))
}

func newLintCmd(lookup config.Lookup) *cobra.Command {
	var showCanonical bool
	lint := &cobra.Command{
		Use:   "lint <path> [path...]",
		Short: "Check files and print a readable report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, lookup)
			if err != nil {
				return err
			}
			out, err := app.CheckCLI.Lint(cmd.Context(), args)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), report.Render(out, report.Options{ShowCanonical: showCanonical}))
			if !out.Success {
				return exitWith(1)
			}
			return nil
		},
	}
	lint.Flags().BoolVar(&showCanonical, "print", false, "print the canonical text of files that need formatting")
	return lint
}

func newManifestCmd(lookup config.Lookup) *cobra.Command {
	var format string
	manifest := &cobra.Command{
		Use:   "manifest",
		Short: "Print the plugin manifest for the pre-commit host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, lookup)
			if err != nil {
				return err
			}
			out, err := app.ManifestCLI.Render(cmd.Context(), strings.ToLower(format))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}
	manifest.Flags().StringVar(&format, "format", "yaml", "manifest format: yaml|json")

	manifest.AddCommand(&cobra.Command{
		Use:   "validate <dir>",
		Short: "Validate plugin.yaml, plugin.yml or plugin.json in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, lookup)
			if err != nil {
				return err
			}
			out, err := app.ManifestCLI.Validate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(out.Problems) == 0 {
				_, _ = fmt.Fprintf(w, "ok %s (%s %s)\n", out.Path, out.Name, out.Version)
				return nil
			}
			_, _ = fmt.Fprintf(w, "invalid %s\n", out.Path)
			for _, problem := range out.Problems {
				_, _ = fmt.Fprintf(w, "  - %s\n", problem)
			}
			return exitWith(1)
		},
	})
	return manifest
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "jsoncheck %s\n", version.Version)
			if version.GitCommit != "" {
				_, _ = fmt.Fprintf(w, "commit: %s\n", version.GitCommit)
			}
			if version.BuildDate != "" {
				_, _ = fmt.Fprintf(w, "built: %s\n", version.BuildDate)
			}
			return nil
		},
	}
}
