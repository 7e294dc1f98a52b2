package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chriscorrea/voca/internal/app"
	"github.com/chriscorrea/voca/internal/charset"
	"github.com/chriscorrea/voca/internal/fetch"
)

// groupTitles orders and names the operation groups in help output.
var groupTitles = []struct{ id, title string }{
	{"split", "Split Operations:"},
	{"chop", "Chop Operations:"},
	{"case", "Case Operations:"},
	{"count", "Count Operations:"},
	{"escape", "Escape Operations:"},
	{"index", "Index Operations:"},
	{"manipulate", "Manipulate Operations:"},
	{"query", "Query Operations:"},
	{"strip", "Strip Operations:"},
}

// stdinIsTerminal is a variable so tests can pretend input is piped.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// buildConfig constructs an app.Config for op from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string, op app.Operation) (app.Config, error) {
	flags := cmd.Flags()

	input, _ := flags.GetString("string")
	selector, _ := flags.GetString("selector")
	htmlFlag, _ := flags.GetBool("html")
	htmlMdFlag, _ := flags.GetBool("html-md")
	includeAll, _ := flags.GetBool("include-all")
	jsonFlag, _ := flags.GetBool("json")
	yamlFlag, _ := flags.GetBool("yaml")
	timeout, _ := flags.GetDuration("timeout")
	quiet, _ := flags.GetBool("quiet")
	debug, _ := flags.GetBool("debug")

	// determine output format
	var outputFormat app.OutputFormat
	switch {
	case jsonFlag:
		outputFormat = app.JSON
	case yamlFlag:
		outputFormat = app.YAML
	default:
		outputFormat = app.Text // --text or no format flag
	}

	// determine HTML handling; a selector implies text extraction
	var htmlMode app.HTMLMode
	switch {
	case htmlMdFlag:
		htmlMode = app.HTMLMarkdown
	case htmlFlag, selector != "":
		htmlMode = app.HTMLText
	default:
		htmlMode = app.HTMLNone
	}

	// operation parameters come from the flags generated for op
	opArgs := make(app.Args, len(op.Params))
	for _, p := range op.Params {
		var (
			value any
			err   error
		)
		switch p.Kind {
		case app.Int:
			value, err = flags.GetInt(p.Name)
		case app.Bool:
			value, err = flags.GetBool(p.Name)
		default:
			value, err = flags.GetString(p.Name)
		}
		if err != nil {
			return app.Config{}, fmt.Errorf("reading --%s: %w", p.Name, err)
		}
		opArgs[p.Name] = value
	}

	cfg := app.Config{
		Operation:    op.Name,
		Args:         opArgs,
		HTML:         htmlMode,
		Selector:     selector,
		IncludeAll:   includeAll,
		OutputFormat: outputFormat,
		Limits:       fetch.Limits{Timeout: timeout},
		Quiet:        quiet,
		Debug:        debug,
	}

	switch {
	case flags.Changed("string"):
		cfg.Input = &input
	case len(args) > 0:
		cfg.Sources = args
	case !stdinIsTerminal():
		cfg.Sources = []string{"-"}
	default:
		return app.Config{}, fmt.Errorf("%w: pass sources, --string, or pipe text on stdin", app.ErrNoInput)
	}

	return cfg, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// newOperationCommand turns one registered operation into a subcommand whose
// flags mirror the operation's parameters.
func newOperationCommand(op app.Operation) *cobra.Command {
	cmd := &cobra.Command{
		Use:     op.Name + " [sources...]",
		Short:   op.Short,
		GroupID: op.Group,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := buildConfig(cmd, args, op)
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			setupLogger(config.Debug)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			result, err := app.Run(ctx, config)
			if err != nil {
				return fmt.Errorf("voca %s failed: %w", op.Name, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	for _, p := range op.Params {
		switch p.Kind {
		case app.Int:
			cmd.Flags().Int(p.Name, p.Default.(int), p.Usage)
		case app.Bool:
			cmd.Flags().Bool(p.Name, p.Default.(bool), p.Usage)
		default:
			cmd.Flags().String(p.Name, p.Default.(string), p.Usage)
		}
	}
	return cmd
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "voca <operation> [sources...]",
		Short:   "A CLI tool for Unicode-aware string manipulation",
		Version: charset.Version,
		Long: `Voca is a command-line toolkit for manipulating text: case conversion, grapheme-aware
slicing, padding, counting, searching, escaping and HTML stripping. Text may come from
URLs, local files, standard input, or the --string flag.

Examples:
  voca camel --string "gravity can cross dimensions"
  voca truncate --length 20 notes.txt
  voca count --by graphemes --html https://example.com
  cat names.txt | voca slugify --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("string", "s", "", "Use this literal text instead of reading sources")

	// HTML handling
	flags.Bool("html", false, "Treat input as HTML and extract its text")
	flags.Bool("html-md", false, "Treat input as HTML and convert it to Markdown")
	flags.String("selector", "", "CSS selector for HTML content (implies --html)")
	flags.BoolP("include-all", "i", false, "Include all HTML content without readability filtering")
	rootCmd.MarkFlagsMutuallyExclusive("html", "html-md")

	// output format flags
	flags.Bool("text", false, "Output plain text (default)")
	flags.Bool("json", false, "Output JSON")
	flags.Bool("yaml", false, "Output YAML")
	rootCmd.MarkFlagsMutuallyExclusive("text", "json", "yaml")

	// other flags
	flags.Duration("timeout", fetch.DefaultLimits().Timeout, "HTTP request timeout")
	flags.BoolP("quiet", "q", false, "Suppress warnings and progress output")
	flags.BoolP("debug", "D", false, "Enable debug logging")
	_ = flags.MarkHidden("debug")

	for _, g := range groupTitles {
		rootCmd.AddGroup(&cobra.Group{ID: g.id, Title: g.title})
	}
	for _, op := range app.Operations() {
		rootCmd.AddCommand(newOperationCommand(op))
	}
	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, app.ErrNoInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
