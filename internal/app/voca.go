// Package app contains the core application logic for the voca CLI tool.
// It handles the main business logic separated from CLI concerns: reading
// sources, extracting text from HTML, running one operation and rendering
// its result.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/chriscorrea/voca/internal/extract"
	"github.com/chriscorrea/voca/internal/fetch"
	"github.com/chriscorrea/voca/internal/spinner"
)

// ErrNoInput is returned (wrapped) when no source produced any text.
var ErrNoInput = errors.New("no input")

// OutputFormat defines the output format for results
type OutputFormat int

const (
	// plaintext output format (default)
	Text OutputFormat = iota
	// JSON output format
	JSON
	// YAML output format
	YAML
)

// String returns the string representation of the output
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "Text"
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	default:
		return "Unknown"
	}
}

// HTMLMode selects how HTML input is turned into the subject text.
type HTMLMode int

const (
	// input is used as is (default)
	HTMLNone HTMLMode = iota
	// tags stripped and entities decoded
	HTMLText
	// converted to Markdown
	HTMLMarkdown
)

// String returns the string representation of the mode
func (m HTMLMode) String() string {
	switch m {
	case HTMLNone:
		return "None"
	case HTMLText:
		return "Text"
	case HTMLMarkdown:
		return "Markdown"
	default:
		return "Unknown"
	}
}

// Config holds all configuration options for one voca run.
type Config struct {
	Operation    string       // registered operation name
	Args         Args         // operation parameters; missing ones take their defaults
	Input        *string      // literal subject; when set, Sources are ignored
	Sources      []string     // URLs, file paths, or "-" for stdin
	HTML         HTMLMode     // how to treat HTML sources
	Selector     string       // CSS selector for content extraction
	IncludeAll   bool         // include all content without readability filtering
	OutputFormat OutputFormat // output format (txt/json/yaml)
	Limits       fetch.Limits // size and time limits per source; zero fields take defaults
	Quiet        bool         // suppress warnings and the spinner
	Debug        bool         // enable debug-level logging
	Stderr       io.Writer    // warnings and spinner; nil means os.Stderr
}

// Run executes one voca operation with the given configuration.
//
// Processing Pipeline:
// 1. Resolve the operation and bind its arguments
// 2. Gather the subject from Input or Sources (gatherInput)
// 3. Apply the operation
// 4. Render the result in the requested output format
//
// ctx allows for cancellation of source fetching.
func Run(ctx context.Context, cfg Config) (string, error) {
	op, err := Lookup(cfg.Operation)
	if err != nil {
		return "", err
	}
	args, err := op.Bind(cfg.Args)
	if err != nil {
		return "", err
	}

	subject, err := gatherInput(ctx, cfg)
	if err != nil {
		return "", err
	}
	slog.Debug("Applying operation", "operation", op.Name, "args", args, "subjectBytes", len(subject))

	result, err := op.Apply(ctx, subject, args)
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", op.Name, err)
	}

	return render(op.Name, result, cfg.OutputFormat)
}

// gatherInput returns the literal input or the combined text of all sources,
// separated by a blank line. Failing sources are skipped with a warning.
func gatherInput(ctx context.Context, cfg Config) (string, error) {
	if cfg.Input != nil {
		return *cfg.Input, nil
	}
	if len(cfg.Sources) == 0 {
		return "", fmt.Errorf("%w: no sources provided", ErrNoInput)
	}

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var combined strings.Builder
	read := 0
	for _, source := range cfg.Sources {
		var content string
		err := trackSource(ctx, stderr, cfg.Quiet, source, func() error {
			var err error
			content, err = processSource(ctx, source, cfg)
			return err
		})
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			if !cfg.Quiet {
				fmt.Fprintf(stderr, "Warning: failed to process source %q: %v\n", source, err)
			}
			continue
		}

		if read > 0 {
			combined.WriteString("\n\n")
		}
		combined.WriteString(content)
		read++
	}

	if read == 0 {
		return "", fmt.Errorf("%w: no content read from any source", ErrNoInput)
	}
	return combined.String(), nil
}

// trackSource shows a spinner while a remote source is fetched.
func trackSource(ctx context.Context, w io.Writer, quiet bool, source string, fn func() error) error {
	if !fetch.IsURL(source) {
		return fn()
	}
	return spinner.Track(ctx, w, quiet, "Fetching "+source, fn)
}

// processSource reads a single source and, when an HTML mode is set,
// extracts its text. Operations work on the whole subject, so the source is
// read completely; cfg.Limits bounds how much that can be.
func processSource(ctx context.Context, source string, cfg Config) (string, error) {
	reader, err := fetch.Open(ctx, source, cfg.Limits)
	if err != nil {
		return "", fmt.Errorf("failed to fetch content: %w", err)
	}
	defer reader.Close()

	if cfg.HTML == HTMLNone {
		data, err := io.ReadAll(reader)
		if err != nil {
			return "", fmt.Errorf("failed to read content: %w", err)
		}
		return string(data), nil
	}

	// parse source URL for context (if it's a URL)
	var baseURL *url.URL
	if fetch.IsURL(source) {
		baseURL, _ = url.Parse(source) // ignore parse errors, will use nil
	}

	var text string
	switch cfg.HTML {
	case HTMLMarkdown:
		text, err = extract.ToMarkdown(reader, cfg.Selector, cfg.IncludeAll, baseURL)
	default:
		text, err = extract.ToText(reader, cfg.Selector, cfg.IncludeAll, baseURL)
	}
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no content extracted")
	}
	return text, nil
}
