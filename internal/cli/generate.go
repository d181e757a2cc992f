package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/curadolabs/labelgen/pkg/errors"
	"github.com/curadolabs/labelgen/pkg/label"
	"github.com/curadolabs/labelgen/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output  string   // output directory (or base path without extension)
	formats []string // output formats: "html", "pdf", "png"
	timeout time.Duration
}

// generateCommand creates the generate command for rendering label files.
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{timeout: pipeline.DefaultRenderTimeout}

	cmd := &cobra.Command{
		Use:   "generate [request.json]",
		Short: "Render a label request into HTML, PDF, and PNG files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: request file name)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html, pdf, png (comma-separated, default all)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "per-format render timeout")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, path string, opts *generateOpts) error {
	req, err := readRequest(path)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, c.Logger)
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Request: req,
		Formats: opts.formats,
		Timeout: opts.timeout,
		Logger:  c.Logger,
	})
	if err != nil {
		if errors.IsValidation(err) {
			if field := errors.Field(err); field != "" {
				printError("invalid request (%s): %s", field, errors.UserMessage(err))
				return err
			}
			printError("invalid request: %s", errors.UserMessage(err))
			return err
		}
		return err
	}

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(path, filepath.Ext(path))
	}

	printSuccess("%s · %s", result.Model.RecipeTitle, result.Model.LabelType)
	printDetail("%d rows", result.Stats.RowCount)
	for _, format := range opts.formats {
		data, ok := result.Artifacts[format]
		if !ok {
			printWarning("%s failed: %s", format, errors.UserMessage(result.Errors[format]))
			continue
		}
		out := base + "." + format
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		printFile(out)
	}
	return nil
}

// readRequest loads a label request from a JSON file. Unknown top-level
// fields are rejected so typos surface instead of silently defaulting.
func readRequest(path string) (*label.Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open request file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	var req label.Request
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &req, nil
}
