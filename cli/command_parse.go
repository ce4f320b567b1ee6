package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/wyrelang/wyre"
	"github.com/wyrelang/wyre/ast"
	"github.com/wyrelang/wyre/parser"
)

// ParseCmd represents the parse command
type ParseCmd struct {
	Files  []string `arg:"" help:"Source files to parse (defaults to the configured source directory)" optional:"" type:"path"`
	Format string   `short:"f" help:"Output format (text, json, yaml)"`
	Output string   `short:"o" help:"Output file (defaults to stdout)" type:"path"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	applyColorMode(config.Diagnostics.Color)

	format, err := resolveFormat(cmd.Format, config)
	if err != nil {
		return err
	}

	files, err := config.CollectSources(cmd.Files)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)

	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		out = f
	}

	renderer := &Renderer{MaxErrors: config.Diagnostics.MaxErrors}
	failed := 0

	for _, file := range files {
		if ctx.Verbose {
			color.Blue("Parsing %s", file)
		}

		src, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		tree, err := parser.Parse(string(src))
		if err != nil {
			failed++

			renderer.RenderError(os.Stderr, file, string(src), err)

			continue
		}

		if err := writeTree(out, file, tree, format); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrParseFailed, failed, len(files))
	}

	return nil
}

// writeTree serializes one parsed file in the requested format.
func writeTree(w io.Writer, filename string, file *ast.File, format wyre.OutputFormat) error {
	switch format {
	case wyre.FormatJSON:
		data, err := json.MarshalIndent(DumpFile(file), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode syntax tree: %w", err)
		}

		fmt.Fprintln(w, string(data))
	case wyre.FormatYAML:
		data, err := yaml.Marshal(DumpFile(file))
		if err != nil {
			return fmt.Errorf("failed to encode syntax tree: %w", err)
		}

		fmt.Fprint(w, string(data))
	default:
		fmt.Fprintf(w, "%s: %d declarations\n", filename, len(file.Declarations))

		for _, line := range SummarizeFile(file) {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	return nil
}
