package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/wyrelang/wyre"
	"github.com/wyrelang/wyre/lexer"
	"github.com/wyrelang/wyre/token"
)

// TokenizeCmd represents the tokenize command
type TokenizeCmd struct {
	Files           []string `arg:"" help:"Source files to tokenize (defaults to the configured source directory)" optional:"" type:"path"`
	Format          string   `short:"f" help:"Output format (text, json, yaml)"`
	IncludeComments bool     `help:"Include comment tokens in the stream"`
}

// Run executes the tokenize command
func (cmd *TokenizeCmd) Run(ctx *Context) error {
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

	failed := 0

	for _, file := range files {
		if ctx.Verbose {
			color.Blue("Tokenizing %s", file)
		}

		src, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		options := lexer.Options{SkipComments: !cmd.IncludeComments}

		// The scanner recovers from bad characters, so the surviving
		// tokens are still printed before the error is reported.
		tokens, scanErr := lexer.New(string(src), options).Scan()

		if err := writeTokens(os.Stdout, tokens, format); err != nil {
			return err
		}

		if scanErr != nil {
			failed++

			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", file, color.New(color.FgRed, color.Bold).Sprint("error"), scanErr)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrTokenizeFailed, failed, len(files))
	}

	return nil
}

// writeTokens serializes one token stream in the requested format.
func writeTokens(w io.Writer, tokens []token.Token, format wyre.OutputFormat) error {
	switch format {
	case wyre.FormatJSON:
		data, err := json.MarshalIndent(DumpTokens(tokens), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode tokens: %w", err)
		}

		fmt.Fprintln(w, string(data))
	case wyre.FormatYAML:
		data, err := yaml.Marshal(DumpTokens(tokens))
		if err != nil {
			return fmt.Errorf("failed to encode tokens: %w", err)
		}

		fmt.Fprint(w, string(data))
	default:
		for _, tok := range tokens {
			fmt.Fprintf(w, "%-12s %-14s %q\n", tok.Span, tok.Type, tok.Value)
		}
	}

	return nil
}
