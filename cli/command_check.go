package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/wyrelang/wyre/diag"
	"github.com/wyrelang/wyre/lexer"
	"github.com/wyrelang/wyre/parser"
	"github.com/wyrelang/wyre/token"
)

// CheckCmd represents the check command
type CheckCmd struct {
	Files []string `arg:"" help:"Source files to check (defaults to the configured source directory)" optional:"" type:"path"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	applyColorMode(config.Diagnostics.Color)

	files, err := config.CollectSources(cmd.Files)
	if err != nil {
		return err
	}

	renderer := &Renderer{MaxErrors: config.Diagnostics.MaxErrors}
	total := 0

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		count := checkFile(renderer, file, string(src))
		total += count

		if count == 0 && ctx.Verbose {
			color.Green("%s: ok", file)
		}
	}

	if total > 0 {
		return fmt.Errorf("%w: %d errors in %d files", ErrCheckFailed, total, len(files))
	}

	if !ctx.Quiet {
		color.Green("Checked %d files, no errors", len(files))
	}

	return nil
}

// checkFile reports every diagnostic of one file to stderr and returns
// the diagnostic count. Scan errors do not stop the parse: the surviving
// tokens are parsed anyway so a bad character does not hide the rest of
// the file.
func checkFile(renderer *Renderer, filename, src string) int {
	var (
		tokens    []token.Token
		scanCount int
	)

	label := color.New(color.FgRed, color.Bold).Sprint("error")

	for tok, err := range lexer.New(src).Tokens() {
		if err != nil {
			scanCount++

			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", filename, label, err)

			continue
		}

		if tok.Type == token.EOF {
			break
		}

		tokens = append(tokens, tok)
	}

	handler := diag.NewHandler()

	_, err := parser.ParseTokens(tokens, handler)
	if err != nil {
		// The fatal error joins the recovered ones for rendering.
		handler.Emit(err)
	}

	renderer.Render(os.Stderr, filename, src, handler.Diagnostics())

	return scanCount + handler.Len()
}
