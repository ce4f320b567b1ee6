// Package cli implements the wyre command line commands.
package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/wyrelang/wyre"
)

// Error definitions
var (
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrParseFailed         = errors.New("parse failed")
	ErrTokenizeFailed      = errors.New("tokenize failed")
	ErrCheckFailed         = errors.New("check failed")
	ErrAlreadyInitialized  = errors.New("program already initialized")
	ErrInvalidProgramName  = errors.New("invalid program name")
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*wyre.Config, error) {
	return wyre.LoadConfig(configPath)
}

// applyColorMode maps the configured color mode onto the color package.
// Auto keeps its terminal detection untouched.
func applyColorMode(mode wyre.ColorMode) {
	switch mode {
	case wyre.ColorAlways:
		color.NoColor = false
	case wyre.ColorNever:
		color.NoColor = true
	}
}

// resolveFormat picks the explicit format when given, the configured
// default otherwise.
func resolveFormat(explicit string, config *wyre.Config) (wyre.OutputFormat, error) {
	if explicit == "" {
		return config.Output.DefaultFormat, nil
	}

	format := wyre.OutputFormat(explicit)
	switch format {
	case wyre.FormatText, wyre.FormatJSON, wyre.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s (must be one of text, json, yaml)", ErrInvalidOutputFormat, explicit)
	}
}
