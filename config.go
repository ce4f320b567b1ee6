package wyre

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// DefaultConfigFile is the configuration file name looked up when none is
// given on the command line.
const DefaultConfigFile = "wyre.yaml"

// Config represents the wyre toolchain configuration
type Config struct {
	Compiler    CompilerConfig    `yaml:"compiler"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
	Output      OutputConfig      `yaml:"output"`
}

// CompilerConfig represents source discovery settings
type CompilerConfig struct {
	// SourceDir is the directory scanned for programs when no files are
	// named on the command line.
	SourceDir string `yaml:"source_dir"`

	// Extension is the source file extension, including the leading dot.
	Extension string `yaml:"extension"`

	// ImportPaths are additional directories searched for imported programs.
	ImportPaths []string `yaml:"import_paths"`
}

// DiagnosticsConfig represents diagnostic reporting settings
type DiagnosticsConfig struct {
	// MaxErrors caps the number of diagnostics printed per run. Leaving it
	// unset selects the default of 20.
	MaxErrors int `yaml:"max_errors"`

	Color ColorMode `yaml:"color"`
}

// OutputConfig represents output rendering settings
type OutputConfig struct {
	DefaultFormat OutputFormat `yaml:"default_format"`
}

// ColorMode controls when diagnostic output is colorized
type ColorMode string

const (
	// ColorAuto colorizes when stdout is a terminal
	ColorAuto ColorMode = "auto"

	// ColorAlways forces colorized output
	ColorAlways ColorMode = "always"

	// ColorNever disables colorized output
	ColorNever ColorMode = "never"
)

// OutputFormat selects the rendering of structured command output
type OutputFormat string

const (
	// FormatText renders human-readable text
	FormatText OutputFormat = "text"

	// FormatJSON renders JSON
	FormatJSON OutputFormat = "json"

	// FormatYAML renders YAML
	FormatYAML OutputFormat = "yaml"
)

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if the file doesn't exist
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := DefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	applyDefaults(&config)

	// Expand environment variables
	expandConfigEnvVars(&config)

	return &config, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Compiler: CompilerConfig{
			SourceDir:   "./src",
			Extension:   ".wy",
			ImportPaths: []string{},
		},
		Diagnostics: DiagnosticsConfig{
			MaxErrors: 20,
			Color:     ColorAuto,
		},
		Output: OutputConfig{
			DefaultFormat: FormatText,
		},
	}
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	if config.Compiler.Extension != "" && config.Compiler.Extension[0] != '.' {
		return fmt.Errorf("%w: compiler.extension '%s' must start with a dot", ErrConfigValidation, config.Compiler.Extension)
	}

	if config.Diagnostics.MaxErrors < 0 {
		return fmt.Errorf("%w: diagnostics.max_errors must be non-negative, got %d", ErrConfigValidation, config.Diagnostics.MaxErrors)
	}

	if config.Diagnostics.Color != "" {
		validModes := map[ColorMode]bool{
			ColorAuto:   true,
			ColorAlways: true,
			ColorNever:  true,
		}
		if !validModes[config.Diagnostics.Color] {
			return fmt.Errorf("%w: diagnostics.color '%s' is invalid: must be one of auto, always, never", ErrConfigValidation, config.Diagnostics.Color)
		}
	}

	if config.Output.DefaultFormat != "" {
		validFormats := map[OutputFormat]bool{
			FormatText: true,
			FormatJSON: true,
			FormatYAML: true,
		}
		if !validFormats[config.Output.DefaultFormat] {
			return fmt.Errorf("%w: output.default_format '%s' is invalid: must be one of text, json, yaml", ErrConfigValidation, config.Output.DefaultFormat)
		}
	}

	return nil
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	if config.Compiler.SourceDir == "" {
		config.Compiler.SourceDir = "./src"
	}

	if config.Compiler.Extension == "" {
		config.Compiler.Extension = ".wy"
	}

	if config.Diagnostics.MaxErrors == 0 {
		config.Diagnostics.MaxErrors = 20
	}

	if config.Diagnostics.Color == "" {
		config.Diagnostics.Color = ColorAuto
	}

	if config.Output.DefaultFormat == "" {
		config.Output.DefaultFormat = FormatText
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	// Pattern for ${VAR} format
	re1 := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re1.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		return os.Getenv(varName)
	})

	// Pattern for $VAR format (word boundaries)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		return os.Getenv(varName)
	})

	return s
}

// expandConfigEnvVars expands environment variables in path-valued fields
func expandConfigEnvVars(config *Config) {
	config.Compiler.SourceDir = expandEnvVars(config.Compiler.SourceDir)

	for i, path := range config.Compiler.ImportPaths {
		config.Compiler.ImportPaths[i] = expandEnvVars(path)
	}
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// SourceGlob returns the glob pattern matching every source file directly
// under the configured source directory.
func (c *Config) SourceGlob() string {
	return filepath.Join(c.Compiler.SourceDir, "*"+c.Compiler.Extension)
}

// IsSourceFile reports whether path carries the configured source extension.
func (c *Config) IsSourceFile(path string) bool {
	return filepath.Ext(path) == c.Compiler.Extension
}

// CollectSources returns the source files named by paths, or every source
// file directly under the configured source directory when paths is empty.
func (c *Config) CollectSources(paths []string) ([]string, error) {
	if len(paths) == 0 {
		matches, err := filepath.Glob(c.SourceGlob())
		if err != nil {
			return nil, fmt.Errorf("failed to scan source directory: %w", err)
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoSourceFiles, c.SourceGlob())
		}

		return matches, nil
	}

	for _, path := range paths {
		if !c.IsSourceFile(path) {
			return nil, fmt.Errorf("%w: %s (expected extension %s)", ErrNotSourceFile, path, c.Compiler.Extension)
		}
	}

	return paths, nil
}
