package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/wyrelang/wyre"
)

// InitCmd represents the init command
type InitCmd struct {
	Name string `arg:"" help:"Program name (defaults to the current directory name)" optional:""`
}

func (cmd *InitCmd) Run(ctx *Context) error {
	name := cmd.Name
	if name == "" {
		pwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}

		name = filepath.Base(pwd)
	}

	if !wyre.ValidProgramName(name) {
		return fmt.Errorf("%w: '%s' must start with a letter and contain only letters, digits and underscores", ErrInvalidProgramName, name)
	}

	if fileExists(wyre.ManifestFile) {
		return fmt.Errorf("%w: %s already exists", ErrAlreadyInitialized, wyre.ManifestFile)
	}

	if ctx.Verbose {
		color.Blue("Initializing wyre program %s", name)
	}

	err := createDir("src")
	if err != nil {
		return fmt.Errorf("failed to create directory src: %w", err)
	}

	if ctx.Verbose {
		color.Green("Created directory: src")
	}

	err = createSampleConfig()
	if err != nil {
		return fmt.Errorf("failed to create sample configuration: %w", err)
	}

	err = createManifest(name)
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}

	err = createSampleProgram()
	if err != nil {
		return fmt.Errorf("failed to create sample program: %w", err)
	}

	if !ctx.Quiet {
		color.Green("Program %s initialized successfully", name)
		fmt.Println("\nNext steps:")
		fmt.Println("1. Edit " + wyre.DefaultConfigFile + " to configure diagnostics and output")
		fmt.Println("2. Write your circuits in the src/ directory")
		fmt.Println("3. Run 'wyre check' to verify them")
	}

	return nil
}

func createDir(path string) error {
	return os.MkdirAll(path, 0755)
}

func createSampleConfig() error {
	configContent := `# Compiler settings
compiler:
  source_dir: "./src"
  extension: ".wy"
  import_paths: []

# Diagnostic settings
diagnostics:
  max_errors: 20
  color: "auto"  # auto, always, never

# Output settings
output:
  default_format: "text"  # text, json, yaml
`

	return writeFile(wyre.DefaultConfigFile, configContent)
}

func createManifest(name string) error {
	manifestContent := fmt.Sprintf(`[program]
name = "%s"
version = "0.1.0"
description = ""
entry = "src/main.wy"
`, name)

	return writeFile(wyre.ManifestFile, manifestContent)
}

func createSampleProgram() error {
	sampleProgram := `function main(a: u32, b: u32) -> u32 {
    return a + b;
}
`

	return writeFile(filepath.Join("src", "main.wy"), sampleProgram)
}

// writeFile writes content to a file
func writeFile(path, content string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(content), 0644)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
