package wyre

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

// ManifestFile is the manifest file name at the root of every program.
const ManifestFile = "program.toml"

// Manifest describes one wyre program
type Manifest struct {
	Program ProgramManifest `toml:"program"`
}

// ProgramManifest represents the [program] table of the manifest
type ProgramManifest struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description"`

	// Entry is the entry source file, relative to the manifest directory.
	Entry string `toml:"entry"`
}

// LoadManifest loads and validates the manifest at the specified path
func LoadManifest(manifestPath string) (*Manifest, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest Manifest

	err = toml.Unmarshal(data, &manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := validateManifest(&manifest); err != nil {
		return nil, err
	}

	applyManifestDefaults(&manifest)

	return &manifest, nil
}

// FindManifest walks from dir upward to the filesystem root and returns the
// path of the first manifest found.
func FindManifest(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory: %w", err)
	}

	for {
		candidate := filepath.Join(current, ManifestFile)
		if fileExists(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w: searched from %s upward", ErrManifestNotFound, dir)
		}

		current = parent
	}
}

var programNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// ValidProgramName reports whether name can be used as a program name: a
// letter followed by letters, digits and underscores.
func ValidProgramName(name string) bool {
	return programNameRe.MatchString(name)
}

// validateManifest validates the manifest for common errors
func validateManifest(manifest *Manifest) error {
	if manifest.Program.Name == "" {
		return fmt.Errorf("%w: program.name is required", ErrManifestValidation)
	}

	if !ValidProgramName(manifest.Program.Name) {
		return fmt.Errorf("%w: program.name '%s' is invalid: must start with a letter and contain only letters, digits and underscores", ErrManifestValidation, manifest.Program.Name)
	}

	if manifest.Program.Version != "" {
		versionRe := regexp.MustCompile(`^\d+\.\d+\.\d+$`)
		if !versionRe.MatchString(manifest.Program.Version) {
			return fmt.Errorf("%w: program.version '%s' is invalid: must be of the form major.minor.patch", ErrManifestValidation, manifest.Program.Version)
		}
	}

	return nil
}

// applyManifestDefaults applies default values to missing manifest fields
func applyManifestDefaults(manifest *Manifest) {
	if manifest.Program.Version == "" {
		manifest.Program.Version = "0.1.0"
	}

	if manifest.Program.Entry == "" {
		manifest.Program.Entry = filepath.Join("src", "main.wy")
	}
}

// EntryPath returns the absolute path of the entry source file for a
// manifest loaded from manifestPath.
func (m *Manifest) EntryPath(manifestPath string) string {
	return filepath.Join(filepath.Dir(manifestPath), m.Program.Entry)
}
