package wyre

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ManifestFile)
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)

	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[program]
name = "token"
version = "1.2.0"
description = "A token program"
entry = "src/token.wy"
`)

	manifest, err := LoadManifest(path)
	assert.NoError(t, err)

	assert.Equal(t, "token", manifest.Program.Name)
	assert.Equal(t, "1.2.0", manifest.Program.Version)
	assert.Equal(t, "A token program", manifest.Program.Description)
	assert.Equal(t, "src/token.wy", manifest.Program.Entry)
}

func TestLoadManifest_Defaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[program]
name = "token"
`)

	manifest, err := LoadManifest(path)
	assert.NoError(t, err)

	assert.Equal(t, "0.1.0", manifest.Program.Version)
	assert.Equal(t, filepath.Join("src", "main.wy"), manifest.Program.Entry)
}

func TestLoadManifest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "[program]\nversion = \"1.0.0\"\n"},
		{"name starts with digit", "[program]\nname = \"0token\"\n"},
		{"name with dash", "[program]\nname = \"my-token\"\n"},
		{"bad version", "[program]\nname = \"token\"\nversion = \"1.0\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)

			_, err := LoadManifest(path)
			assert.IsError(t, err, ErrManifestValidation)
		})
	}
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), ManifestFile))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestLoadManifest_BadTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[program\nname = token")

	_, err := LoadManifest(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}

func TestFindManifest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "lib")
	err := os.MkdirAll(nested, 0755)
	assert.NoError(t, err)

	path := writeManifest(t, root, "[program]\nname = \"token\"\n")

	// Found from the manifest directory itself and from nested directories.
	found, err := FindManifest(root)
	assert.NoError(t, err)
	assert.Equal(t, path, found)

	found, err = FindManifest(nested)
	assert.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindManifest_NotFound(t *testing.T) {
	_, err := FindManifest(t.TempDir())
	assert.IsError(t, err, ErrManifestNotFound)
}

func TestManifest_EntryPath(t *testing.T) {
	manifest := &Manifest{
		Program: ProgramManifest{Entry: filepath.Join("src", "main.wy")},
	}

	path := manifest.EntryPath(filepath.Join("work", "token", "program.toml"))
	assert.Equal(t, filepath.Join("work", "token", "src", "main.wy"), path)
}
