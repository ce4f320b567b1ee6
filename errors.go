package wyre

import "errors"

// Common errors used throughout the wyre package
var (
	// Workspace errors

	// ErrNotSourceFile indicates a path without the configured source extension.
	ErrNotSourceFile = errors.New("not a wyre source file")
	// ErrNoSourceFiles indicates a source directory with nothing to compile.
	ErrNoSourceFiles = errors.New("no source files found")

	// Manifest errors

	// ErrManifestNotFound indicates no program manifest in the directory or any parent.
	ErrManifestNotFound = errors.New("program manifest not found")
	// ErrManifestValidation is returned when manifest validation fails.
	ErrManifestValidation = errors.New("manifest validation failed")
)
