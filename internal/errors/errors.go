// Package apperrors provides domain-specific error types for bracecheck.
// These error types include contextual information to aid debugging and error reporting.
package apperrors

import "fmt"

// ConfigurationError represents configuration-related errors.
// It includes the configuration file path and specific key that caused the error.
type ConfigurationError struct {
	ConfigPath string // Path to the configuration file
	Key        string // Configuration key that caused the error
	Err        error  // Underlying error
}

// Error implements the error interface for ConfigurationError.
func (e *ConfigurationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("configuration error in %s (key: %s): %v", e.ConfigPath, e.Key, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %v", e.ConfigPath, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// LoadError represents a failure to load the file to be checked.
// A LoadError aborts the run before any scanning starts.
type LoadError struct {
	Path string // Path of the file being loaded
	Op   string // Step that failed: "open", "read" or "decode"
	Err  error  // Underlying error
}

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("load %s failed for %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *LoadError) Unwrap() error {
	return e.Err
}
