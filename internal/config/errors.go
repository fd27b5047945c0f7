package config

import "fmt"

// PermissionError represents a config file that exists but cannot be read.
type PermissionError struct {
	Path string
	Fix  string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied (cannot read config): %s\n💡 Fix: %s", e.Path, e.Fix)
}

// ConfigNotFoundError represents an explicitly requested config file that is missing.
type ConfigNotFoundError struct {
	Path string
	Hint string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s\n\n💡 %s", e.Path, e.Hint)
}

// InvalidConfigError represents a malformed or inconsistent config.
type InvalidConfigError struct {
	Path    string
	Message string
	Hint    string
}

func (e *InvalidConfigError) Error() string {
	msg := "invalid config"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	msg += "\n"
	if e.Message != "" {
		msg += e.Message + "\n"
	}
	if e.Hint != "" {
		msg += "💡 " + e.Hint
	}
	return msg
}
