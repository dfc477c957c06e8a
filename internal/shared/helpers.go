// Package shared provides common utility functions used across multiple
// packages in the pkgdetect codebase.
package shared

import (
	"fmt"
	"strings"
)

// NormalizePrefix upper-cases a package prefix and replaces characters
// that are not valid in cache variable names with underscores.
func NormalizePrefix(value string) string {
	upper := strings.ToUpper(strings.TrimSpace(value))
	var b strings.Builder
	for _, r := range upper {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// JoinList renders a path list in cache-file form.
func JoinList(values []string) string {
	return strings.Join(values, ";")
}

// SplitList parses a cache-file path list, dropping empty segments.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ";") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
