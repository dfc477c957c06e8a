package app

import (
	"fmt"
	"os"
	"strings"

	"pkgdetect/internal/types"
)

// defaultsHint pairs a flag name with a manifest defaults key for hint
// messages.
type defaultsHint struct {
	FlagName    string
	DefaultsKey string
}

// checkDetectDefaultsHints returns hints for detect flags that could
// be replaced by manifest defaults.  A hint is generated when the user
// explicitly provided a value that matches a non-empty default.
func checkDetectDefaultsHints(req DetectRequest, defaults types.ManifestDefaults) []string {
	checks := []struct {
		hint       defaultsHint
		provided   bool
		hasDefault bool
	}{
		{
			hint:       defaultsHint{"--root", "defaults.roots"},
			provided:   len(req.Roots) > 0,
			hasDefault: len(defaults.Roots) > 0,
		},
		{
			hint:       defaultsHint{"--cache", "defaults.cache"},
			provided:   strings.TrimSpace(req.CachePath) != "",
			hasDefault: defaults.Cache != "",
		},
	}

	var hints []string
	for _, c := range checks {
		if c.provided && c.hasDefault {
			hints = append(hints, fmt.Sprintf(
				"hint: %s is also set in the manifest (%s); you can omit the flag",
				c.hint.FlagName, c.hint.DefaultsKey,
			))
		}
	}
	return hints
}

// emitHints writes hint messages to stderr.
func emitHints(hints []string) {
	for _, h := range hints {
		fmt.Fprintln(os.Stderr, h)
	}
}
