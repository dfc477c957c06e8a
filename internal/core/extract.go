package core

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog/log"
)

// ExtractVersion reads relHeader under the first include directory
// that holds it and returns the quoted value of the given #define.
// Every failure is soft: a missing file or an unmatched macro logs an
// author-facing warning (unless quiet) and returns ok=false, never an
// error. Detection must not abort because a version could not be read.
func ExtractVersion(includeDirs []string, relHeader string, defineName string, quiet bool) (string, bool) {
	// No include directory known yet means there is nothing to read;
	// that precondition is not an authoring mistake, so no warning.
	if len(includeDirs) == 0 {
		return "", false
	}

	var path string
	for _, dir := range includeDirs {
		candidate := filepath.Join(dir, relHeader)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		if !quiet {
			log.Warn().
				Str("header", relHeader).
				Msg("version header not found under any include directory")
		}
		return "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !quiet {
			log.Warn().Str("header", path).Err(err).Msg("version header unreadable")
		}
		return "", false
	}

	version, ok := matchVersionDefine(data, defineName)
	if !ok && !quiet {
		log.Warn().
			Str("header", path).
			Str("define", defineName).
			Msg("version define not found in header")
	}
	return version, ok
}

// matchVersionDefine applies a single-capture search for
// `#define NAME "value"`, tolerating whitespace between the hash and
// the tokens. The capture stops at the closing quote or line break so
// adjacent macros never merge.
func matchVersionDefine(data []byte, defineName string) (string, bool) {
	pattern := fmt.Sprintf(`(?m)^\s*#\s*define\s+%s\s+"([^"\r\n]*)"`, regexp.QuoteMeta(defineName))
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", false
	}
	match := re.FindSubmatch(data)
	if match == nil {
		return "", false
	}
	return string(match[1]), true
}
