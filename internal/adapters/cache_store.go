package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgdetect/internal/ports"
	"pkgdetect/internal/shared"
	"pkgdetect/internal/types"
)

const (
	entryTypeBool     = "BOOL"
	entryTypePath     = "PATH"
	entryTypeFilepath = "FILEPATH"
	entryTypeString   = "STRING"

	advancedSuffix = "-ADVANCED"
)

type cacheValue struct {
	Type  string
	Value string
}

// CacheStoreAdapter persists detection state as a flat
// `NAME:TYPE=VALUE` cache file, one variable per line. Advanced
// (hidden) flags live in the same file as `NAME-ADVANCED:INTERNAL=1`
// entries so the whole run state survives in a single artifact.
type CacheStoreAdapter struct {
	path     string
	entries  map[string]cacheValue
	advanced map[string]bool
}

// NewCacheStoreAdapter loads an existing cache file if one is present;
// a missing file starts an empty store.
func NewCacheStoreAdapter(path string) (*CacheStoreAdapter, error) {
	store := &CacheStoreAdapter{
		path:     path,
		entries:  map[string]cacheValue{},
		advanced: map[string]bool{},
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read detection cache").
			WithCause(err)
	}
	store.parse(string(data))
	return store, nil
}

func (s *CacheStoreAdapter) parse(content string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		head, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		name, entryType, ok := strings.Cut(head, ":")
		if !ok {
			continue
		}
		if entryType == "INTERNAL" && strings.HasSuffix(name, advancedSuffix) {
			s.advanced[strings.TrimSuffix(name, advancedSuffix)] = value == "1"
			continue
		}
		s.entries[name] = cacheValue{Type: entryType, Value: value}
	}
}

func (s *CacheStoreAdapter) PublishItems(items []types.ProbeItem) error {
	for _, item := range items {
		entryType := entryTypePath
		if item.Role == types.ItemRoleLibrary {
			entryType = entryTypeFilepath
		}
		s.entries[item.Name] = cacheValue{Type: entryType, Value: item.Value}
	}
	return nil
}

func (s *CacheStoreAdapter) PublishOutcome(outcome types.ResolutionOutcome) error {
	prefix := shared.NormalizePrefix(outcome.Prefix)
	found := "FALSE"
	if outcome.Found() {
		found = "TRUE"
	}
	s.entries[prefix+"_FOUND"] = cacheValue{Type: entryTypeBool, Value: found}
	s.entries[prefix+"_INCLUDE_DIRS"] = cacheValue{Type: entryTypePath, Value: shared.JoinList(outcome.IncludeDirs)}
	s.entries[prefix+"_LIBRARIES"] = cacheValue{Type: entryTypeFilepath, Value: shared.JoinList(outcome.LibraryDirs)}
	if outcome.Version != "" {
		s.entries[prefix+"_VERSION"] = cacheValue{Type: entryTypeString, Value: outcome.Version}
	}
	return nil
}

func (s *CacheStoreAdapter) PublishVersion(prefix string, version string) error {
	s.entries[shared.NormalizePrefix(prefix)+"_VERSION"] = cacheValue{Type: entryTypeString, Value: version}
	return nil
}

func (s *CacheStoreAdapter) Found(prefix string) bool {
	return s.entries[shared.NormalizePrefix(prefix)+"_FOUND"].Value == "TRUE"
}

func (s *CacheStoreAdapter) Version(prefix string) string {
	return s.entries[shared.NormalizePrefix(prefix)+"_VERSION"].Value
}

func (s *CacheStoreAdapter) IncludeDirs(prefix string) []string {
	return shared.SplitList(s.entries[shared.NormalizePrefix(prefix)+"_INCLUDE_DIRS"].Value)
}

func (s *CacheStoreAdapter) LibraryDirs(prefix string) []string {
	return shared.SplitList(s.entries[shared.NormalizePrefix(prefix)+"_LIBRARIES"].Value)
}

// Entries returns every variable belonging to the package, name-ordered,
// for inspection output. Matching requires the underscore separator so
// inspecting FOO never lists FOOBAR_* variables.
func (s *CacheStoreAdapter) Entries(prefix string) []ports.CacheEntry {
	prefix = shared.NormalizePrefix(prefix) + "_"
	var out []ports.CacheEntry
	for name, value := range s.entries {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		out = append(out, ports.CacheEntry{
			Name:     name,
			Type:     value.Type,
			Value:    value.Value,
			Advanced: s.advanced[name],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *CacheStoreAdapter) Apply(directives []types.VisibilityDirective) error {
	for _, directive := range directives {
		s.advanced[directive.Name] = !directive.Visible
	}
	return nil
}

func (s *CacheStoreAdapter) Save() error {
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	lines = append(lines, "# pkgdetect cache: edit values or delete lines to force a fresh probe")
	for _, name := range names {
		value := s.entries[name]
		lines = append(lines, fmt.Sprintf("%s:%s=%s", name, value.Type, value.Value))
		if s.advanced[name] {
			lines = append(lines, fmt.Sprintf("%s%s:INTERNAL=1", name, advancedSuffix))
		}
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create cache directory").
				WithCause(err)
		}
	}
	return os.WriteFile(s.path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}
