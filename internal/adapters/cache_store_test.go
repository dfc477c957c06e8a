package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgdetect/internal/types"
)

func TestCacheStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detect.cache")

	store, err := NewCacheStoreAdapter(path)
	require.NoError(t, err)

	require.NoError(t, store.PublishItems([]types.ProbeItem{
		{Name: "FOO_INCLUDE_DIR", Role: types.ItemRoleInclude, Value: "/usr/include/foo"},
		{Name: "FOO_LIBRARY", Role: types.ItemRoleLibrary, Value: "/usr/lib/libfoo.so"},
	}))
	require.NoError(t, store.PublishOutcome(types.ResolutionOutcome{
		Prefix:      "FOO",
		State:       types.OutcomeFound,
		IncludeDirs: []string{"/usr/include/foo"},
		LibraryDirs: []string{"/usr/lib/libfoo.so"},
		Version:     "1.2.3",
	}))
	require.NoError(t, store.Apply([]types.VisibilityDirective{
		{Name: "FOO_INCLUDE_DIR", Visible: false},
		{Name: "FOO_LIBRARY", Visible: false},
	}))
	require.NoError(t, store.Save())

	reloaded, err := NewCacheStoreAdapter(path)
	require.NoError(t, err)
	assert.True(t, reloaded.Found("FOO"))
	assert.Equal(t, "1.2.3", reloaded.Version("FOO"))
	assert.Equal(t, []string{"/usr/include/foo"}, reloaded.IncludeDirs("FOO"))
	assert.Equal(t, []string{"/usr/lib/libfoo.so"}, reloaded.LibraryDirs("FOO"))

	entries := reloaded.Entries("FOO")
	require.NotEmpty(t, entries)
	byName := map[string]bool{}
	for _, entry := range entries {
		byName[entry.Name] = entry.Advanced
	}
	assert.True(t, byName["FOO_INCLUDE_DIR"], "hidden item should stay advanced after reload")
	assert.False(t, byName["FOO_FOUND"])
}

func TestCacheStoreMissingFileStartsEmpty(t *testing.T) {
	store, err := NewCacheStoreAdapter(filepath.Join(t.TempDir(), "none.cache"))
	require.NoError(t, err)
	assert.False(t, store.Found("FOO"))
	assert.Empty(t, store.Entries("FOO"))
}

func TestCacheStoreNotFoundOutcome(t *testing.T) {
	store, err := NewCacheStoreAdapter(filepath.Join(t.TempDir(), "detect.cache"))
	require.NoError(t, err)

	require.NoError(t, store.PublishOutcome(types.ResolutionOutcome{
		Prefix: "BAR",
		State:  types.OutcomeNotFoundOptional,
	}))
	assert.False(t, store.Found("BAR"))
	assert.Empty(t, store.Version("BAR"))
}

func TestCacheStoreRevealClearsAdvanced(t *testing.T) {
	store, err := NewCacheStoreAdapter(filepath.Join(t.TempDir(), "detect.cache"))
	require.NoError(t, err)

	require.NoError(t, store.PublishItems([]types.ProbeItem{
		{Name: "BAR_LIBRARY", Role: types.ItemRoleLibrary, Value: types.NotFound},
	}))
	require.NoError(t, store.Apply([]types.VisibilityDirective{{Name: "BAR_LIBRARY", Visible: false}}))
	require.NoError(t, store.Apply([]types.VisibilityDirective{{Name: "BAR_LIBRARY", Visible: true}}))

	entries := store.Entries("BAR")
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Advanced)
}

func TestCacheStoreParseSkipsComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detect.cache")
	content := "# comment\n\n// another\nFOO_FOUND:BOOL=TRUE\nmalformed line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	store, err := NewCacheStoreAdapter(path)
	require.NoError(t, err)
	assert.True(t, store.Found("FOO"))
}

func TestCacheStoreEntriesDoNotBleedAcrossPrefixes(t *testing.T) {
	store, err := NewCacheStoreAdapter(filepath.Join(t.TempDir(), "detect.cache"))
	require.NoError(t, err)

	require.NoError(t, store.PublishVersion("FOO", "1.0"))
	require.NoError(t, store.PublishVersion("FOOBAR", "2.0"))

	entries := store.Entries("FOO")
	require.Len(t, entries, 1)
	assert.Equal(t, "FOO_VERSION", entries[0].Name)
}

func TestCacheStorePrefixNormalization(t *testing.T) {
	store, err := NewCacheStoreAdapter(filepath.Join(t.TempDir(), "detect.cache"))
	require.NoError(t, err)

	require.NoError(t, store.PublishVersion("foo-bar", "2.0"))
	assert.Equal(t, "2.0", store.Version("FOO_BAR"))
}
