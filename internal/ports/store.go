package ports

import "pkgdetect/internal/types"

// CacheEntry is one host-store variable as surfaced to inspection.
type CacheEntry struct {
	Name     string
	Type     string
	Value    string
	Advanced bool
}

// VariableStorePort is the host build-configuration store: probed item
// values, resolved paths, versions and found flags published per
// package prefix.
type VariableStorePort interface {
	PublishItems(items []types.ProbeItem) error
	PublishOutcome(outcome types.ResolutionOutcome) error
	PublishVersion(prefix string, version string) error
	Found(prefix string) bool
	Version(prefix string) string
	IncludeDirs(prefix string) []string
	LibraryDirs(prefix string) []string
	Entries(prefix string) []CacheEntry
	Save() error
}

// VisibilityPort applies hide/reveal directives to the host store.
type VisibilityPort interface {
	Apply(directives []types.VisibilityDirective) error
}

// StorePort combines the variable and visibility stores; a cache file
// backs both in the default wiring.
type StorePort interface {
	VariableStorePort
	VisibilityPort
}
