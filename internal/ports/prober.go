package ports

import "pkgdetect/internal/types"

// ProberPort locates header directories and library binaries for a
// package spec. Missing candidates come back as NotFound sentinel
// items, never as errors.
type ProberPort interface {
	Probe(spec types.PackageSpec) (includes []types.ProbeItem, libraries []types.ProbeItem, err error)
}
