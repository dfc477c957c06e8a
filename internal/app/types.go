package app

import (
	"pkgdetect/internal/ports"
	"pkgdetect/internal/types"
)

type DetectRequest struct {
	ManifestPath string
	CachePath    string
	Roots        []string
	Only         []string
	Quiet        bool
}

type DetectResult struct {
	CachePath string
	Outcomes  []types.ResolutionOutcome
}

type ValidateRequest struct {
	ManifestPath string
}

type ValidateResult struct {
	Packages int
}

type InspectRequest struct {
	CachePath string
	Prefix    string
}

type InspectResult struct {
	Found   bool
	Version string
	Entries []ports.CacheEntry
}
