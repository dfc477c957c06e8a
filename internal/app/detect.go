package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pkgdetect/internal/core"
	"pkgdetect/internal/ports"
	"pkgdetect/internal/shared"
	"pkgdetect/internal/types"
)

const defaultCachePath = "detect.cache"

// Detect runs the full detection pipeline for every package in the
// manifest: probe, consult pkg-config, forward nested lookups, extract
// a version, resolve, and publish the outcome into the cache store.
// A required package that fails resolution aborts the run; the cache
// written so far is saved first so the listing in the diagnostic can
// be acted on.
func (s Service) Detect(ctx context.Context, req DetectRequest) (DetectResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return DetectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	manifest, err := s.Manifest.Load(manifestPath)
	if err != nil {
		return DetectResult{}, err
	}
	if err := core.NewManifestChecker().ValidateManifest(ctx, manifest); err != nil {
		return DetectResult{}, err
	}
	emitHints(checkDetectDefaultsHints(req, manifest.Defaults))

	roots := req.Roots
	if len(roots) == 0 {
		roots = manifest.Defaults.Roots
	}
	cachePath := strings.TrimSpace(req.CachePath)
	if cachePath == "" {
		cachePath = manifest.Defaults.Cache
	}
	if cachePath == "" {
		cachePath = defaultCachePath
	}

	store, err := s.OpenStore(cachePath)
	if err != nil {
		return DetectResult{}, err
	}
	prober := s.NewProber(roots)
	resolver := core.NewResolver()
	forwarder := core.NewForwarder(s.Locator)

	only := map[string]struct{}{}
	for _, prefix := range req.Only {
		only[shared.NormalizePrefix(prefix)] = struct{}{}
	}

	result := DetectResult{CachePath: cachePath}
	for _, pkg := range manifest.Packages {
		prefix := shared.NormalizePrefix(pkg.Prefix)
		if len(only) > 0 {
			if _, keep := only[prefix]; !keep {
				continue
			}
		}

		// A package already marked found in the cache from a prior run
		// is never re-evaluated.
		if store.Found(prefix) {
			result.Outcomes = append(result.Outcomes, types.ResolutionOutcome{
				Prefix:      prefix,
				State:       types.OutcomeFound,
				IncludeDirs: store.IncludeDirs(prefix),
				LibraryDirs: store.LibraryDirs(prefix),
				Version:     store.Version(prefix),
			})
			continue
		}

		outcome, err := s.detectPackage(ctx, detectContext{
			prefix:    prefix,
			pkg:       pkg,
			quiet:     req.Quiet,
			store:     store,
			prober:    prober,
			resolver:  resolver,
			forwarder: forwarder,
		})
		if err != nil {
			// Save what we have so the diagnostic's cache references
			// point at real entries.
			if saveErr := store.Save(); saveErr != nil {
				log.Error().Err(saveErr).Msg("failed to save detection cache")
			}
			result.Outcomes = append(result.Outcomes, outcome)
			return result, err
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	if err := store.Save(); err != nil {
		return result, err
	}
	return result, nil
}

type detectContext struct {
	prefix    string
	pkg       types.PackageSpec
	quiet     bool
	store     ports.StorePort
	prober    ports.ProberPort
	resolver  *core.Resolver
	forwarder core.Forwarder
}

func (s Service) detectPackage(ctx context.Context, dc detectContext) (types.ResolutionOutcome, error) {
	pkg := dc.pkg

	// pkg-config hints feed the prober and may supply the version.
	version := dc.store.Version(dc.prefix)
	if pkg.PkgConfig != "" {
		located, err := s.Locator.Locate(ctx, ports.LocateRequest{Name: pkg.PkgConfig, Quiet: true})
		if err != nil {
			return types.ResolutionOutcome{Prefix: dc.prefix}, err
		}
		if located.Found {
			if version == "" {
				version = located.Version
			}
			pkg = withHints(pkg, located.IncludeDirs, located.LibraryDirs)
		}
	}

	if len(pkg.Forward) > 0 {
		if err := dc.forwarder.Forward(ctx, pkg.Required, pkg.Forward); err != nil {
			return types.ResolutionOutcome{Prefix: dc.prefix}, err
		}
	}

	includes, libraries, err := dc.prober.Probe(pkg)
	if err != nil {
		return types.ResolutionOutcome{Prefix: dc.prefix}, err
	}

	if version == "" && pkg.Version.Header != "" {
		var includeDirs []string
		for _, item := range includes {
			if item.Resolved() {
				includeDirs = append(includeDirs, item.Value)
			}
		}
		if extracted, ok := core.ExtractVersion(includeDirs, pkg.Version.Header, pkg.Version.Define, dc.quiet); ok {
			version = extracted
		}
	}
	if version != "" {
		if err := dc.store.PublishVersion(dc.prefix, version); err != nil {
			return types.ResolutionOutcome{Prefix: dc.prefix}, err
		}
	}

	outcome, resolveErr := dc.resolver.Resolve(core.ResolveRequest{
		Prefix:       dc.prefix,
		IncludeItems: includes,
		LibraryItems: libraries,
		Version:      version,
		Constraint:   pkg.Version.Constraint(),
		Required:     pkg.Required,
		Quiet:        dc.quiet,
	})

	if err := dc.store.PublishItems(append(append([]types.ProbeItem{}, includes...), libraries...)); err != nil {
		return outcome, err
	}
	if err := dc.store.Apply(outcome.Directives); err != nil {
		return outcome, err
	}
	if err := dc.store.PublishOutcome(outcome); err != nil {
		return outcome, err
	}
	return outcome, resolveErr
}

// withHints prepends locator-supplied directories to every item's hint
// list without mutating the manifest package.
func withHints(pkg types.PackageSpec, includeDirs []string, libraryDirs []string) types.PackageSpec {
	if len(includeDirs) > 0 {
		headers := make([]types.ItemSpec, len(pkg.Headers))
		for i, item := range pkg.Headers {
			item.Hints = append(append([]string{}, includeDirs...), item.Hints...)
			headers[i] = item
		}
		pkg.Headers = headers
	}
	if len(libraryDirs) > 0 {
		libraries := make([]types.ItemSpec, len(pkg.Libraries))
		for i, item := range pkg.Libraries {
			item.Hints = append(append([]string{}, libraryDirs...), item.Hints...)
			libraries[i] = item
		}
		pkg.Libraries = libraries
	}
	return pkg
}
