package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgdetect/internal/shared"
	"pkgdetect/internal/types"
)

type ManifestChecker struct{}

var validSchemes = map[types.VersionScheme]struct{}{
	types.VersionSchemeDotted: {},
	types.VersionSchemeDeb:    {},
	types.VersionSchemePep440: {},
}

func NewManifestChecker() ManifestChecker {
	return ManifestChecker{}
}

// ValidateManifest rejects manifests that would make detection behave
// in confusing ways: duplicate prefixes, packages with nothing to
// probe, or constraints that can never be evaluated.
func (c ManifestChecker) ValidateManifest(ctx context.Context, manifest types.Manifest) error {
	assert.NotEmpty(ctx, manifest.APIVersion, "api_version must be set")
	if len(manifest.Packages) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest must list at least one package")
	}

	seen := map[string]struct{}{}
	for _, pkg := range manifest.Packages {
		if err := c.validatePackage(ctx, pkg); err != nil {
			return err
		}
		prefix := shared.NormalizePrefix(pkg.Prefix)
		if _, dup := seen[prefix]; dup {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate package prefix: %s", prefix))
		}
		seen[prefix] = struct{}{}
	}
	return nil
}

func (c ManifestChecker) validatePackage(ctx context.Context, pkg types.PackageSpec) error {
	assert.NotEmpty(ctx, pkg.Prefix, "package prefix must be set")
	if len(pkg.Headers) == 0 && len(pkg.Libraries) == 0 && pkg.PkgConfig == "" && len(pkg.Forward) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package %s has nothing to probe", pkg.Prefix))
	}
	for _, item := range append(append([]types.ItemSpec{}, pkg.Headers...), pkg.Libraries...) {
		if item.Name == "" || item.File == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("package %s has an item without name or file", pkg.Prefix))
		}
	}
	version := pkg.Version
	if version.Exact && version.Minimum == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package %s requests exact version match without a version", pkg.Prefix))
	}
	if version.Scheme != "" {
		if _, ok := validSchemes[version.Scheme]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("package %s uses unknown version scheme: %s", pkg.Prefix, version.Scheme))
		}
	}
	if (version.Header == "") != (version.Define == "") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package %s must set version.header and version.define together", pkg.Prefix))
	}
	return nil
}
