package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgdetect/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	manifest, err := s.Manifest.Load(manifestPath)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := core.NewManifestChecker().ValidateManifest(ctx, manifest); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{Packages: len(manifest.Packages)}, nil
}
