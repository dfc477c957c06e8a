package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgdetect/internal/shared"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	prefix := shared.NormalizePrefix(req.Prefix)
	if prefix == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package prefix is required")
	}
	cachePath := strings.TrimSpace(req.CachePath)
	if cachePath == "" {
		cachePath = defaultCachePath
	}
	store, err := s.OpenStore(cachePath)
	if err != nil {
		return InspectResult{}, err
	}
	return InspectResult{
		Found:   store.Found(prefix),
		Version: store.Version(prefix),
		Entries: store.Entries(prefix),
	}, nil
}
