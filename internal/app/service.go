package app

import (
	"pkgdetect/internal/adapters"
	"pkgdetect/internal/ports"
)

type Service struct {
	Manifest  ports.ManifestPort
	Locator   ports.LocatorPort
	OpenStore func(path string) (ports.StorePort, error)
	NewProber func(roots []string) ports.ProberPort
}

func NewService() Service {
	return Service{
		Manifest: adapters.NewManifestFileAdapter(),
		Locator:  adapters.NewPkgConfigAdapter(),
		OpenStore: func(path string) (ports.StorePort, error) {
			return adapters.NewCacheStoreAdapter(path)
		},
		NewProber: func(roots []string) ports.ProberPort {
			return adapters.NewFilesystemProber(roots)
		},
	}
}
