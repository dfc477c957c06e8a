package ports

import "pkgdetect/internal/types"

type ManifestPort interface {
	Load(path string) (types.Manifest, error)
}
