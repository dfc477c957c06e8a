package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pkgdetect/internal/types"
)

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) Load(path string) (types.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	var manifest types.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest yaml").
			WithCause(err)
	}
	return manifest, nil
}
