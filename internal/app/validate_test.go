package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "detect.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateOK(t *testing.T) {
	path := writeManifest(t, fooManifest)
	result, err := NewService().Validate(context.Background(), ValidateRequest{ManifestPath: path})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Packages)
}

func TestValidateEmptyPathErrors(t *testing.T) {
	_, err := NewService().Validate(context.Background(), ValidateRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestValidateRejectsBadManifest(t *testing.T) {
	path := writeManifest(t, "api_version: pkgdetect/v1\npackages: []\n")
	_, err := NewService().Validate(context.Background(), ValidateRequest{ManifestPath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one package")
}
