package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgdetect/internal/types"
)

// librarySubdirs are tried under each search root when locating
// library binaries.
var librarySubdirs = []string{"lib", "lib64", "lib/x86_64-linux-gnu"}

// FilesystemProber searches a fixed set of installation roots for
// header files and library binaries. Header items resolve to the
// directory containing the file; library items resolve to the binary's
// full path. Misses become NotFound sentinel items, never errors.
type FilesystemProber struct {
	Roots []string
}

func NewFilesystemProber(roots []string) FilesystemProber {
	if len(roots) == 0 {
		roots = []string{"/usr", "/usr/local"}
	}
	return FilesystemProber{Roots: roots}
}

func (p FilesystemProber) Probe(spec types.PackageSpec) ([]types.ProbeItem, []types.ProbeItem, error) {
	if spec.Prefix == "" {
		return nil, nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package prefix is empty")
	}

	includes := make([]types.ProbeItem, 0, len(spec.Headers))
	for _, item := range spec.Headers {
		includes = append(includes, types.ProbeItem{
			Name:  item.Name,
			Role:  types.ItemRoleInclude,
			Value: p.findHeaderDir(item),
		})
	}

	libraries := make([]types.ProbeItem, 0, len(spec.Libraries))
	for _, item := range spec.Libraries {
		libraries = append(libraries, types.ProbeItem{
			Name:  item.Name,
			Role:  types.ItemRoleLibrary,
			Value: p.findLibrary(item),
		})
	}
	return includes, libraries, nil
}

func (p FilesystemProber) findHeaderDir(item types.ItemSpec) string {
	dirs := append([]string{}, item.Hints...)
	for _, root := range p.Roots {
		dirs = append(dirs, filepath.Join(root, "include"))
	}
	for _, dir := range dirs {
		if fileExists(filepath.Join(dir, item.File)) {
			return dir
		}
	}
	return types.NotFound
}

func (p FilesystemProber) findLibrary(item types.ItemSpec) string {
	dirs := append([]string{}, item.Hints...)
	for _, root := range p.Roots {
		for _, sub := range librarySubdirs {
			dirs = append(dirs, filepath.Join(root, sub))
		}
	}
	for _, dir := range dirs {
		path := filepath.Join(dir, item.File)
		if fileExists(path) {
			return path
		}
	}
	return types.NotFound
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
