package adapters

import (
	"context"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pkgdetect/internal/ports"
	"pkgdetect/internal/shared"
)

// PkgConfigAdapter fronts the system pkg-config tool as the generic
// package locator. A module that pkg-config does not know is a
// negative result, not an error, unless the lookup was required.
type PkgConfigAdapter struct {
	// Binary defaults to "pkg-config"; tests point it at a stub.
	Binary string
}

func NewPkgConfigAdapter() PkgConfigAdapter {
	return PkgConfigAdapter{Binary: "pkg-config"}
}

func (a PkgConfigAdapter) Locate(ctx context.Context, req ports.LocateRequest) (ports.LocateResult, error) {
	binary := a.Binary
	if binary == "" {
		binary = "pkg-config"
	}

	if err := exec.CommandContext(ctx, binary, "--exists", req.Name).Run(); err != nil {
		if req.Required {
			return ports.LocateResult{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("required package not known to pkg-config: " + req.Name)
		}
		if !req.Quiet {
			log.Debug().Str("module", req.Name).Msg("pkg-config does not know module")
		}
		return ports.LocateResult{}, nil
	}

	result := ports.LocateResult{Found: true}
	if version, err := a.query(ctx, binary, "--modversion", req.Name); err == nil {
		result.Version = strings.TrimSpace(version)
	}
	if flags, err := a.query(ctx, binary, "--cflags-only-I", req.Name); err == nil {
		result.IncludeDirs = parseDirFlags(flags, "-I")
	}
	if flags, err := a.query(ctx, binary, "--libs-only-L", req.Name); err == nil {
		result.LibraryDirs = parseDirFlags(flags, "-L")
	}
	return result, nil
}

func (a PkgConfigAdapter) query(ctx context.Context, binary string, flag string, name string) (string, error) {
	output, err := exec.CommandContext(ctx, binary, flag, name).CombinedOutput()
	if err != nil {
		return "", shared.CommandError(output, err)
	}
	return string(output), nil
}

// parseDirFlags extracts directory arguments from -I/-L compiler flag
// output. Both "-Idir" and "-I dir" forms appear in the wild.
func parseDirFlags(output string, flag string) []string {
	var dirs []string
	fields := strings.Fields(output)
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		switch {
		case field == flag:
			if i+1 < len(fields) {
				i++
				dirs = append(dirs, fields[i])
			}
		case strings.HasPrefix(field, flag):
			dirs = append(dirs, strings.TrimPrefix(field, flag))
		}
	}
	return dirs
}
