package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pkgdetect/internal/types"
)

// Resolver turns per-item probe results into a terminal detection
// outcome for one package at a time. It keeps per-run state only for
// the idempotent short-circuit: a prefix resolved Found once is never
// re-evaluated within the same run.
type Resolver struct {
	seen map[string]types.ResolutionOutcome

	// Stat reports whether a path names a real filesystem entry. It is
	// a field so tests can resolve against synthetic trees.
	Stat func(path string) bool
}

func NewResolver() *Resolver {
	return &Resolver{
		seen: map[string]types.ResolutionOutcome{},
		Stat: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

// ResolveRequest carries everything the resolver reads: probe results,
// the discovered version (possibly empty), the constraint, and the
// caller's required/quiet flags.
type ResolveRequest struct {
	Prefix       string
	IncludeItems []types.ProbeItem
	LibraryItems []types.ProbeItem
	Version      string
	Constraint   types.VersionConstraint
	Required     bool
	Quiet        bool
}

// Resolve decides whether the package counts as found, emits the
// hide/reveal directives for every probed item, and composes the
// diagnostic on any miss. A required miss is returned as an error whose
// message is the full diagnostic; the CLI maps it to a build abort.
// Optional misses are logged as a warning unless quiet. Probe inputs
// are never mutated.
func (r *Resolver) Resolve(req ResolveRequest) (types.ResolutionOutcome, error) {
	if prior, ok := r.seen[req.Prefix]; ok {
		return prior, nil
	}

	found := true
	missingHeaders := false
	var includeDirs, libraryDirs []string
	items := make([]types.ProbeItem, 0, len(req.IncludeItems)+len(req.LibraryItems))

	for _, item := range req.IncludeItems {
		items = append(items, item)
		if !item.Resolved() {
			found = false
			missingHeaders = true
			continue
		}
		includeDirs = append(includeDirs, item.Value)
	}
	for _, item := range req.LibraryItems {
		items = append(items, item)
		if !item.Resolved() {
			found = false
			continue
		}
		libraryDirs = append(libraryDirs, item.Value)
	}

	reason := types.FailureReasonNone
	if found && req.Constraint.Minimum != "" {
		switch {
		case req.Version == "":
			// The detection spec promised a version by carrying a
			// constraint but never published one.
			if !req.Quiet {
				log.Warn().
					Str("package", req.Prefix).
					Str("minimum", req.Constraint.Minimum).
					Msg("version constraint given but no version was detected; fix the package's version extraction")
			}
			found = false
		default:
			acceptable, err := versionAcceptable(req.Version, req.Constraint)
			if err != nil {
				if !req.Quiet {
					log.Warn().
						Str("package", req.Prefix).
						Str("version", req.Version).
						Err(err).
						Msg("version comparison failed; treating package as not found")
				}
				found = false
			} else if !acceptable {
				found = false
				reason = types.FailureReasonVersionUnsuitable
			}
		}
	}

	if found {
		outcome := types.ResolutionOutcome{
			Prefix:      req.Prefix,
			State:       types.OutcomeFound,
			IncludeDirs: includeDirs,
			LibraryDirs: libraryDirs,
			Version:     req.Version,
			Directives:  directives(items, false),
		}
		r.seen[req.Prefix] = outcome
		if !req.Quiet {
			log.Info().
				Str("package", req.Prefix).
				Str("version", req.Version).
				Msg("found")
		}
		return outcome, nil
	}

	listing, partial := r.itemListing(items)
	if reason == types.FailureReasonNone {
		switch {
		case missingHeaders:
			reason = types.FailureReasonMissingHeaders
		case partial:
			reason = types.FailureReasonSomeFiles
		default:
			reason = types.FailureReasonNotFound
		}
	}
	primary := primaryMessage(req.Prefix, reason, req.Version, req.Constraint)

	outcome := types.ResolutionOutcome{
		Prefix:     req.Prefix,
		Reason:     reason,
		Directives: directives(items, true),
	}

	if req.Required {
		outcome.State = types.OutcomeNotFoundFatal
		outcome.Diagnostic = fmt.Sprintf(
			"REQUIRED PACKAGE NOT FOUND\n%s\n%s\n%s\n%s is required for the build to continue",
			primary, listing, cacheHint, req.Prefix,
		)
		return outcome, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(outcome.Diagnostic)
	}

	outcome.State = types.OutcomeNotFoundOptional
	outcome.Diagnostic = fmt.Sprintf(
		"MISSING PACKAGE: %s\n%s\n%s\n%s is optional; continuing with reduced functionality",
		primary, listing, cacheHint, req.Prefix,
	)
	if !req.Quiet {
		log.Warn().Str("package", req.Prefix).Msg(outcome.Diagnostic)
	}
	return outcome, nil
}

// directives builds the visibility side-channel: hide every probed
// item on success, reveal every item on failure so a user can see and
// fix the unresolved entries.
func directives(items []types.ProbeItem, visible bool) []types.VisibilityDirective {
	out := make([]types.VisibilityDirective, 0, len(items))
	for _, item := range items {
		out = append(out, types.VisibilityDirective{Name: item.Name, Visible: visible})
	}
	return out
}

// cacheHint closes every failure diagnostic, after the item listing.
const cacheHint = "edit these entries in the detection cache, or clear them to force a fresh probe"

// itemListing renders the per-item debug block and reports whether at
// least one item held plausible evidence (a non-empty value naming a
// real filesystem entry). The listing holds item lines only; the
// fix-it hint is composed into the diagnostic by the caller.
func (r *Resolver) itemListing(items []types.ProbeItem) (string, bool) {
	partial := false
	var lines []string
	for _, item := range items {
		switch {
		case !item.Resolved():
			lines = append(lines, fmt.Sprintf("  %s = <not found>", item.Name))
		case !r.Stat(item.Value):
			lines = append(lines, fmt.Sprintf("  %s = %s (does not exist)", item.Name, item.Value))
		default:
			lines = append(lines, fmt.Sprintf("  %s = %s", item.Name, item.Value))
			partial = true
		}
	}
	return strings.Join(lines, "\n"), partial
}

// primaryMessage selects the headline diagnostic for a failed
// resolution. Precedence is decided by the caller; this is a closed
// set of templates keyed by the failure reason.
func primaryMessage(prefix string, reason types.FailureReason, version string, constraint types.VersionConstraint) string {
	switch reason {
	case types.FailureReasonVersionUnsuitable:
		if constraint.Exact {
			return fmt.Sprintf("version %s of %s was found but only %s is acceptable", version, prefix, constraint.Minimum)
		}
		return fmt.Sprintf("version %s of %s was found but %s is the minimum requirement", version, prefix, constraint.Minimum)
	case types.FailureReasonMissingHeaders:
		return fmt.Sprintf("%s development headers not found; is the dev package installed?", prefix)
	case types.FailureReasonSomeFiles:
		msg := fmt.Sprintf("only some files for %s were found; installation may be incomplete or in a non-standard location", prefix)
		if constraint.Minimum != "" {
			msg += fmt.Sprintf(" (version %s or newer is required)", constraint.Minimum)
		}
		return msg
	default:
		return fmt.Sprintf("unable to find package %s", prefix)
	}
}
