package types

// VersionConstraint bounds the acceptable version for one package.
// An empty Minimum means unconstrained. Exact tightens ">= Minimum"
// to "== Minimum". Scheme selects the comparison semantics; the zero
// value falls back to dotted component comparison.
type VersionConstraint struct {
	Minimum string
	Exact   bool
	Scheme  VersionScheme
}

// ResolutionOutcome is the terminal artifact of one package resolution.
type ResolutionOutcome struct {
	Prefix      string
	State       OutcomeState
	IncludeDirs []string
	LibraryDirs []string
	Version     string
	Reason      FailureReason
	Diagnostic  string
	Directives  []VisibilityDirective
}

// Found reports whether the outcome reached the Found terminal state.
func (o ResolutionOutcome) Found() bool {
	return o.State == OutcomeFound
}
