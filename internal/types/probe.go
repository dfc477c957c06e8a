package types

// NotFound is the sentinel value a prober stores in a ProbeItem whose
// candidate could not be located. It mirrors the NOTFOUND convention of
// build-system detection caches so cache files stay greppable.
const NotFound = "NOTFOUND"

// ProbeItem is one named probe slot: either a resolved filesystem
// location or the NotFound sentinel. Probers produce them; the resolver
// only reads them.
type ProbeItem struct {
	Name  string
	Role  ItemRole
	Value string
}

// Resolved reports whether the item holds a concrete location rather
// than the NotFound sentinel.
func (p ProbeItem) Resolved() bool {
	return p.Value != "" && p.Value != NotFound
}

// VisibilityDirective instructs the host store to hide (advanced) or
// reveal one configuration entry by name.
type VisibilityDirective struct {
	Name    string
	Visible bool
}
