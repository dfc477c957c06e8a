package ports

import "context"

// LocateRequest asks the generic package locator for one module.
// Quiet suppresses the delegate's own chatter; Required makes a miss
// an error instead of a negative result.
type LocateRequest struct {
	Name     string
	Quiet    bool
	Required bool
}

type LocateResult struct {
	Found       bool
	Version     string
	IncludeDirs []string
	LibraryDirs []string
}

// LocatorPort is the external package-locator collaborator (pkg-config
// or equivalent). The core only consumes its yes/no + path results.
type LocatorPort interface {
	Locate(ctx context.Context, req LocateRequest) (LocateResult, error)
}
