package core

import (
	"context"

	"pkgdetect/internal/ports"
)

// Forwarder relays nested package lookups to the generic locator.
// Quiet is always forced on; the caller's required flag propagates so
// a required parent with a missing required nested package fails the
// same way a direct lookup would. Failures are the delegate's to
// report and simply propagate.
type Forwarder struct {
	Locator ports.LocatorPort
}

func NewForwarder(locator ports.LocatorPort) Forwarder {
	return Forwarder{Locator: locator}
}

func (f Forwarder) Forward(ctx context.Context, required bool, lookups []string) error {
	for _, name := range lookups {
		_, err := f.Locator.Locate(ctx, ports.LocateRequest{
			Name:     name,
			Quiet:    true,
			Required: required,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
