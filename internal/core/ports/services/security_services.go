package services

import "context"

// SecuritySvcFacade is the local PIN gate. There are no sessions or tokens;
// the presentation layer asks for a verification result and nothing more.
type SecuritySvcFacade interface {
	// SetPIN hashes and stores the PIN, replacing any existing one.
	SetPIN(ctx context.Context, pin string) error

	// VerifyPIN reports whether pin matches the stored hash. A missing
	// stored PIN verifies as false, not as an error.
	VerifyPIN(ctx context.Context, pin string) (bool, error)

	// IsPINSet reports whether a PIN has been configured.
	IsPINSet(ctx context.Context) (bool, error)
}
