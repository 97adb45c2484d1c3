package repositories

import "errors"

var (
	// ErrAccountBlocked is distinct from a bad-credentials miss so the
	// caller can show a different message. Raised on remote login and
	// on the offline fallback alike.
	ErrAccountBlocked = errors.New("account is blocked, contact an administrator")

	// ErrNationalIDTaken rejects a registration before any remote call.
	ErrNationalIDTaken = errors.New("national id is already registered")

	// ErrEmailTaken rejects a registration before any remote call.
	ErrEmailTaken = errors.New("email is already registered")
)
