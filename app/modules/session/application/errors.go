package sessionservice

import "errors"

var (
	// ErrInvalidCredentials indicates the upstream API rejected the login.
	// Recoverable: the form stays editable and no state changes.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrLoginInFlight indicates a login for the same username is already
	// pending; the attempt is rejected rather than raced.
	ErrLoginInFlight = errors.New("login already in flight")
	// ErrStaleCredential indicates a persisted credential failed identity
	// verification and must be discarded.
	ErrStaleCredential = errors.New("stale credential")
	// ErrUpstreamUnavailable indicates a connectivity or server failure.
	ErrUpstreamUnavailable = errors.New("authentication service unavailable")
)
