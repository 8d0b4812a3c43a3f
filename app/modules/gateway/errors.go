package gateway

import "errors"

var (
	// ErrUnauthorized indicates the upstream API rejected the credential
	// (401). The session layer reacts by discarding the credential; the
	// gateway itself never redirects.
	ErrUnauthorized = errors.New("upstream rejected credential")
	// ErrBadRequest indicates a non-auth 4xx response, e.g. invalid login
	// credentials or a rejected form payload.
	ErrBadRequest = errors.New("upstream rejected request")
	// ErrUnavailable indicates a network failure or a 5xx response. Callers
	// surface it as a connectivity notice; the gateway never retries.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrMalformedResponse indicates the upstream body could not be decoded.
	ErrMalformedResponse = errors.New("malformed upstream response")
)
