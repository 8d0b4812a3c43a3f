package credentials

import "net/http"

// Store persists the upstream API bearer credential on the browser. It is
// written on login and removed on logout or failed rehydration; nothing else
// touches it.
type Store interface {
	// Read extracts the credential from the request, verifying the wrapper
	// it was persisted in. A request without a credential returns
	// ErrNoCredential.
	Read(r *http.Request) (string, error)
	// Write persists the credential on the response.
	Write(w http.ResponseWriter, credential string) error
	// Clear removes the credential. It always succeeds locally.
	Clear(w http.ResponseWriter)
}
