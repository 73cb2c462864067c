package client

import (
	"errors"
	"fmt"
)

// ErrSecretRequired is returned by mutating cache operations invoked without
// an admin secret.  The check is local: the request never reaches the
// network.
var ErrSecretRequired = errors.New("admin password is required")

// APIError is a structured rejection from the server (validation failure,
// unauthorized, not found).  Transport problems are returned as ordinary
// wrapped errors instead, so callers can tell "the server said no" apart
// from "the server was unreachable".
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a 401 rejection.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}
