package license

import "errors"

// ErrInvalidKey is returned by EnsureValid when a key is configured but
// fails the signature check.
var ErrInvalidKey = errors.New("license check failed: invalid product key")
