// Package license implements the product key check.  The scheme is
// deliberately weak and illustrative: the key's HMAC-SHA256 under an
// embedded salt must end with a fixed hex suffix.  Anyone reading this file
// can mint keys, so treat it as a demo gate, never a security boundary.
// The exact constants are part of the observable contract and must not
// change.
package license

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strings"
	"sync"
)

const (
	secretSalt      = "STATIC_APP_SALT_82b9f8"
	signatureSuffix = "cafe"
)

// Status is the cached outcome of the last validation.
type Status struct {
	Key   string `json:"key"`
	Valid bool   `json:"valid"`
}

// Validator checks the configured license key and memoizes the result.  The
// cache holds a single (key, result) slot keyed by the key's value: a call
// that observes the same key returns the cached verdict, while a changed key
// or a forced refresh recomputes.  Construct one per process and inject it
// where needed; there is no package-level instance.
type Validator struct {
	filePath string // license file, wins over the environment value
	envKey   string // environment variable holding the fallback key

	mu         sync.Mutex
	cachedKey  string
	cachedOK   bool
	haveCached bool
}

// New returns a Validator reading the key from filePath first and the named
// environment variable second.
func New(filePath, envKey string) *Validator {
	return &Validator{filePath: filePath, envKey: envKey}
}

// loadKey resolves the candidate key: license file contents when present and
// non-empty, otherwise the environment value.  Both are trimmed.
func (v *Validator) loadKey() string {
	if b, err := os.ReadFile(v.filePath); err == nil {
		if k := strings.TrimSpace(string(b)); k != "" {
			return k
		}
	}
	return strings.TrimSpace(os.Getenv(v.envKey))
}

func signature(key string) string {
	mac := hmac.New(sha256.New, []byte(secretSalt))
	mac.Write([]byte(key))
	return hex.EncodeToString(mac.Sum(nil))
}

// IsValid reports whether the configured key passes the signature check.
// With no key configured the result is false and the cache is cleared.  A
// repeated call with the same key returns the cached result unless force is
// set.
func (v *Validator) IsValid(force bool) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	key := v.loadKey()
	if key == "" {
		v.cachedKey = ""
		v.cachedOK = false
		v.haveCached = false
		return false
	}
	if !force && v.haveCached && v.cachedKey == key {
		return v.cachedOK
	}
	ok := strings.HasSuffix(signature(key), signatureSuffix)
	v.cachedKey = key
	v.cachedOK = ok
	v.haveCached = true
	return ok
}

// Status returns the key currently in effect together with its verdict,
// recomputing when force is set.
func (v *Validator) Status(force bool) Status {
	ok := v.IsValid(force)
	v.mu.Lock()
	defer v.mu.Unlock()
	return Status{Key: v.cachedKey, Valid: ok}
}

// EnsureValid is the boot-time gate: a present-but-invalid key is an error,
// while a missing key is tolerated so the demo still runs unlicensed.
func (v *Validator) EnsureValid() error {
	if v.loadKey() == "" {
		return nil
	}
	if !v.IsValid(true) {
		return ErrInvalidKey
	}
	return nil
}
