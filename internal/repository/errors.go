// Package repository contains data access logic separated from HTTP
// handlers.  Sentinel errors defined here let handlers distinguish a
// missing row (404) from a genuine storage failure (500) without
// inspecting driver error strings.
package repository

import "errors"

// ErrProductNotFound is returned when an id-addressed product read, update
// or delete matches no row.
var ErrProductNotFound = errors.New("product not found")
