// Package domain contains the core types for name resolution.
package domain

// Entity is a remotely managed object (a space, a type) as the directory
// service reports it: a stable identifier plus a mutable display name.
type Entity struct {
	// ID is the stable, name-independent identifier used by the remote
	// directory and all downstream operations.
	ID string
	// Name is the human-readable display name. It is mutable on the remote
	// side and must never be used as a long-lived key.
	Name string
}
