// Package ports defines the interfaces the core consumes from the outside
// world: the remote directory, persisted defaults, logging and tracing.
package ports

import (
	"context"

	"github.com/mwatts/anyctl/internal/core/domain"
)

// Directory is the remote lookup service for entities. The resolver consults
// it only on cache misses; it never implements the transport itself.
//
//go:generate mockgen -source=directory.go -destination=mocks/mock_directory.go -package=mocks
type Directory interface {
	// FindByName returns all entities under scope whose display name matches
	// name, in the directory's listing order. scope is the parent space
	// identifier; an empty scope addresses top-level spaces.
	// A zero-length result is not an error.
	FindByName(ctx context.Context, scope, name string) ([]domain.Entity, error)

	// List returns all entities under scope in the directory's listing order.
	List(ctx context.Context, scope string) ([]domain.Entity, error)
}
