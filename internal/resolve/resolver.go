package resolve

import (
	"context"
	"errors"
	"time"

	"github.com/mwatts/anyctl/internal/core/domain"
	"github.com/mwatts/anyctl/internal/core/ports"
	"go.trai.ch/zerr"
)

// TypeKey identifies a type name scoped to its space. Equality is
// structural, so distinct spaces never share cache entries for a name.
type TypeKey struct {
	SpaceID string
	Name    string
}

// Resolver turns display names into stable identifiers. It consults its
// caches first and falls back to the remote directory on a miss, populating
// the cache on success. The directory is never called while any cache lock
// is held, so a slow remote call cannot stall reads of unrelated keys.
//
// The Resolver owns the process-wide cache state; create one per session
// and inject it rather than sharing through package globals.
type Resolver struct {
	dir    ports.Directory
	spaces *Cache[string]
	types  *Cache[TypeKey]
}

// NewResolver creates a resolver whose cache entries live for ttl.
func NewResolver(dir ports.Directory, ttl time.Duration) *Resolver {
	return &Resolver{
		dir:    dir,
		spaces: NewCache[string](ttl),
		types:  NewCache[TypeKey](ttl),
	}
}

// ResolveSpace resolves a top-level space name to its identifier.
func (r *Resolver) ResolveSpace(ctx context.Context, name string) (string, error) {
	if id, ok := r.spaces.Get(name); ok {
		return id, nil
	}
	id, err := r.lookup(ctx, "", name)
	if err != nil {
		return "", err
	}
	r.spaces.Put(name, id)
	return id, nil
}

// ResolveType resolves a type name within the space identified by spaceID.
func (r *Resolver) ResolveType(ctx context.Context, spaceID, name string) (string, error) {
	key := TypeKey{SpaceID: spaceID, Name: name}
	if id, ok := r.types.Get(key); ok {
		return id, nil
	}
	id, err := r.lookup(ctx, spaceID, name)
	if err != nil {
		return "", err
	}
	r.types.Put(key, id)
	return id, nil
}

// SpaceFromContext applies the invocation context's precedence and resolves
// the outcome to a space ref. A carried identifier short-circuits the
// resolver and cache entirely: it is already resolved.
func (r *Resolver) SpaceFromContext(ctx context.Context, rc Context) (domain.Ref, error) {
	sel, err := rc.Select()
	if err != nil {
		return domain.Ref{}, err
	}
	if sel.Resolved() {
		return sel.Ref, nil
	}
	id, err := r.ResolveSpace(ctx, sel.Name)
	if err != nil {
		return domain.Ref{}, err
	}
	return domain.NewRef(id, ""), nil
}

// lookup queries the directory for name under scope. When several entities
// share a display name the first entry in the directory's listing order
// wins; the remote side does not guarantee name uniqueness and this
// resolver does not invent a disambiguation of its own. Failed lookups are
// never cached, so a retry after the entity appears remotely succeeds
// without waiting out a TTL.
func (r *Resolver) lookup(ctx context.Context, scope, name string) (string, error) {
	matches, err := r.dir.FindByName(ctx, scope, name)
	if err != nil {
		return "", errors.Join(domain.ErrLookupFailed, err)
	}
	if len(matches) == 0 {
		nfErr := zerr.With(domain.ErrNotFound, "name", name)
		if scope != "" {
			nfErr = zerr.With(nfErr, "space_id", scope)
		}
		return "", nfErr
	}
	return matches[0].ID, nil
}

// CacheStats snapshots both caches for the admin surface.
type CacheStats struct {
	Spaces Stats
	Types  Stats
}

// CacheStats reports occupancy and hit/miss counts per cache.
func (r *Resolver) CacheStats() CacheStats {
	return CacheStats{
		Spaces: r.spaces.Stats(),
		Types:  r.types.Stats(),
	}
}

// ClearCache drops every cached mapping regardless of expiry.
func (r *Resolver) ClearCache() {
	r.spaces.Clear()
	r.types.Clear()
}
