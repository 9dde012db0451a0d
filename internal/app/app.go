// Package app implements the application layer for anyctl.
package app

import (
	"context"

	"github.com/mwatts/anyctl/internal/core/domain"
	"github.com/mwatts/anyctl/internal/core/ports"
	"github.com/mwatts/anyctl/internal/resolve"
	"golang.org/x/sync/errgroup"
)

// resolveConcurrency caps parallel directory lookups in a batch.
const resolveConcurrency = 8

// App coordinates resolution operations between the CLI and the core.
type App struct {
	resolver *resolve.Resolver
	dir      ports.Directory
	defaults ports.Defaults
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a new App instance.
func New(
	resolver *resolve.Resolver,
	dir ports.Directory,
	defaults ports.Defaults,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		resolver: resolver,
		dir:      dir,
		defaults: defaults,
		logger:   log,
		tracer:   tracer,
	}
}

// SpaceOptions carries the space sources of one invocation: an explicit
// name from a flag and/or an already-resolved identifier piped in from an
// upstream command. The persisted default is supplied by configuration.
type SpaceOptions struct {
	Name string
	ID   string
}

func (a *App) spaceContext(opts SpaceOptions) resolve.Context {
	var carried domain.Ref
	if opts.ID != "" {
		carried = domain.NewRef(opts.ID, "")
	}
	return resolve.NewContext(opts.Name, carried, a.defaults.DefaultSpace())
}

// ResolveSpaces resolves space names concurrently, preserving input order.
func (a *App) ResolveSpaces(ctx context.Context, names []string) ([]domain.Ref, error) {
	ctx, span := a.tracer.Start(ctx, "resolve.spaces")
	defer span.End()
	span.SetAttribute("count", len(names))

	refs := make([]domain.Ref, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for i, name := range names {
		g.Go(func() error {
			id, err := a.resolver.ResolveSpace(gctx, name)
			if err != nil {
				return err
			}
			refs[i] = domain.NewRef(id, "")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return refs, nil
}

// ResolveTypes resolves type names within one space concurrently,
// preserving input order. The space itself comes from the invocation's
// resolution context.
func (a *App) ResolveTypes(ctx context.Context, names []string, space SpaceOptions) ([]domain.Ref, error) {
	ctx, span := a.tracer.Start(ctx, "resolve.types")
	defer span.End()
	span.SetAttribute("count", len(names))

	spaceRef, err := a.resolver.SpaceFromContext(ctx, a.spaceContext(space))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("space_id", spaceRef.ID())

	refs := make([]domain.Ref, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for i, name := range names {
		g.Go(func() error {
			id, err := a.resolver.ResolveType(gctx, spaceRef.ID(), name)
			if err != nil {
				return err
			}
			refs[i] = domain.NewRef(id, spaceRef.ID())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return refs, nil
}

// Spaces lists all spaces in the directory's listing order.
func (a *App) Spaces(ctx context.Context) ([]domain.Entity, error) {
	ctx, span := a.tracer.Start(ctx, "list.spaces")
	defer span.End()

	entities, err := a.dir.List(ctx, "")
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return entities, nil
}

// Types lists the types of the space selected by the invocation's
// resolution context.
func (a *App) Types(ctx context.Context, space SpaceOptions) ([]domain.Entity, error) {
	ctx, span := a.tracer.Start(ctx, "list.types")
	defer span.End()

	spaceRef, err := a.resolver.SpaceFromContext(ctx, a.spaceContext(space))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("space_id", spaceRef.ID())

	entities, err := a.dir.List(ctx, spaceRef.ID())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return entities, nil
}

// CacheStats reports resolver cache occupancy and hit counts.
func (a *App) CacheStats() resolve.CacheStats {
	return a.resolver.CacheStats()
}

// ClearCache drops every cached name mapping.
func (a *App) ClearCache() {
	a.resolver.ClearCache()
	a.logger.Info("resolver cache cleared")
}
