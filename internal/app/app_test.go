package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/mwatts/anyctl/internal/adapters/telemetry"
	"github.com/mwatts/anyctl/internal/app"
	"github.com/mwatts/anyctl/internal/core/domain"
	"github.com/mwatts/anyctl/internal/core/ports/mocks"
	"github.com/mwatts/anyctl/internal/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type appTestMocks struct {
	dir      *mocks.MockDirectory
	defaults *mocks.MockDefaults
	logger   *mocks.MockLogger
}

func setupAppTest(t *testing.T) (*app.App, appTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
		dir:      mocks.NewMockDirectory(ctrl),
		defaults: mocks.NewMockDefaults(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	resolver := resolve.NewResolver(m.dir, time.Hour)
	a := app.New(resolver, m.dir, m.defaults, m.logger, telemetry.NewNoOpTracer())
	return a, m
}

func TestApp_ResolveSpaces_PreservesInputOrder(t *testing.T) {
	a, m := setupAppTest(t)

	m.dir.EXPECT().
		FindByName(gomock.Any(), "", "Home").
		Return([]domain.Entity{{ID: "id-1", Name: "Home"}}, nil)
	m.dir.EXPECT().
		FindByName(gomock.Any(), "", "Work").
		Return([]domain.Entity{{ID: "id-2", Name: "Work"}}, nil)

	refs, err := a.ResolveSpaces(context.Background(), []string{"Home", "Work"})
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "id-1", refs[0].ID())
	assert.Equal(t, "id-2", refs[1].ID())
}

func TestApp_ResolveSpaces_RepeatedNameHitsCache(t *testing.T) {
	a, m := setupAppTest(t)

	m.dir.EXPECT().
		FindByName(gomock.Any(), "", "Home").
		Return([]domain.Entity{{ID: "id-1", Name: "Home"}}, nil).
		Times(1)

	_, err := a.ResolveSpaces(context.Background(), []string{"Home"})
	require.NoError(t, err)

	// A second batch in the same session resolves from cache.
	refs, err := a.ResolveSpaces(context.Background(), []string{"Home"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", refs[0].ID())
}

func TestApp_ResolveSpaces_NotFoundAborts(t *testing.T) {
	a, m := setupAppTest(t)

	m.dir.EXPECT().
		FindByName(gomock.Any(), "", "Nowhere").
		Return(nil, nil)

	_, err := a.ResolveSpaces(context.Background(), []string{"Nowhere"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApp_ResolveTypes_UsesExplicitSpace(t *testing.T) {
	a, m := setupAppTest(t)

	m.defaults.EXPECT().DefaultSpace().Return("Home").AnyTimes()
	m.dir.EXPECT().
		FindByName(gomock.Any(), "", "Work").
		Return([]domain.Entity{{ID: "space-2", Name: "Work"}}, nil)
	m.dir.EXPECT().
		FindByName(gomock.Any(), "space-2", "Task").
		Return([]domain.Entity{{ID: "t1", Name: "Task"}}, nil)

	refs, err := a.ResolveTypes(context.Background(), []string{"Task"}, app.SpaceOptions{Name: "Work"})
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "t1", refs[0].ID())

	spaceID, ok := refs[0].SpaceID()
	require.True(t, ok)
	assert.Equal(t, "space-2", spaceID)
}

func TestApp_ResolveTypes_CarriedIDSkipsSpaceResolution(t *testing.T) {
	a, m := setupAppTest(t)

	m.defaults.EXPECT().DefaultSpace().Return("Home").AnyTimes()
	// Only the type lookup reaches the directory; the space id came
	// pre-resolved from the pipeline.
	m.dir.EXPECT().
		FindByName(gomock.Any(), "id-99", "Task").
		Return([]domain.Entity{{ID: "t1", Name: "Task"}}, nil)

	refs, err := a.ResolveTypes(context.Background(), []string{"Task"}, app.SpaceOptions{ID: "id-99"})
	require.NoError(t, err)
	assert.Equal(t, "t1", refs[0].ID())
}

func TestApp_ResolveTypes_FallsBackToDefaultSpace(t *testing.T) {
	a, m := setupAppTest(t)

	m.defaults.EXPECT().DefaultSpace().Return("Home").AnyTimes()
	m.dir.EXPECT().
		FindByName(gomock.Any(), "", "Home").
		Return([]domain.Entity{{ID: "space-1", Name: "Home"}}, nil)
	m.dir.EXPECT().
		FindByName(gomock.Any(), "space-1", "Task").
		Return([]domain.Entity{{ID: "t1", Name: "Task"}}, nil)

	_, err := a.ResolveTypes(context.Background(), []string{"Task"}, app.SpaceOptions{})
	require.NoError(t, err)
}

func TestApp_ResolveTypes_NoSpaceSourceFails(t *testing.T) {
	a, m := setupAppTest(t)

	m.defaults.EXPECT().DefaultSpace().Return("").AnyTimes()

	_, err := a.ResolveTypes(context.Background(), []string{"Task"}, app.SpaceOptions{})
	require.ErrorIs(t, err, domain.ErrMissingContext)
}

func TestApp_Spaces(t *testing.T) {
	a, m := setupAppTest(t)

	want := []domain.Entity{{ID: "space-1", Name: "Home"}}
	m.dir.EXPECT().List(gomock.Any(), "").Return(want, nil)

	entities, err := a.Spaces(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, entities)
}

func TestApp_Types_ResolvesSpaceThenLists(t *testing.T) {
	a, m := setupAppTest(t)

	m.defaults.EXPECT().DefaultSpace().Return("").AnyTimes()
	m.dir.EXPECT().
		FindByName(gomock.Any(), "", "Home").
		Return([]domain.Entity{{ID: "space-1", Name: "Home"}}, nil)
	want := []domain.Entity{{ID: "t1", Name: "Task"}}
	m.dir.EXPECT().List(gomock.Any(), "space-1").Return(want, nil)

	entities, err := a.Types(context.Background(), app.SpaceOptions{Name: "Home"})
	require.NoError(t, err)
	assert.Equal(t, want, entities)
}

func TestApp_CacheAdmin(t *testing.T) {
	a, m := setupAppTest(t)

	m.dir.EXPECT().
		FindByName(gomock.Any(), "", "Home").
		Return([]domain.Entity{{ID: "id-1", Name: "Home"}}, nil)
	m.logger.EXPECT().Info("resolver cache cleared")

	_, err := a.ResolveSpaces(context.Background(), []string{"Home"})
	require.NoError(t, err)

	stats := a.CacheStats()
	assert.Equal(t, 1, stats.Spaces.Entries)

	a.ClearCache()
	assert.Equal(t, 0, a.CacheStats().Spaces.Entries)
}
