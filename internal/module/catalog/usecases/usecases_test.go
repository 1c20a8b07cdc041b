package usecases_test

import (
	"context"
	"testing"

	"studio-booking-service/internal/module/catalog/mocks"
	"studio-booking-service/internal/module/catalog/models/entity"
	"studio-booking-service/internal/module/catalog/usecases"
	log_internal "studio-booking-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

func setup() {
	repoMock = new(mocks.Repositories)
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	uc = usecases.New(repoMock, log_internal.GetLogger())
}

func teardown() {
	repoMock = nil
	uc = nil
}

func catalogFixture() []entity.Package {
	return []entity.Package{
		{ID: 1, Name: "Wedding Essential", Category: "wedding"},
		{ID: 2, Name: "Wedding Premium", Category: "wedding"},
		{ID: 3, Name: "Wedding Royal", Category: "Wedding"},
		{ID: 4, Name: "Portrait Studio", Category: "portrait"},
		{ID: 5, Name: "Portrait Outdoor", Category: "portrait"},
	}
}

func TestMatchPackages(t *testing.T) {
	pkgs := catalogFixture()

	t.Run("filters by category", func(t *testing.T) {
		matched := usecases.MatchPackages(pkgs, "wedding")
		assert.Len(t, matched, 3)
		for _, pkg := range matched {
			assert.Contains(t, []int64{1, 2, 3}, pkg.ID)
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		matched := usecases.MatchPackages(pkgs, "WEDDING")
		assert.Len(t, matched, 3)
	})

	t.Run("other returns everything unfiltered", func(t *testing.T) {
		matched := usecases.MatchPackages(pkgs, entity.EventTypeOther)
		assert.Equal(t, pkgs, matched)
	})

	t.Run("empty event type returns everything", func(t *testing.T) {
		matched := usecases.MatchPackages(pkgs, "")
		assert.Equal(t, pkgs, matched)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		matched := usecases.MatchPackages(pkgs, "commercial")
		assert.Empty(t, matched)
	})
}

func TestListPackages(t *testing.T) {
	ctx := context.Background()

	t.Run("serves matches from db on cache miss", func(t *testing.T) {
		setup()
		defer teardown()

		pkgs := catalogFixture()
		repoMock.On("GetCachedCatalog", ctx).Return(nil, false)
		repoMock.On("FindActivePackages", ctx).Return(pkgs, nil)
		repoMock.On("SetCachedCatalog", ctx, pkgs).Return(nil)

		resp, err := uc.ListPackages(ctx, "portrait")

		assert.NoError(t, err)
		assert.False(t, resp.Fallback)
		assert.Len(t, resp.Packages, 2)
	})

	t.Run("serves from cache when present", func(t *testing.T) {
		setup()
		defer teardown()

		pkgs := catalogFixture()
		repoMock.On("GetCachedCatalog", ctx).Return(pkgs, true)

		resp, err := uc.ListPackages(ctx, "wedding")

		assert.NoError(t, err)
		assert.Len(t, resp.Packages, 3)
		repoMock.AssertNotCalled(t, "FindActivePackages", ctx)
	})

	t.Run("falls back to full catalog when nothing matches", func(t *testing.T) {
		setup()
		defer teardown()

		pkgs := catalogFixture()
		repoMock.On("GetCachedCatalog", ctx).Return(pkgs, true)

		resp, err := uc.ListPackages(ctx, "commercial")

		assert.NoError(t, err)
		assert.True(t, resp.Fallback)
		assert.Len(t, resp.Packages, len(pkgs))
	})

	t.Run("empty catalog stays empty without fallback", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetCachedCatalog", ctx).Return([]entity.Package{}, true)

		resp, err := uc.ListPackages(ctx, "wedding")

		assert.NoError(t, err)
		assert.False(t, resp.Fallback)
		assert.Empty(t, resp.Packages)
	})
}
