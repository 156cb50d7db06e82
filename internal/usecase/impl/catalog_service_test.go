package impl

import (
	"context"
	"testing"

	domainerrors "github.com/azez-alhoot/fannifix-hub/internal/domain/errors"
	"github.com/azez-alhoot/fannifix-hub/internal/infra/persistence/jsonstore"
	"github.com/azez-alhoot/fannifix-hub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) usecase.CatalogUsecase {
	t.Helper()
	store := newTestStore(t)

	return NewCatalogService(
		jsonstore.NewCountryRepository(store),
		jsonstore.NewServiceRepository(store),
		jsonstore.NewAreaRepository(store),
		jsonstore.NewTechnicianRepository(store),
	)
}

func TestListCountries(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	all, err := svc.ListCountries(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.ListActiveCountries(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "kw", active[0].Code)
}

func TestGetCountry(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	country, err := svc.GetCountry(ctx, "kw")
	require.NoError(t, err)
	assert.Equal(t, "الكويت", country.Name)

	_, err = svc.GetCountry(ctx, "qa")
	assert.ErrorIs(t, err, domainerrors.ErrCountryNotFound)
}

func TestCountryStats(t *testing.T) {
	svc := newCatalogService(t)

	stats, err := svc.CountryStats(context.Background(), "kw")
	require.NoError(t, err)

	// All four technicians count, regardless of status.
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Verified)
	assert.InDelta(t, (4.8+4.2+4.8+5.0)/4, stats.AvgRating, 1e-9)
}

func TestCountryStats_EmptyMarket(t *testing.T) {
	svc := newCatalogService(t)

	stats, err := svc.CountryStats(context.Background(), "sa")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Verified)
	assert.Zero(t, stats.AvgRating)
}

func TestCountryStats_UnknownCountry(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.CountryStats(context.Background(), "xx")
	assert.ErrorIs(t, err, domainerrors.ErrCountryNotFound)
}

func TestGetServiceBySlug(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	found, err := svc.GetServiceBySlug(ctx, "ac-repair")
	require.NoError(t, err)
	assert.Equal(t, "svc-ac", found.ID)

	_, err = svc.GetServiceBySlug(ctx, "electrician")
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestListAreas(t *testing.T) {
	svc := newCatalogService(t)

	areas, err := svc.ListAreas(context.Background(), "kw")
	require.NoError(t, err)
	assert.Len(t, areas, 3)
}

func TestGetAreaBySlug_ScopedByCountry(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	area, err := svc.GetAreaBySlug(ctx, "hawalli", "kw")
	require.NoError(t, err)
	assert.Equal(t, "حولي", area.Name)

	// The slug exists in kw, not in sa; lookups never cross markets.
	_, err = svc.GetAreaBySlug(ctx, "hawalli", "sa")
	assert.ErrorIs(t, err, domainerrors.ErrAreaNotFound)
}

func TestAreasByGovernorate(t *testing.T) {
	svc := newCatalogService(t)

	groups, err := svc.AreasByGovernorate(context.Background(), "kw")
	require.NoError(t, err)

	// Governorates appear in first-seen document order.
	require.Len(t, groups, 2)
	assert.Equal(t, "محافظة حولي", groups[0].Governorate)
	assert.Len(t, groups[0].Areas, 2)
	assert.Equal(t, "محافظة العاصمة", groups[1].Governorate)
	assert.Len(t, groups[1].Areas, 1)
}
