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

func newSearchService(t *testing.T) usecase.SearchUsecase {
	t.Helper()
	store := newTestStore(t)

	return NewSearchService(
		jsonstore.NewTechnicianRepository(store),
		jsonstore.NewServiceRepository(store),
		jsonstore.NewAreaRepository(store),
	)
}

func TestSearchTechnicians_ExcludesNonActive(t *testing.T) {
	svc := newSearchService(t)

	results, err := svc.SearchTechnicians(context.Background(), usecase.SearchFilters{})
	require.NoError(t, err)

	require.Len(t, results, 3)
	for _, tech := range results {
		assert.NotEqual(t, "t-pending", tech.ID)
		assert.True(t, tech.IsActive())
	}
}

func TestSearchTechnicians_DefaultSortIsRatingDesc(t *testing.T) {
	svc := newSearchService(t)

	results, err := svc.SearchTechnicians(context.Background(), usecase.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Rating, results[i].Rating)
	}

	// 4.8 vs 4.8 ties keep document order.
	assert.Equal(t, "t-ac-hawalli", results[0].ID)
	assert.Equal(t, "t-ac-salmiya", results[1].ID)
	assert.Equal(t, "t-plumber-city", results[2].ID)
}

func TestSearchTechnicians_ServiceFilter(t *testing.T) {
	svc := newSearchService(t)

	results, err := svc.SearchTechnicians(context.Background(), usecase.SearchFilters{ServiceID: "svc-ac"})
	require.NoError(t, err)

	require.Len(t, results, 2)
	for _, tech := range results {
		assert.True(t, tech.ServesService("svc-ac"))
	}
}

func TestSearchTechnicians_FiltersAreANDCombined(t *testing.T) {
	svc := newSearchService(t)
	ctx := context.Background()

	broad, err := svc.SearchTechnicians(ctx, usecase.SearchFilters{ServiceID: "svc-ac"})
	require.NoError(t, err)

	narrow, err := svc.SearchTechnicians(ctx, usecase.SearchFilters{ServiceID: "svc-ac", AreaID: "hawalli"})
	require.NoError(t, err)

	// Adding a filter can only shrink the result set.
	assert.LessOrEqual(t, len(narrow), len(broad))
	require.Len(t, narrow, 1)
	assert.Equal(t, "t-ac-hawalli", narrow[0].ID)
}

func TestSearchTechnicians_QueryMatchesNameAndDescription(t *testing.T) {
	svc := newSearchService(t)
	ctx := context.Background()

	byName, err := svc.SearchTechnicians(ctx, usecase.SearchFilters{Query: "السالمية"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "t-ac-salmiya", byName[0].ID)

	byDescription, err := svc.SearchTechnicians(ctx, usecase.SearchFilters{Query: "مجاري"})
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "t-plumber-city", byDescription[0].ID)

	none, err := svc.SearchTechnicians(ctx, usecase.SearchFilters{Query: "غير موجود إطلاقا"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchTechnicians_SortOrders(t *testing.T) {
	svc := newSearchService(t)
	ctx := context.Background()

	byReviews, err := svc.SearchTechnicians(ctx, usecase.SearchFilters{SortBy: usecase.SortByReviews})
	require.NoError(t, err)
	require.Len(t, byReviews, 3)
	assert.Equal(t, "t-ac-hawalli", byReviews[0].ID)
	assert.Equal(t, "t-ac-salmiya", byReviews[1].ID)

	byExperience, err := svc.SearchTechnicians(ctx, usecase.SearchFilters{SortBy: usecase.SortByExperience})
	require.NoError(t, err)
	assert.Equal(t, "t-ac-salmiya", byExperience[0].ID)

	byNewest, err := svc.SearchTechnicians(ctx, usecase.SearchFilters{SortBy: usecase.SortByNewest})
	require.NoError(t, err)
	assert.Equal(t, "t-ac-salmiya", byNewest[0].ID)
	assert.Equal(t, "t-plumber-city", byNewest[1].ID)
	assert.Equal(t, "t-ac-hawalli", byNewest[2].ID)
}

func TestSearchTechnicians_CountryFilter(t *testing.T) {
	svc := newSearchService(t)

	results, err := svc.SearchTechnicians(context.Background(), usecase.SearchFilters{CountryCode: "sa"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFeaturedTechnicians_ActiveOnly(t *testing.T) {
	svc := newSearchService(t)

	featured, err := svc.FeaturedTechnicians(context.Background())
	require.NoError(t, err)

	// t-pending is featured but not active, so only one profile qualifies.
	require.Len(t, featured, 1)
	assert.Equal(t, "t-ac-hawalli", featured[0].ID)
}

func TestTechnicianProfile_ResolvesReferences(t *testing.T) {
	svc := newSearchService(t)

	profile, err := svc.TechnicianProfile(context.Background(), "t-ac-hawalli")
	require.NoError(t, err)

	assert.Equal(t, "t-ac-hawalli", profile.Technician.ID)
	require.Len(t, profile.Services, 1)
	assert.Equal(t, "تصليح تكييف", profile.Services[0].Name)
	require.Len(t, profile.Areas, 2)
	assert.Equal(t, "حولي", profile.Areas[0].Name)
	assert.Contains(t, profile.WhatsAppLink, "wa.me/96550000001")
}

func TestTechnicianProfile_NotFound(t *testing.T) {
	svc := newSearchService(t)

	_, err := svc.TechnicianProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrTechnicianNotFound)
}
