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

func newListingService(t *testing.T) usecase.ListingUsecase {
	t.Helper()
	store := newTestStore(t)

	return NewListingService(jsonstore.NewListingRepository(store), newTestConfig())
}

func TestLatestListings_NewestActiveFirst(t *testing.T) {
	svc := newListingService(t)

	listings, err := svc.LatestListings(context.Background(), 10)
	require.NoError(t, err)

	// l-expired is newer than everything but never appears.
	require.Len(t, listings, 3)
	assert.Equal(t, "l-new", listings[0].ID)
	assert.Equal(t, "l-mid", listings[1].ID)
	assert.Equal(t, "l-old", listings[2].ID)
}

func TestLatestListings_TruncatesToLimit(t *testing.T) {
	svc := newListingService(t)

	listings, err := svc.LatestListings(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, listings, 1)
	assert.Equal(t, "l-new", listings[0].ID)
}

func TestLatestListings_DefaultLimitFromConfig(t *testing.T) {
	svc := newListingService(t)

	listings, err := svc.LatestListings(context.Background(), 0)
	require.NoError(t, err)

	// The fixture config caps the feed at 2.
	assert.Len(t, listings, 2)
}

func TestGetListing(t *testing.T) {
	svc := newListingService(t)
	ctx := context.Background()

	listing, err := svc.GetListing(ctx, "l-old")
	require.NoError(t, err)
	assert.Equal(t, "تصليح تكييف فوري", listing.Title)

	_, err = svc.GetListing(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingsByTechnician(t *testing.T) {
	svc := newListingService(t)

	listings, err := svc.ListingsByTechnician(context.Background(), "t-ac-hawalli")
	require.NoError(t, err)

	// Includes the expired one; the technician page shows full history.
	assert.Len(t, listings, 2)
}
