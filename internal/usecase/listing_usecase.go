package usecase

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
)

// ListingUsecase defines the listing feed use cases.
type ListingUsecase interface {
	// LatestListings returns the newest active listings, most recent first.
	// A non-positive limit falls back to the configured default feed size.
	LatestListings(ctx context.Context, limit int) ([]*entity.Listing, error)

	// GetListing retrieves a single listing by id.
	GetListing(ctx context.Context, id string) (*entity.Listing, error)

	// ListingsByTechnician returns all listings referencing a technician.
	ListingsByTechnician(ctx context.Context, technicianID string) ([]*entity.Listing, error)
}
