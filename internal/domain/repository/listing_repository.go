package repository

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/errors"
)

// ErrListingNotFound is returned when no listing matches the given id.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository provides lookups over the listing collection.
type ListingRepository interface {
	// FindByID retrieves a listing by id regardless of status.
	FindByID(ctx context.Context, id string) (*entity.Listing, error)

	// ListAll retrieves every listing in load order.
	ListAll(ctx context.Context) ([]*entity.Listing, error)

	// ListActiveByCountry retrieves the active listings of a country in load order.
	ListActiveByCountry(ctx context.Context, countryCode string) ([]*entity.Listing, error)

	// ListByTechnician retrieves all listings referencing a technician.
	ListByTechnician(ctx context.Context, technicianID string) ([]*entity.Listing, error)
}
