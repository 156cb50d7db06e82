package jsonstore

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/repository"
)

type listingRepository struct {
	store *Store
}

// NewListingRepository creates a listing repository over the loaded store.
func NewListingRepository(store *Store) repository.ListingRepository {
	return &listingRepository{store: store}
}

func (r *listingRepository) FindByID(_ context.Context, id string) (*entity.Listing, error) {
	listing, ok := r.store.listingByID[id]
	if !ok {
		return nil, repository.ErrListingNotFound
	}

	return listing, nil
}

func (r *listingRepository) ListAll(_ context.Context) ([]*entity.Listing, error) {
	out := make([]*entity.Listing, len(r.store.listings))
	copy(out, r.store.listings)

	return out, nil
}

func (r *listingRepository) ListActiveByCountry(_ context.Context, countryCode string) ([]*entity.Listing, error) {
	var out []*entity.Listing
	for _, listing := range r.store.listings {
		if listing.CountryCode == countryCode && listing.IsActive() {
			out = append(out, listing)
		}
	}

	return out, nil
}

func (r *listingRepository) ListByTechnician(_ context.Context, technicianID string) ([]*entity.Listing, error) {
	var out []*entity.Listing
	for _, listing := range r.store.listings {
		if listing.TechnicianID == technicianID {
			out = append(out, listing)
		}
	}

	return out, nil
}
