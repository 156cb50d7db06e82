package impl

import (
	"context"
	"sort"

	"github.com/azez-alhoot/fannifix-hub/config"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	domainerrors "github.com/azez-alhoot/fannifix-hub/internal/domain/errors"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/repository"
	"github.com/azez-alhoot/fannifix-hub/internal/errors"
	"github.com/azez-alhoot/fannifix-hub/internal/usecase"
)

const fallbackFeedSize = 6

type listingService struct {
	listingRepo repository.ListingRepository
	config      *config.Config
}

// NewListingService creates the listing feed usecase.
func NewListingService(listingRepo repository.ListingRepository, cfg *config.Config) usecase.ListingUsecase {
	return &listingService{
		listingRepo: listingRepo,
		config:      cfg,
	}
}

// LatestListings returns the newest active listings, most recent first.
func (s *listingService) LatestListings(ctx context.Context, limit int) ([]*entity.Listing, error) {
	if limit <= 0 {
		limit = s.defaultFeedSize()
	}

	all, err := s.listingRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list listings")
	}

	active := make([]*entity.Listing, 0, len(all))
	for _, listing := range all {
		if listing.IsActive() {
			active = append(active, listing)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})

	if len(active) > limit {
		active = active[:limit]
	}

	return active, nil
}

func (s *listingService) defaultFeedSize() int {
	if s.config.Site != nil && s.config.Site.LatestListingsLimit > 0 {
		return s.config.Site.LatestListingsLimit
	}

	return fallbackFeedSize
}

func (s *listingService) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "find listing by id")
	}

	return listing, nil
}

func (s *listingService) ListingsByTechnician(ctx context.Context, technicianID string) ([]*entity.Listing, error) {
	listings, err := s.listingRepo.ListByTechnician(ctx, technicianID)
	if err != nil {
		return nil, errors.Wrap(err, "list listings by technician")
	}

	return listings, nil
}
