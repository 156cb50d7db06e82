package impl

import (
	"context"

	domainerrors "github.com/azez-alhoot/fannifix-hub/internal/domain/errors"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/repository"
	"github.com/azez-alhoot/fannifix-hub/internal/errors"
	"github.com/azez-alhoot/fannifix-hub/internal/usecase"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
)

type catalogService struct {
	countryRepo repository.CountryRepository
	serviceRepo repository.ServiceRepository
	areaRepo    repository.AreaRepository
	techRepo    repository.TechnicianRepository
}

// NewCatalogService creates the catalog usecase over the directory repositories.
func NewCatalogService(
	countryRepo repository.CountryRepository,
	serviceRepo repository.ServiceRepository,
	areaRepo repository.AreaRepository,
	techRepo repository.TechnicianRepository,
) usecase.CatalogUsecase {
	return &catalogService{
		countryRepo: countryRepo,
		serviceRepo: serviceRepo,
		areaRepo:    areaRepo,
		techRepo:    techRepo,
	}
}

func (s *catalogService) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	countries, err := s.countryRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list countries")
	}

	return countries, nil
}

func (s *catalogService) ListActiveCountries(ctx context.Context) ([]*entity.Country, error) {
	countries, err := s.countryRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list active countries")
	}

	return countries, nil
}

func (s *catalogService) GetCountry(ctx context.Context, code string) (*entity.Country, error) {
	country, err := s.countryRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCountryNotFound) {
			return nil, domainerrors.ErrCountryNotFound
		}

		return nil, errors.Wrap(err, "find country by code")
	}

	return country, nil
}

// CountryStats aggregates the technician figures of a country in one pass.
func (s *catalogService) CountryStats(ctx context.Context, countryCode string) (*usecase.CountryStats, error) {
	if _, err := s.GetCountry(ctx, countryCode); err != nil {
		return nil, err
	}

	technicians, err := s.techRepo.ListByCountry(ctx, countryCode)
	if err != nil {
		return nil, errors.Wrap(err, "list technicians by country")
	}

	stats := &usecase.CountryStats{Total: len(technicians)}

	var ratingSum float64
	for _, tech := range technicians {
		if tech.Verified {
			stats.Verified++
		}
		ratingSum += tech.Rating
	}

	// Guard the empty market: zero technicians means an average of 0, not NaN.
	if stats.Total > 0 {
		stats.AvgRating = ratingSum / float64(stats.Total)
	}

	return stats, nil
}

func (s *catalogService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	services, err := s.serviceRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list services")
	}

	return services, nil
}

func (s *catalogService) GetServiceBySlug(ctx context.Context, slug string) (*entity.Service, error) {
	svc, err := s.serviceRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "find service by slug")
	}

	return svc, nil
}

func (s *catalogService) ListAreas(ctx context.Context, countryCode string) ([]*entity.Area, error) {
	areas, err := s.areaRepo.ListByCountry(ctx, countryCode)
	if err != nil {
		return nil, errors.Wrap(err, "list areas by country")
	}

	return areas, nil
}

func (s *catalogService) GetAreaBySlug(ctx context.Context, slug, countryCode string) (*entity.Area, error) {
	area, err := s.areaRepo.FindBySlug(ctx, slug, countryCode)
	if err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return nil, domainerrors.ErrAreaNotFound
		}

		return nil, errors.Wrap(err, "find area by slug")
	}

	return area, nil
}

// AreasByGovernorate groups a country's areas by governorate, keeping the
// governorates in first-seen document order.
func (s *catalogService) AreasByGovernorate(ctx context.Context, countryCode string) ([]usecase.GovernorateAreas, error) {
	governorates, err := s.areaRepo.ListGovernorates(ctx, countryCode)
	if err != nil {
		return nil, errors.Wrap(err, "list governorates")
	}

	groups := make([]usecase.GovernorateAreas, 0, len(governorates))
	for _, governorate := range governorates {
		areas, err := s.areaRepo.ListByGovernorate(ctx, governorate, countryCode)
		if err != nil {
			return nil, errors.Wrap(err, "list areas by governorate")
		}

		groups = append(groups, usecase.GovernorateAreas{
			Governorate: governorate,
			Areas:       areas,
		})
	}

	return groups, nil
}
