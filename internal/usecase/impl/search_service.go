package impl

import (
	"context"
	"sort"
	"strings"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	domainerrors "github.com/azez-alhoot/fannifix-hub/internal/domain/errors"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/repository"
	"github.com/azez-alhoot/fannifix-hub/internal/errors"
	"github.com/azez-alhoot/fannifix-hub/internal/usecase"
	"github.com/azez-alhoot/fannifix-hub/internal/util"
)

type searchService struct {
	techRepo    repository.TechnicianRepository
	serviceRepo repository.ServiceRepository
	areaRepo    repository.AreaRepository
}

// NewSearchService creates the technician search usecase.
func NewSearchService(
	techRepo repository.TechnicianRepository,
	serviceRepo repository.ServiceRepository,
	areaRepo repository.AreaRepository,
) usecase.SearchUsecase {
	return &searchService{
		techRepo:    techRepo,
		serviceRepo: serviceRepo,
		areaRepo:    areaRepo,
	}
}

// SearchTechnicians applies the filters with logical AND over the active
// technicians, then sorts. Only active profiles are ever considered; the
// status rule is an invariant of the public site, not a filter option.
func (s *searchService) SearchTechnicians(ctx context.Context, filters usecase.SearchFilters) ([]*entity.Technician, error) {
	all, err := s.techRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list technicians")
	}

	results := make([]*entity.Technician, 0, len(all))
	for _, tech := range all {
		if !tech.IsActive() {
			continue
		}
		if filters.CountryCode != "" && tech.CountryCode != filters.CountryCode {
			continue
		}
		if filters.ServiceID != "" && !tech.ServesService(filters.ServiceID) {
			continue
		}
		if filters.AreaID != "" && !tech.ServesArea(filters.AreaID) {
			continue
		}
		if filters.Query != "" && !matchesQuery(tech, filters.Query) {
			continue
		}

		results = append(results, tech)
	}

	sortTechnicians(results, filters.SortBy)

	return results, nil
}

func matchesQuery(tech *entity.Technician, query string) bool {
	q := strings.ToLower(query)

	return strings.Contains(strings.ToLower(tech.Name), q) ||
		strings.Contains(strings.ToLower(tech.Description), q)
}

// sortTechnicians orders results in place. The sort is stable, so ties keep
// the original document order.
func sortTechnicians(results []*entity.Technician, sortBy usecase.SortOrder) {
	switch sortBy {
	case usecase.SortByReviews:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].ReviewsCount > results[j].ReviewsCount
		})
	case usecase.SortByExperience:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].ExperienceYears > results[j].ExperienceYears
		})
	case usecase.SortByNewest:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		})
	default:
		// SortByRating and the unset zero value both sort by rating.
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	}
}

func (s *searchService) FeaturedTechnicians(ctx context.Context) ([]*entity.Technician, error) {
	featured, err := s.techRepo.ListFeatured(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list featured technicians")
	}

	return featured, nil
}

// TechnicianProfile resolves a technician together with its service and area
// records. A dangling service or area id is skipped rather than failing the
// page; the data layer does not enforce referential integrity.
func (s *searchService) TechnicianProfile(ctx context.Context, id string) (*usecase.TechnicianProfile, error) {
	tech, err := s.techRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTechnicianNotFound) {
			return nil, domainerrors.ErrTechnicianNotFound
		}

		return nil, errors.Wrap(err, "find technician by id")
	}

	profile := &usecase.TechnicianProfile{
		Technician:   tech,
		Services:     make([]*entity.Service, 0, len(tech.ServiceIDs)),
		Areas:        make([]*entity.Area, 0, len(tech.AreaIDs)),
		WhatsAppLink: util.WhatsAppLink(tech.WhatsApp, ""),
	}

	for _, serviceID := range tech.ServiceIDs {
		svc, err := s.serviceRepo.FindByID(ctx, serviceID)
		if err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "resolve technician service")
		}
		profile.Services = append(profile.Services, svc)
	}

	for _, areaID := range tech.AreaIDs {
		area, err := s.areaRepo.FindByID(ctx, areaID, tech.CountryCode)
		if err != nil {
			if errors.Is(err, repository.ErrAreaNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "resolve technician area")
		}
		profile.Areas = append(profile.Areas, area)
	}

	return profile, nil
}
