package usecase

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
)

// CountryStats are the per-country aggregate figures shown on market pages.
type CountryStats struct {
	Total     int     `json:"total"`
	Verified  int     `json:"verified"`
	AvgRating float64 `json:"avgRating"`
}

// GovernorateAreas groups the areas of one governorate.
type GovernorateAreas struct {
	Governorate string         `json:"governorate"`
	Areas       []*entity.Area `json:"areas"`
}

// CatalogUsecase defines the read surface over countries, services and areas.
type CatalogUsecase interface {
	ListCountries(ctx context.Context) ([]*entity.Country, error)
	ListActiveCountries(ctx context.Context) ([]*entity.Country, error)
	GetCountry(ctx context.Context, code string) (*entity.Country, error)

	// CountryStats aggregates the technician figures of a country in one
	// pass. A country with zero technicians yields an average rating of 0.
	CountryStats(ctx context.Context, countryCode string) (*CountryStats, error)

	ListServices(ctx context.Context) ([]*entity.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*entity.Service, error)

	ListAreas(ctx context.Context, countryCode string) ([]*entity.Area, error)
	GetAreaBySlug(ctx context.Context, slug, countryCode string) (*entity.Area, error)

	// AreasByGovernorate groups a country's areas by governorate in
	// first-seen order. Areas without a governorate are omitted.
	AreasByGovernorate(ctx context.Context, countryCode string) ([]GovernorateAreas, error)
}
