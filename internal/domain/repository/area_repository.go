package repository

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/errors"
)

// ErrAreaNotFound is returned when no area matches the given id or slug
// within the given country.
var ErrAreaNotFound = errors.New("area not found")

// AreaRepository provides lookups over the per-country area collections.
//
// Area slugs are only unique within a country, so every lookup is scoped by
// country code. There is deliberately no unscoped slug lookup: two markets
// may define the same slug and a first-match fallback would leak records
// across countries.
type AreaRepository interface {
	// FindByID retrieves an area by id within a country.
	FindByID(ctx context.Context, id, countryCode string) (*entity.Area, error)

	// FindBySlug retrieves an area by slug within a country.
	FindBySlug(ctx context.Context, slug, countryCode string) (*entity.Area, error)

	// ListByCountry retrieves all areas of a country in load order.
	// An unknown country yields an empty slice, not an error.
	ListByCountry(ctx context.Context, countryCode string) ([]*entity.Area, error)

	// ListByGovernorate retrieves the areas of one governorate within a country.
	ListByGovernorate(ctx context.Context, governorate, countryCode string) ([]*entity.Area, error)

	// ListGovernorates retrieves the distinct governorate names of a country
	// in first-seen order.
	ListGovernorates(ctx context.Context, countryCode string) ([]string, error)
}
