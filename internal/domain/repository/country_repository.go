// Package repository defines the interfaces for the read-only directory data.
// The collections behind these interfaces are loaded once at startup from
// static JSON and never mutated; there is no write path from the public site.
package repository

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/errors"
)

// ErrCountryNotFound is returned when no country matches the given code.
var ErrCountryNotFound = errors.New("country not found")

// CountryRepository provides lookups over the country collection.
type CountryRepository interface {
	// FindByCode retrieves a country by its two-letter market code.
	// Returns ErrCountryNotFound if the code is unknown.
	FindByCode(ctx context.Context, code string) (*entity.Country, error)

	// ListAll retrieves every country in load order.
	ListAll(ctx context.Context) ([]*entity.Country, error)

	// ListActive retrieves only the countries open for business.
	ListActive(ctx context.Context) ([]*entity.Country, error)
}
