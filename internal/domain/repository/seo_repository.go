package repository

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/errors"
)

// ErrSeoDocumentNotFound is returned when a country has no SEO content tree.
var ErrSeoDocumentNotFound = errors.New("seo document not found")

// ErrSeoEntryNotFound is returned when a document exists but has no entry
// for the requested page.
var ErrSeoEntryNotFound = errors.New("seo entry not found")

// SeoRepository provides access to the per-country SEO content trees.
type SeoRepository interface {
	// FindByCountry retrieves the SEO content tree of a country.
	// Returns ErrSeoDocumentNotFound when the country ships no tree;
	// callers degrade to hardcoded defaults, they never fail the page.
	FindByCountry(ctx context.Context, countryCode string) (*entity.SeoDocument, error)
}
