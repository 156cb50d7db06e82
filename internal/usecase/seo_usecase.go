package usecase

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
)

// BreadcrumbItem is one entry of a breadcrumb trail.
type BreadcrumbItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SeoUsecase resolves per-page metadata and marketing copy from the
// per-country content trees. Every method degrades gracefully: a missing
// country or entry yields a not-found error or an empty result, never a
// panic, and callers fall back to hardcoded defaults so pages always render.
type SeoUsecase interface {
	// PageMeta resolves title/description/keywords for a page. serviceID and
	// areaID are consulted according to pageType; an entry missing at any
	// level returns ErrSeoEntryNotFound via the repository sentinel.
	PageMeta(ctx context.Context, countryCode string, pageType entity.PageType, serviceID, areaID string) (*entity.PageMeta, error)

	// FAQs renders the FAQ template set of the given type, substituting
	// {service} and {area} placeholders with the given names. Missing
	// content or missing names yield an empty slice.
	FAQs(ctx context.Context, countryCode string, faqType entity.FAQType, serviceName, areaName string) ([]entity.FAQ, error)

	Pricing(ctx context.Context, countryCode string) (*entity.PricingContent, error)
	Hero(ctx context.Context, countryCode string) (*entity.HeroContent, error)
	CTA(ctx context.Context, countryCode string) (*entity.CTAContent, error)

	// LocalBusinessSchema builds the schema.org LocalBusiness JSON-LD for a
	// technician profile page.
	LocalBusinessSchema(ctx context.Context, tech *entity.Technician, serviceName, areaName, pageURL string) map[string]any

	// ServiceSchema builds the schema.org Service JSON-LD for a service page.
	ServiceSchema(ctx context.Context, svc *entity.Service) map[string]any

	// BreadcrumbSchema builds the schema.org BreadcrumbList JSON-LD.
	BreadcrumbSchema(ctx context.Context, items []BreadcrumbItem) map[string]any
}
