package impl

import (
	"context"
	"fmt"

	"github.com/azez-alhoot/fannifix-hub/config"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/repository"
	"github.com/azez-alhoot/fannifix-hub/internal/errors"
	"github.com/azez-alhoot/fannifix-hub/internal/usecase"
	"github.com/azez-alhoot/fannifix-hub/internal/util"
)

const siteName = "فني تصليح - FanniFix"

type seoService struct {
	seoRepo repository.SeoRepository
	config  *config.Config
}

// NewSeoService creates the SEO content usecase.
func NewSeoService(seoRepo repository.SeoRepository, cfg *config.Config) usecase.SeoUsecase {
	return &seoService{
		seoRepo: seoRepo,
		config:  cfg,
	}
}

// PageMeta resolves the metadata entry for a page. The lookup never falls
// through to a broader variant: a service_area page with no entry for its
// exact service and area pair misses, and the caller renders its default.
func (s *seoService) PageMeta(ctx context.Context, countryCode string, pageType entity.PageType, serviceID, areaID string) (*entity.PageMeta, error) {
	doc, err := s.seoRepo.FindByCountry(ctx, countryCode)
	if err != nil {
		if errors.Is(err, repository.ErrSeoDocumentNotFound) {
			return nil, repository.ErrSeoEntryNotFound
		}

		return nil, errors.Wrap(err, "find seo document")
	}

	switch pageType {
	case entity.PageTypeService:
		if meta, ok := doc.Services[serviceID]; ok {
			return &meta, nil
		}
	case entity.PageTypeArea:
		if meta, ok := doc.Areas[areaID]; ok {
			return &meta, nil
		}
	case entity.PageTypeServiceArea:
		if byArea, ok := doc.ServiceAreas[serviceID]; ok {
			if meta, ok := byArea[areaID]; ok {
				return &meta, nil
			}
		}
	case entity.PageTypeDefault:
		meta := doc.Default

		return &meta, nil
	}

	return nil, repository.ErrSeoEntryNotFound
}

// FAQs renders the FAQ set of the given type. Template sets substitute
// {service} and {area} with the given names; a template set whose names are
// missing renders empty rather than leaking placeholders.
func (s *seoService) FAQs(ctx context.Context, countryCode string, faqType entity.FAQType, serviceName, areaName string) ([]entity.FAQ, error) {
	doc, err := s.seoRepo.FindByCountry(ctx, countryCode)
	if err != nil {
		if errors.Is(err, repository.ErrSeoDocumentNotFound) {
			return []entity.FAQ{}, nil
		}

		return nil, errors.Wrap(err, "find seo document")
	}

	switch faqType {
	case entity.FAQTypeService:
		if serviceName == "" {
			return []entity.FAQ{}, nil
		}

		return renderFAQs(doc.Content.FAQs.Service, serviceName, areaName), nil
	case entity.FAQTypeServiceArea:
		if serviceName == "" || areaName == "" {
			return []entity.FAQ{}, nil
		}

		return renderFAQs(doc.Content.FAQs.ServiceArea, serviceName, areaName), nil
	default:
		faqs := make([]entity.FAQ, len(doc.Content.FAQs.Default))
		copy(faqs, doc.Content.FAQs.Default)

		return faqs, nil
	}
}

func renderFAQs(templates []entity.FAQTemplate, serviceName, areaName string) []entity.FAQ {
	tokens := map[string]string{
		"service": serviceName,
		"area":    areaName,
	}

	faqs := make([]entity.FAQ, 0, len(templates))
	for _, tpl := range templates {
		faqs = append(faqs, entity.FAQ{
			Question: util.ReplaceTokens(tpl.QuestionTemplate, tokens),
			Answer:   util.ReplaceTokens(tpl.AnswerTemplate, tokens),
		})
	}

	return faqs
}

func (s *seoService) Pricing(ctx context.Context, countryCode string) (*entity.PricingContent, error) {
	doc, err := s.findDocument(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	pricing := doc.Content.Pricing

	return &pricing, nil
}

func (s *seoService) Hero(ctx context.Context, countryCode string) (*entity.HeroContent, error) {
	doc, err := s.findDocument(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	hero := doc.Content.Hero

	return &hero, nil
}

func (s *seoService) CTA(ctx context.Context, countryCode string) (*entity.CTAContent, error) {
	doc, err := s.findDocument(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	cta := doc.Content.CTA

	return &cta, nil
}

func (s *seoService) findDocument(ctx context.Context, countryCode string) (*entity.SeoDocument, error) {
	doc, err := s.seoRepo.FindByCountry(ctx, countryCode)
	if err != nil {
		if errors.Is(err, repository.ErrSeoDocumentNotFound) {
			return nil, repository.ErrSeoEntryNotFound
		}

		return nil, errors.Wrap(err, "find seo document")
	}

	return doc, nil
}

// LocalBusinessSchema builds the schema.org LocalBusiness JSON-LD for a
// technician profile page.
func (s *seoService) LocalBusinessSchema(_ context.Context, tech *entity.Technician, serviceName, areaName, pageURL string) map[string]any {
	if pageURL == "" {
		pageURL = s.baseURL()
	}

	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "LocalBusiness",
		"name":        tech.Name,
		"description": tech.Description,
		"telephone":   tech.Phone,
		"url":         pageURL,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": areaName,
			"addressCountry":  "KW",
			"addressRegion":   "الكويت",
		},
		"aggregateRating": map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": tech.Rating,
			"reviewCount": tech.ReviewsCount,
			"bestRating":  5,
			"worstRating": 1,
		},
		"areaServed": map[string]any{
			"@type":          "City",
			"name":           areaName,
			"addressCountry": "KW",
		},
		"serviceType": serviceName,
		"priceRange":  "$$",
	}
}

// ServiceSchema builds the schema.org Service JSON-LD for a service page.
func (s *seoService) ServiceSchema(_ context.Context, svc *entity.Service) map[string]any {
	base := s.baseURL()
	country := s.defaultCountry()

	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        svc.Name,
		"description": svc.Description,
		"provider": map[string]any{
			"@type": "Organization",
			"name":  siteName,
			"url":   base,
		},
		"areaServed": map[string]any{
			"@type":          "Country",
			"name":           "الكويت",
			"addressCountry": "KW",
		},
		"url": fmt.Sprintf("%s/%s/%s", base, country, svc.Slug),
	}
}

// BreadcrumbSchema builds the schema.org BreadcrumbList JSON-LD.
func (s *seoService) BreadcrumbSchema(_ context.Context, items []usecase.BreadcrumbItem) map[string]any {
	elements := make([]map[string]any, 0, len(items))
	for i, item := range items {
		elements = append(elements, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"item":     item.URL,
		})
	}

	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}

func (s *seoService) baseURL() string {
	if s.config.Site != nil && s.config.Site.BaseURL != "" {
		return s.config.Site.BaseURL
	}

	return "https://fannifix.com"
}

func (s *seoService) defaultCountry() string {
	if s.config.Site != nil && s.config.Site.DefaultCountry != "" {
		return s.config.Site.DefaultCountry
	}

	return "kw"
}
