package handler

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/azez-alhoot/fannifix-hub/config"
	"github.com/azez-alhoot/fannifix-hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// urlSet is the sitemaps.org XML document.
type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

// SitemapHandler renders /sitemap.xml from the directory data.
type SitemapHandler struct {
	catalogUC usecase.CatalogUsecase
	searchUC  usecase.SearchUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewSitemapHandler is the constructor for SitemapHandler, injected by Fx.
func NewSitemapHandler(
	catalogUC usecase.CatalogUsecase,
	searchUC usecase.SearchUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) *SitemapHandler {
	return &SitemapHandler{
		catalogUC: catalogUC,
		searchUC:  searchUC,
		cfg:       cfg,
		logger:    logger,
	}
}

// Sitemap lists the home page, every service page, every service and area
// combination, and the profile of every active technician.
func (h *SitemapHandler) Sitemap(c echo.Context) error {
	ctx := c.Request().Context()
	base := h.cfg.Site.BaseURL
	country := h.cfg.Site.DefaultCountry

	doc := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: fmt.Sprintf("%s/%s", base, country), ChangeFreq: "daily", Priority: 1.0},
		},
	}

	services, err := h.catalogUC.ListServices(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	areas, err := h.catalogUC.ListAreas(ctx, country)
	if err != nil {
		return errors.WithStack(err)
	}

	for _, svc := range services {
		doc.URLs = append(doc.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/%s/%s", base, country, svc.Slug),
			ChangeFreq: "weekly",
			Priority:   0.9,
		})

		for _, area := range areas {
			doc.URLs = append(doc.URLs, sitemapURL{
				Loc:        fmt.Sprintf("%s/%s/%s/%s", base, country, svc.Slug, area.Slug),
				ChangeFreq: "weekly",
				Priority:   0.8,
			})
		}
	}

	// SearchTechnicians only ever returns active profiles.
	technicians, err := h.searchUC.SearchTechnicians(ctx, usecase.SearchFilters{CountryCode: country})
	if err != nil {
		return errors.WithStack(err)
	}

	for _, tech := range technicians {
		doc.URLs = append(doc.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/%s/technician/%s", base, country, tech.ID),
			ChangeFreq: "weekly",
			Priority:   0.7,
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal sitemap")
	}

	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}
