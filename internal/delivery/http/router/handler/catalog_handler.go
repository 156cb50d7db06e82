// Package handler contains the HTTP handlers for the directory API.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/azez-alhoot/fannifix-hub/internal/delivery/http/response"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the country, service and area endpoints.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCountries returns all supported markets, or only the active ones when
// ?active=true is given.
func (h *CatalogHandler) ListCountries(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		countries []*entity.Country
		err       error
	)

	if c.QueryParam("active") == "true" {
		countries, err = h.uc.ListActiveCountries(ctx)
	} else {
		countries, err = h.uc.ListCountries(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countries, "")
}

// GetCountry returns a single market by its code.
func (h *CatalogHandler) GetCountry(c echo.Context) error {
	country, err := h.uc.GetCountry(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, country, "")
}

// CountryStats returns the aggregated technician figures of a market.
func (h *CatalogHandler) CountryStats(c echo.Context) error {
	stats, err := h.uc.CountryStats(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// ListServices returns the global service catalog.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.uc.ListServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "")
}

// GetServiceBySlug returns a single service by its URL slug.
func (h *CatalogHandler) GetServiceBySlug(c echo.Context) error {
	svc, err := h.uc.GetServiceBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "")
}

// ListAreas returns the areas of a market. ?grouped=true groups them by
// governorate; ?governorate=X filters to one governorate. The two combine:
// grouped with a governorate returns just that group.
func (h *CatalogHandler) ListAreas(c echo.Context) error {
	ctx := c.Request().Context()
	countryCode := c.Param("code")
	governorate := c.QueryParam("governorate")

	if c.QueryParam("grouped") == "true" {
		groups, err := h.uc.AreasByGovernorate(ctx, countryCode)
		if err != nil {
			return errors.WithStack(err)
		}

		if governorate != "" {
			filtered := make([]usecase.GovernorateAreas, 0, 1)
			for _, group := range groups {
				if group.Governorate == governorate {
					filtered = append(filtered, group)
				}
			}
			groups = filtered
		}

		return response.Success(c, http.StatusOK, groups, "")
	}

	areas, err := h.uc.ListAreas(ctx, countryCode)
	if err != nil {
		return errors.WithStack(err)
	}

	if governorate != "" {
		filtered := make([]*entity.Area, 0, len(areas))
		for _, area := range areas {
			if area.Governorate == governorate {
				filtered = append(filtered, area)
			}
		}
		areas = filtered
	}

	return response.Success(c, http.StatusOK, areas, "")
}

// GetAreaBySlug returns a single area; slugs are only unique per market, so
// the country code is part of the lookup.
func (h *CatalogHandler) GetAreaBySlug(c echo.Context) error {
	area, err := h.uc.GetAreaBySlug(c.Request().Context(), c.Param("slug"), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, area, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
