package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/azez-alhoot/fannifix-hub/config"
	"github.com/azez-alhoot/fannifix-hub/internal/delivery/http/response"
	domainerrors "github.com/azez-alhoot/fannifix-hub/internal/domain/errors"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/service"
	"github.com/azez-alhoot/fannifix-hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TechnicianHandler serves technician search, profiles and the WhatsApp QR.
type TechnicianHandler struct {
	searchUC usecase.SearchUsecase
	seoUC    usecase.SeoUsecase
	qr       service.ContactQRService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewTechnicianHandler is the constructor for TechnicianHandler, injected by Fx.
func NewTechnicianHandler(
	searchUC usecase.SearchUsecase,
	seoUC usecase.SeoUsecase,
	qr service.ContactQRService,
	cfg *config.Config,
	logger *slog.Logger,
) *TechnicianHandler {
	return &TechnicianHandler{
		searchUC: searchUC,
		seoUC:    seoUC,
		qr:       qr,
		cfg:      cfg,
		logger:   logger,
	}
}

// Search returns the active technicians matching the query parameters.
func (h *TechnicianHandler) Search(c echo.Context) error {
	filters := usecase.SearchFilters{
		ServiceID:   c.QueryParam("service_id"),
		CountryCode: c.QueryParam("country"),
		AreaID:      c.QueryParam("area_id"),
		Query:       c.QueryParam("q"),
		SortBy:      parseSortOrder(c.QueryParam("sort_by")),
	}

	technicians, err := h.searchUC.SearchTechnicians(c.Request().Context(), filters)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, technicians, "")
}

func parseSortOrder(raw string) usecase.SortOrder {
	switch usecase.SortOrder(raw) {
	case usecase.SortByReviews:
		return usecase.SortByReviews
	case usecase.SortByNewest:
		return usecase.SortByNewest
	case usecase.SortByExperience:
		return usecase.SortByExperience
	default:
		return usecase.SortByRating
	}
}

// Featured returns the featured active technicians for the home page.
func (h *TechnicianHandler) Featured(c echo.Context) error {
	technicians, err := h.searchUC.FeaturedTechnicians(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, technicians, "")
}

// profileResponse is the technician page payload: the resolved profile plus
// its schema.org structured data.
type profileResponse struct {
	*usecase.TechnicianProfile
	StructuredData map[string]any `json:"structuredData"`
}

// Profile returns a technician with resolved service/area names and the
// LocalBusiness JSON-LD of its page.
func (h *TechnicianHandler) Profile(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.searchUC.TechnicianProfile(ctx, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	var serviceName, areaName string
	if len(profile.Services) > 0 {
		serviceName = profile.Services[0].Name
	}
	if len(profile.Areas) > 0 {
		areaName = profile.Areas[0].Name
	}

	pageURL := fmt.Sprintf("%s/%s/technician/%s",
		h.cfg.Site.BaseURL, profile.Technician.CountryCode, profile.Technician.ID)

	return response.Success(c, http.StatusOK, profileResponse{
		TechnicianProfile: profile,
		StructuredData:    h.seoUC.LocalBusinessSchema(ctx, profile.Technician, serviceName, areaName, pageURL),
	}, "")
}

// WhatsAppQR renders a PNG QR code encoding the technician's wa.me deep
// link, optionally prefilled with the ?text= message.
func (h *TechnicianHandler) WhatsAppQR(c echo.Context) error {
	profile, err := h.searchUC.TechnicianProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qr.ContactQR(profile.Technician.WhatsApp, c.QueryParam("text"))
	if err != nil {
		h.logger.Error("QR generation failed",
			slog.String("technicianId", profile.Technician.ID),
			slog.Any("error", err),
		)

		return domainerrors.ErrQRGenerationFailed
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
