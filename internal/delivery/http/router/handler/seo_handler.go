package handler

import (
	"log/slog"
	"net/http"

	"github.com/azez-alhoot/fannifix-hub/internal/delivery/http/response"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	domainerrors "github.com/azez-alhoot/fannifix-hub/internal/domain/errors"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/repository"
	"github.com/azez-alhoot/fannifix-hub/internal/errors"
	"github.com/azez-alhoot/fannifix-hub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// fallbackMeta keeps pages rendering when a market ships no content tree.
var fallbackMeta = entity.PageMeta{
	Title:       "فني تصليح - FanniFix",
	Description: "دليل الفنيين المعتمدين لخدمات الصيانة المنزلية",
}

// SeoHandler serves per-page metadata and marketing copy.
type SeoHandler struct {
	uc     usecase.SeoUsecase
	logger *slog.Logger
}

// NewSeoHandler is the constructor for SeoHandler, injected by Fx.
func NewSeoHandler(uc usecase.SeoUsecase, logger *slog.Logger) *SeoHandler {
	return &SeoHandler{
		uc:     uc,
		logger: logger,
	}
}

// PageMeta resolves the metadata of a page. A miss degrades to the country
// default, then to the hardcoded fallback; this endpoint never 404s.
func (h *SeoHandler) PageMeta(c echo.Context) error {
	ctx := c.Request().Context()
	countryCode := c.Param("code")

	pageType := entity.PageType(c.QueryParam("page_type"))
	if pageType == "" {
		pageType = entity.PageTypeDefault
	}

	meta, err := h.uc.PageMeta(ctx, countryCode, pageType, c.QueryParam("service_id"), c.QueryParam("area_id"))
	if err != nil && errors.Is(err, repository.ErrSeoEntryNotFound) && pageType != entity.PageTypeDefault {
		meta, err = h.uc.PageMeta(ctx, countryCode, entity.PageTypeDefault, "", "")
	}
	if err != nil {
		if errors.Is(err, repository.ErrSeoEntryNotFound) {
			return response.Success(c, http.StatusOK, fallbackMeta, "")
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meta, "")
}

// FAQs renders an FAQ set. ?type= selects the template set; ?service= and
// ?area= supply the display names substituted into the templates.
func (h *SeoHandler) FAQs(c echo.Context) error {
	faqType := entity.FAQType(c.QueryParam("type"))
	if faqType == "" {
		faqType = entity.FAQTypeDefault
	}

	faqs, err := h.uc.FAQs(c.Request().Context(), c.Param("code"), faqType, c.QueryParam("service"), c.QueryParam("area"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, faqs, "")
}

// Pricing returns the pricing copy of a market.
func (h *SeoHandler) Pricing(c echo.Context) error {
	pricing, err := h.uc.Pricing(c.Request().Context(), c.Param("code"))
	if err != nil {
		return h.contentError(err)
	}

	return response.Success(c, http.StatusOK, pricing, "")
}

// Hero returns the landing page headline copy of a market.
func (h *SeoHandler) Hero(c echo.Context) error {
	hero, err := h.uc.Hero(c.Request().Context(), c.Param("code"))
	if err != nil {
		return h.contentError(err)
	}

	return response.Success(c, http.StatusOK, hero, "")
}

// CTA returns the call-to-action copy of a market.
func (h *SeoHandler) CTA(c echo.Context) error {
	cta, err := h.uc.CTA(c.Request().Context(), c.Param("code"))
	if err != nil {
		return h.contentError(err)
	}

	return response.Success(c, http.StatusOK, cta, "")
}

func (h *SeoHandler) contentError(err error) error {
	if errors.Is(err, repository.ErrSeoEntryNotFound) {
		return domainerrors.ErrSeoContentNotFound
	}

	return errors.WithStack(err)
}
