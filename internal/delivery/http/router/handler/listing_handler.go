package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/azez-alhoot/fannifix-hub/internal/delivery/http/response"
	"github.com/azez-alhoot/fannifix-hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler serves the listing feed endpoints.
type ListingHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.ListingUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		uc:     uc,
		logger: logger,
	}
}

// Latest returns the newest active listings. ?limit=N caps the feed; an
// absent or invalid limit uses the configured default.
func (h *ListingHandler) Latest(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a number")
		}
		limit = parsed
	}

	listings, err := h.uc.LatestListings(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// Get returns a single listing by id.
func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.uc.GetListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// ByTechnician returns every listing referencing a technician.
func (h *ListingHandler) ByTechnician(c echo.Context) error {
	listings, err := h.uc.ListingsByTechnician(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}
