package usecase

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
)

// SortOrder selects the ordering of search results.
type SortOrder string

const (
	SortByRating     SortOrder = "rating"
	SortByReviews    SortOrder = "reviews"
	SortByNewest     SortOrder = "newest"
	SortByExperience SortOrder = "experience"
)

// SearchFilters represents the optional search criteria. All filters combine
// with logical AND; the zero value matches every active technician.
type SearchFilters struct {
	ServiceID   string    `json:"serviceId,omitempty"`
	CountryCode string    `json:"countryCode,omitempty"`
	AreaID      string    `json:"areaId,omitempty"`
	Query       string    `json:"query,omitempty"`
	SortBy      SortOrder `json:"sortBy,omitempty"`
}

// TechnicianProfile is a technician enriched with its resolved services and
// areas plus the WhatsApp deep link used by the contact button.
type TechnicianProfile struct {
	Technician   *entity.Technician `json:"technician"`
	Services     []*entity.Service  `json:"services"`
	Areas        []*entity.Area     `json:"areas"`
	WhatsAppLink string             `json:"whatsappLink"`
}

// SearchUsecase defines the technician search and profile use cases.
type SearchUsecase interface {
	// SearchTechnicians returns the active technicians matching the filters,
	// sorted per SortBy (rating descending when unset). Inactive and pending
	// profiles are never returned, regardless of filters.
	SearchTechnicians(ctx context.Context, filters SearchFilters) ([]*entity.Technician, error)

	// FeaturedTechnicians returns the featured active technicians.
	FeaturedTechnicians(ctx context.Context) ([]*entity.Technician, error)

	// TechnicianProfile resolves a technician with its service and area
	// records. Dangling service/area references are skipped, not errors.
	TechnicianProfile(ctx context.Context, id string) (*TechnicianProfile, error)
}
