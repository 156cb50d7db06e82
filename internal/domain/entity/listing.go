package entity

import "time"

// ListingStatus is the publication state of a listing.
type ListingStatus string

const (
	ListingStatusActive  ListingStatus = "active"
	ListingStatusExpired ListingStatus = "expired"
	ListingStatusPending ListingStatus = "pending"
)

// Listing is a denormalized, timestamped advertisement view of a technician's
// offering, used for "latest/recent" feeds. It references exactly one
// technician, service and area; a dangling reference resolves to not-found,
// it is never a load error.
type Listing struct {
	ID           string        `json:"id" validate:"required"`
	Title        string        `json:"title" validate:"required"`
	TechnicianID string        `json:"technicianId" validate:"required"`
	ServiceID    string        `json:"serviceId" validate:"required"`
	AreaID       string        `json:"areaId" validate:"required"`
	CountryCode  string        `json:"countryCode" validate:"required"`
	Description  string        `json:"description"`
	Price        string        `json:"price"`
	ViewsCount   int           `json:"viewsCount" validate:"min=0"`
	CreatedAt    time.Time     `json:"createdAt"`
	Status       ListingStatus `json:"status" validate:"required,oneof=active expired pending"`
}

// IsActive reports whether the listing is publicly visible.
func (l *Listing) IsActive() bool {
	return l.Status == ListingStatusActive
}
