package entity

import "time"

// TechnicianStatus is the publication state of a technician profile.
type TechnicianStatus string

const (
	TechnicianStatusActive   TechnicianStatus = "active"
	TechnicianStatusPending  TechnicianStatus = "pending"
	TechnicianStatusInactive TechnicianStatus = "inactive"
)

// Technician is a service provider profile, the central searchable entity.
// Only active technicians ever appear in public search or listing results;
// pending and inactive profiles are excluded regardless of filters.
type Technician struct {
	ID              string           `json:"id" validate:"required"`
	Name            string           `json:"name" validate:"required"`
	NameEn          string           `json:"nameEn"`
	CountryCode     string           `json:"countryCode" validate:"required"`
	AreaIDs         []string         `json:"areaIds"`
	ServiceIDs      []string         `json:"serviceIds"`
	Phone           string           `json:"phone"`
	WhatsApp        string           `json:"whatsapp" validate:"required"`
	Description     string           `json:"description"`
	ExperienceYears int              `json:"experienceYears" validate:"min=0"`
	PriceEstimate   string           `json:"priceEstimate"`
	Rating          float64          `json:"rating" validate:"min=0,max=5"`
	ReviewsCount    int              `json:"reviewsCount" validate:"min=0"`
	ViewsCount      int              `json:"viewsCount" validate:"min=0"`
	Verified        bool             `json:"verified"`
	Featured        bool             `json:"featured"`
	Status          TechnicianStatus `json:"status" validate:"required,oneof=active pending inactive"`
	Images          []string         `json:"images"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// IsActive reports whether the profile is publicly visible.
func (t *Technician) IsActive() bool {
	return t.Status == TechnicianStatusActive
}

// ServesService reports whether the technician offers the given service.
func (t *Technician) ServesService(serviceID string) bool {
	for _, id := range t.ServiceIDs {
		if id == serviceID {
			return true
		}
	}

	return false
}

// ServesArea reports whether the technician covers the given area.
func (t *Technician) ServesArea(areaID string) bool {
	for _, id := range t.AreaIDs {
		if id == areaID {
			return true
		}
	}

	return false
}
