package jsonstore

import (
	"time"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/errors"
)

// technicianRecord is the wire shape of a technician document. It accepts
// both the current array-valued shape (serviceIds/areaIds) and the legacy
// single-valued shape (service_id/areas/price_range) that older exports
// still use.
type technicianRecord struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	NameEn          string   `json:"nameEn"`
	CountryCode     string   `json:"countryCode"`
	AreaIDs         []string `json:"areaIds"`
	ServiceIDs      []string `json:"serviceIds"`
	Phone           string   `json:"phone"`
	WhatsApp        string   `json:"whatsapp"`
	Description     string   `json:"description"`
	ExperienceYears int      `json:"experienceYears"`
	PriceEstimate   string   `json:"priceEstimate"`
	Rating          float64  `json:"rating"`
	ReviewsCount    int      `json:"reviewsCount"`
	ViewsCount      int      `json:"viewsCount"`
	Verified        bool     `json:"verified"`
	Featured        bool     `json:"featured"`
	Status          string   `json:"status"`
	Images          []string `json:"images"`
	CreatedAt       string   `json:"createdAt"`

	// Legacy fields
	ServiceID  string   `json:"service_id"`
	Areas      []string `json:"areas"`
	PriceRange string   `json:"price_range"`
}

// normalize projects the record onto the canonical entity shape. The
// projection happens once at load time and is idempotent: a record already
// in the current shape passes through unchanged.
func (r *technicianRecord) normalize(defaultCountry string) (*entity.Technician, error) {
	serviceIDs := r.ServiceIDs
	if len(serviceIDs) == 0 && r.ServiceID != "" {
		serviceIDs = []string{r.ServiceID}
	}

	areaIDs := r.AreaIDs
	if len(areaIDs) == 0 {
		areaIDs = r.Areas
	}

	countryCode := r.CountryCode
	if countryCode == "" {
		countryCode = defaultCountry
	}

	priceEstimate := r.PriceEstimate
	if priceEstimate == "" {
		priceEstimate = r.PriceRange
	}

	// Legacy exports carry no status field; those profiles were live on the
	// old site, so they map to active.
	status := entity.TechnicianStatus(r.Status)
	if status == "" {
		status = entity.TechnicianStatusActive
	}

	createdAt, err := parseDate(r.CreatedAt)
	if err != nil {
		return nil, errors.Wrapf(err, "technician %q", r.ID)
	}

	return &entity.Technician{
		ID:              r.ID,
		Name:            r.Name,
		NameEn:          r.NameEn,
		CountryCode:     countryCode,
		AreaIDs:         areaIDs,
		ServiceIDs:      serviceIDs,
		Phone:           r.Phone,
		WhatsApp:        r.WhatsApp,
		Description:     r.Description,
		ExperienceYears: r.ExperienceYears,
		PriceEstimate:   priceEstimate,
		Rating:          r.Rating,
		ReviewsCount:    r.ReviewsCount,
		ViewsCount:      r.ViewsCount,
		Verified:        r.Verified,
		Featured:        r.Featured,
		Status:          status,
		Images:          r.Images,
		CreatedAt:       createdAt,
	}, nil
}

// listingRecord is the wire shape of a listing document.
type listingRecord struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	TechnicianID string `json:"technicianId"`
	ServiceID    string `json:"serviceId"`
	AreaID       string `json:"areaId"`
	CountryCode  string `json:"countryCode"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	ViewsCount   int    `json:"viewsCount"`
	CreatedAt    string `json:"createdAt"`
	Status       string `json:"status"`
}

func (r *listingRecord) toEntity() (*entity.Listing, error) {
	createdAt, err := parseDate(r.CreatedAt)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %q", r.ID)
	}

	return &entity.Listing{
		ID:           r.ID,
		Title:        r.Title,
		TechnicianID: r.TechnicianID,
		ServiceID:    r.ServiceID,
		AreaID:       r.AreaID,
		CountryCode:  r.CountryCode,
		Description:  r.Description,
		Price:        r.Price,
		ViewsCount:   r.ViewsCount,
		CreatedAt:    createdAt,
		Status:       entity.ListingStatus(r.Status),
	}, nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate accepts the two timestamp formats found in the content exports:
// full RFC3339 and bare dates. An empty value maps to the zero time.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, errors.Errorf("unparseable date %q", value)
}

func loadTechnicians(path, defaultCountry string) ([]*entity.Technician, error) {
	var records []*technicianRecord
	if err := readJSONFile(path, &records); err != nil {
		return nil, err
	}

	technicians := make([]*entity.Technician, 0, len(records))
	for _, record := range records {
		tech, err := record.normalize(defaultCountry)
		if err != nil {
			return nil, errors.Wrapf(err, "normalize %s", path)
		}
		technicians = append(technicians, tech)
	}

	return technicians, nil
}

func loadListings(path string) ([]*entity.Listing, error) {
	var records []*listingRecord
	if err := readJSONFile(path, &records); err != nil {
		return nil, err
	}

	listings := make([]*entity.Listing, 0, len(records))
	for _, record := range records {
		listing, err := record.toEntity()
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
		listings = append(listings, listing)
	}

	return listings, nil
}
