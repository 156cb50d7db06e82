package entity

// Area is a sub-country geographic region technicians can be filtered by.
// Slugs are unique within a country, not globally; the same slug may exist
// in two different markets.
type Area struct {
	ID          string `json:"id" validate:"required"`
	CountryCode string `json:"countryCode" validate:"required"`
	// Governorate is the administrative grouping of areas (Kuwait-specific).
	Governorate string `json:"governorate,omitempty"`
	Name        string `json:"name" validate:"required"`
	NameEn      string `json:"nameEn" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
}
