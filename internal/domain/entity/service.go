package entity

// Service is a maintenance category (AC repair, plumbing, ...).
// The service catalog is global: all countries share the same services,
// so IDs and slugs are unique across the whole collection.
type Service struct {
	ID            string `json:"id" validate:"required"`
	Key           string `json:"key" validate:"required"`
	Name          string `json:"name" validate:"required"`
	NameEn        string `json:"nameEn" validate:"required"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn"`
	Icon          string `json:"icon"`
	Slug          string `json:"slug" validate:"required"`
	Color         string `json:"color"`
}
