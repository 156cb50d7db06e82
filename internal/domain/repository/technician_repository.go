package repository

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/errors"
)

// ErrTechnicianNotFound is returned when no technician matches the given id.
var ErrTechnicianNotFound = errors.New("technician not found")

// TechnicianRepository provides lookups over the technician collection.
//
// List methods return technicians of every status; the visibility rule that
// only active profiles are publicly shown belongs to the search usecase,
// except ListFeatured which is itself a public surface.
type TechnicianRepository interface {
	// FindByID retrieves a technician by id regardless of status.
	FindByID(ctx context.Context, id string) (*entity.Technician, error)

	// ListAll retrieves every technician in load order.
	ListAll(ctx context.Context) ([]*entity.Technician, error)

	// ListByCountry retrieves the technicians of a country in load order.
	ListByCountry(ctx context.Context, countryCode string) ([]*entity.Technician, error)

	// ListByService retrieves technicians whose service set contains serviceID.
	ListByService(ctx context.Context, serviceID string) ([]*entity.Technician, error)

	// ListByArea retrieves technicians whose area set contains areaID.
	ListByArea(ctx context.Context, areaID string) ([]*entity.Technician, error)

	// ListFeatured retrieves featured active technicians in load order.
	ListFeatured(ctx context.Context) ([]*entity.Technician, error)
}
