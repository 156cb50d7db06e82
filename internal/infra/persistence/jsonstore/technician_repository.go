package jsonstore

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/repository"
)

type technicianRepository struct {
	store *Store
}

// NewTechnicianRepository creates a technician repository over the loaded store.
func NewTechnicianRepository(store *Store) repository.TechnicianRepository {
	return &technicianRepository{store: store}
}

func (r *technicianRepository) FindByID(_ context.Context, id string) (*entity.Technician, error) {
	tech, ok := r.store.techByID[id]
	if !ok {
		return nil, repository.ErrTechnicianNotFound
	}

	return tech, nil
}

func (r *technicianRepository) ListAll(_ context.Context) ([]*entity.Technician, error) {
	out := make([]*entity.Technician, len(r.store.technicians))
	copy(out, r.store.technicians)

	return out, nil
}

func (r *technicianRepository) ListByCountry(_ context.Context, countryCode string) ([]*entity.Technician, error) {
	var out []*entity.Technician
	for _, tech := range r.store.technicians {
		if tech.CountryCode == countryCode {
			out = append(out, tech)
		}
	}

	return out, nil
}

func (r *technicianRepository) ListByService(_ context.Context, serviceID string) ([]*entity.Technician, error) {
	var out []*entity.Technician
	for _, tech := range r.store.technicians {
		if tech.ServesService(serviceID) {
			out = append(out, tech)
		}
	}

	return out, nil
}

func (r *technicianRepository) ListByArea(_ context.Context, areaID string) ([]*entity.Technician, error) {
	var out []*entity.Technician
	for _, tech := range r.store.technicians {
		if tech.ServesArea(areaID) {
			out = append(out, tech)
		}
	}

	return out, nil
}

func (r *technicianRepository) ListFeatured(_ context.Context) ([]*entity.Technician, error) {
	var out []*entity.Technician
	for _, tech := range r.store.technicians {
		if tech.Featured && tech.IsActive() {
			out = append(out, tech)
		}
	}

	return out, nil
}
