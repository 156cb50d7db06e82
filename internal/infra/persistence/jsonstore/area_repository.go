package jsonstore

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/repository"
)

type areaRepository struct {
	store *Store
}

// NewAreaRepository creates an area repository over the loaded store.
func NewAreaRepository(store *Store) repository.AreaRepository {
	return &areaRepository{store: store}
}

func (r *areaRepository) FindByID(_ context.Context, id, countryCode string) (*entity.Area, error) {
	area, ok := r.store.areaByID[countryCode][id]
	if !ok {
		return nil, repository.ErrAreaNotFound
	}

	return area, nil
}

func (r *areaRepository) FindBySlug(_ context.Context, slug, countryCode string) (*entity.Area, error) {
	area, ok := r.store.areaBySlug[countryCode][slug]
	if !ok {
		return nil, repository.ErrAreaNotFound
	}

	return area, nil
}

func (r *areaRepository) ListByCountry(_ context.Context, countryCode string) ([]*entity.Area, error) {
	areas := r.store.areas[countryCode]
	out := make([]*entity.Area, len(areas))
	copy(out, areas)

	return out, nil
}

func (r *areaRepository) ListByGovernorate(_ context.Context, governorate, countryCode string) ([]*entity.Area, error) {
	var out []*entity.Area
	for _, area := range r.store.areas[countryCode] {
		if area.Governorate == governorate {
			out = append(out, area)
		}
	}

	return out, nil
}

func (r *areaRepository) ListGovernorates(_ context.Context, countryCode string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, area := range r.store.areas[countryCode] {
		if area.Governorate == "" {
			continue
		}
		if _, ok := seen[area.Governorate]; ok {
			continue
		}
		seen[area.Governorate] = struct{}{}
		out = append(out, area.Governorate)
	}

	return out, nil
}
