package jsonstore

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/repository"
)

type countryRepository struct {
	store *Store
}

// NewCountryRepository creates a country repository over the loaded store.
func NewCountryRepository(store *Store) repository.CountryRepository {
	return &countryRepository{store: store}
}

func (r *countryRepository) FindByCode(_ context.Context, code string) (*entity.Country, error) {
	country, ok := r.store.countryByCode[code]
	if !ok {
		return nil, repository.ErrCountryNotFound
	}

	return country, nil
}

func (r *countryRepository) ListAll(_ context.Context) ([]*entity.Country, error) {
	out := make([]*entity.Country, len(r.store.countries))
	copy(out, r.store.countries)

	return out, nil
}

func (r *countryRepository) ListActive(_ context.Context) ([]*entity.Country, error) {
	var out []*entity.Country
	for _, country := range r.store.countries {
		if country.Active {
			out = append(out, country)
		}
	}

	return out, nil
}
