package jsonstore

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/repository"
)

type serviceRepository struct {
	store *Store
}

// NewServiceRepository creates a service repository over the loaded store.
func NewServiceRepository(store *Store) repository.ServiceRepository {
	return &serviceRepository{store: store}
}

func (r *serviceRepository) FindByID(_ context.Context, id string) (*entity.Service, error) {
	svc, ok := r.store.serviceByID[id]
	if !ok {
		return nil, repository.ErrServiceNotFound
	}

	return svc, nil
}

func (r *serviceRepository) FindBySlug(_ context.Context, slug string) (*entity.Service, error) {
	svc, ok := r.store.serviceBySlug[slug]
	if !ok {
		return nil, repository.ErrServiceNotFound
	}

	return svc, nil
}

func (r *serviceRepository) FindByKey(_ context.Context, key string) (*entity.Service, error) {
	svc, ok := r.store.serviceByKey[key]
	if !ok {
		return nil, repository.ErrServiceNotFound
	}

	return svc, nil
}

func (r *serviceRepository) ListAll(_ context.Context) ([]*entity.Service, error) {
	out := make([]*entity.Service, len(r.store.services))
	copy(out, r.store.services)

	return out, nil
}
