package repository

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/errors"
)

// ErrServiceNotFound is returned when no service matches the given id, slug or key.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository provides lookups over the global service catalog.
// The catalog is shared by all countries, so ids and slugs are unique
// across the whole collection.
type ServiceRepository interface {
	// FindByID retrieves a service by its id.
	FindByID(ctx context.Context, id string) (*entity.Service, error)

	// FindBySlug retrieves a service by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Service, error)

	// FindByKey retrieves a service by its stable key.
	FindByKey(ctx context.Context, key string) (*entity.Service, error)

	// ListAll retrieves every service in load order.
	ListAll(ctx context.Context) ([]*entity.Service, error)
}
