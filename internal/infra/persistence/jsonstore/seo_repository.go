package jsonstore

import (
	"context"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/repository"
)

type seoRepository struct {
	store *Store
}

// NewSeoRepository creates a SEO content repository over the loaded store.
func NewSeoRepository(store *Store) repository.SeoRepository {
	return &seoRepository{store: store}
}

func (r *seoRepository) FindByCountry(_ context.Context, countryCode string) (*entity.SeoDocument, error) {
	doc, ok := r.store.seo[countryCode]
	if !ok {
		return nil, repository.ErrSeoDocumentNotFound
	}

	return doc, nil
}
