package refcache

import (
	"context"

	"github.com/labelproof/backend/internal/domain"
)

// Store is the administrative surface every cached table exposes.
type Store interface {
	Invalidate()
	Stats() Stats
}

// Registry groups the cached tables for the admin collaborator.
type Registry struct {
	stores []Store
}

func NewRegistry(stores ...Store) *Registry {
	return &Registry{stores: stores}
}

// InvalidateAll forces every cached table to refetch on next read.
func (r *Registry) InvalidateAll() {
	for _, s := range r.stores {
		s.Invalidate()
	}
}

// Stats reports the state of every cached table.
func (r *Registry) Stats() []Stats {
	stats := make([]Stats, 0, len(r.stores))
	for _, s := range r.stores {
		stats = append(stats, s.Stats())
	}
	return stats
}

// DocumentCache adapts a document loader to the domain.DocumentProvider
// contract consumed by the retrieval collaborator.
type DocumentCache struct {
	*Loader[domain.RegulatoryDocument]
}

func NewDocumentCache(loader *Loader[domain.RegulatoryDocument]) *DocumentCache {
	return &DocumentCache{Loader: loader}
}

// ActiveDocuments returns the cached active regulatory document set.
func (c *DocumentCache) ActiveDocuments(ctx context.Context) []domain.RegulatoryDocument {
	return c.Get(ctx)
}
