package faq

import "context"

// CatalogRepository loads the FAQ catalog from its backing source.
type CatalogRepository interface {
	Load(ctx context.Context) ([]Entry, error)
}

// VectorWriter persists the trained catalog sentence vectors next to their
// entries, for offline inspection and nearest-neighbour queries in SQL.
type VectorWriter interface {
	SaveVectors(ctx context.Context, entries []Entry, vectors [][]float32) error
}
