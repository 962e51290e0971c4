package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/kartikmaddali/aura-commerce-demo/models"
)

// ErrNotFound is returned when a product id is not in the collection.
var ErrNotFound = fmt.Errorf("product not found")

// ErrDuplicateID is returned when a create would violate id uniqueness.
var ErrDuplicateID = fmt.Errorf("product id already exists")

// MemoryProductRepository keeps the catalog in process memory. Admin writes
// are serialized through a single coarse-grained lock; everything is lost on
// restart.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	index    map[string]int // id -> position in products
}

// NewMemoryProductRepository creates a repository holding the given seed
// collection.
func NewMemoryProductRepository(seed []models.Product) *MemoryProductRepository {
	r := &MemoryProductRepository{
		products: make([]models.Product, 0, len(seed)),
		index:    make(map[string]int, len(seed)),
	}
	for _, p := range seed {
		if _, dup := r.index[p.ID]; dup {
			continue
		}
		r.index[p.ID] = len(r.products)
		r.products = append(r.products, p)
	}
	return r
}

// FindAll returns a snapshot of the full collection in insertion order.
func (r *MemoryProductRepository) FindAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// FindByID returns a copy of the product with the given id.
func (r *MemoryProductRepository) FindByID(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	p := r.products[i]
	return &p, nil
}

// Create appends a new product. The id must be unique.
func (r *MemoryProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.index[product.ID]; dup {
		return ErrDuplicateID
	}
	r.index[product.ID] = len(r.products)
	r.products = append(r.products, *product)
	return nil
}

// Update replaces the stored product with the same id.
func (r *MemoryProductRepository) Update(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[product.ID]
	if !ok {
		return ErrNotFound
	}
	r.products[i] = *product
	return nil
}

// Delete removes the product with the given id.
func (r *MemoryProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return ErrNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.products); j++ {
		r.index[r.products[j].ID] = j
	}
	return nil
}
